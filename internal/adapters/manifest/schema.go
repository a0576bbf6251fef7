package manifest

// westManifest mirrors the subset of the west.yml schema we consume.
// Sections we do not act on (west-commands, import directives) are left to
// the YAML decoder to skip.
type westManifest struct {
	Manifest manifestSection `yaml:"manifest"`
}

type manifestSection struct {
	Defaults defaultsDTO  `yaml:"defaults"`
	Remotes  []remoteDTO  `yaml:"remotes"`
	Projects []projectDTO `yaml:"projects"`
	Self     selfDTO      `yaml:"self"`
}

type defaultsDTO struct {
	Remote   string `yaml:"remote"`
	Revision string `yaml:"revision"`
}

type remoteDTO struct {
	Name    string `yaml:"name"`
	URLBase string `yaml:"url-base"`
}

type projectDTO struct {
	Name     string   `yaml:"name"`
	Remote   string   `yaml:"remote"`
	RepoPath string   `yaml:"repo-path"`
	URL      string   `yaml:"url"`
	Revision string   `yaml:"revision"`
	Path     string   `yaml:"path"`
	Groups   []string `yaml:"groups"`
}

type selfDTO struct {
	Path string `yaml:"path"`
}
