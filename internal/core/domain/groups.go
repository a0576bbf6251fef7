package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// GroupFilter is an ordered list of "+group" / "-group" tokens.
// Later tokens win, which lets a command-line filter override the
// workspace configuration by simply being appended.
type GroupFilter []string

// ParseGroupFilter parses a comma-separated list of +group/-group tokens.
// Empty elements are skipped so trailing commas are harmless.
func ParseGroupFilter(s string) (GroupFilter, error) {
	var filter GroupFilter
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if len(token) < 2 || (token[0] != '+' && token[0] != '-') {
			return nil, zerr.With(zerr.Wrap(ErrInvalidGroupFilter, "token must start with '+' or '-'"), "token", token)
		}
		filter = append(filter, token)
	}
	return filter, nil
}

// Enabled reports whether a group survives the filter. Groups are enabled
// unless disabled by a "-group" token that is not overridden later.
func (f GroupFilter) Enabled(group string) bool {
	enabled := true
	for _, token := range f {
		if len(token) < 2 {
			continue
		}
		if token[1:] == group {
			enabled = token[0] == '+'
		}
	}
	return enabled
}

// Active reports whether the project participates in the current run.
// Projects without groups are always active; a grouped project stays active
// as long as at least one of its groups is enabled.
func (f GroupFilter) Active(p Project) bool {
	if len(p.Groups) == 0 {
		return true
	}
	for _, group := range p.Groups {
		if f.Enabled(group) {
			return true
		}
	}
	return false
}
