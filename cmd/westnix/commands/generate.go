package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/westkit/westnix/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate west.nix from the workspace manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cacheFile, _ := cmd.Flags().GetString("cache")
			zephyrBase, _ := cmd.Flags().GetString("zephyr-base")
			tokens, _ := cmd.Flags().GetStringSlice("group-filter")
			groupFilter, err := parseFilterFlag(tokens)
			if err != nil {
				return err
			}
			return c.app.Generate(cmd.Context(), app.GenerateOptions{
				CacheFile:   cacheFile,
				GroupFilter: groupFilter,
				ZephyrBase:  zephyrBase,
			})
		},
	}
	cmd.Flags().String("cache", "", "Hash cache file (default: west-nix-cache.json next to the manifest)")
	cmd.Flags().StringSlice("group-filter", nil, "Additional +group/-group tokens, applied after the workspace filter")
	// The environment variable is read here, at the outermost layer, and
	// handed to the core as an explicit value.
	cmd.Flags().String("zephyr-base", os.Getenv("ZEPHYR_BASE"), "Zephyr base directory; enables the environment export fragment")
	return cmd
}
