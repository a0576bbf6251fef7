// Package commands implements the CLI commands for the westnix tool.
package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/westkit/westnix/internal/app"
	"github.com/westkit/westnix/internal/build"
	"github.com/westkit/westnix/internal/core/domain"
)

// parseFilterFlag validates --group-filter tokens the same way tokens from
// the workspace configuration are validated.
func parseFilterFlag(tokens []string) ([]string, error) {
	filter, err := domain.ParseGroupFilter(strings.Join(tokens, ","))
	if err != nil {
		return nil, err
	}
	return filter, nil
}

// CLI represents the command line interface for westnix.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "westnix",
		Short:         "Generate Nix code for fetching workspace manifest sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newBlobsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w interface{ Write([]byte) (int, error) }) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
