package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/westkit/westnix/internal/app"
)

func (c *CLI) newBlobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blobs",
		Short: "Work with the binary artifacts declared by module descriptors",
	}

	var groupFilter []string
	cmd.PersistentFlags().StringSliceVar(&groupFilter, "group-filter", nil, "Additional +group/-group tokens, applied after the workspace filter")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the blobs of the active projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := parseFilterFlag(groupFilter)
			if err != nil {
				return err
			}
			blobs, err := c.app.Blobs(app.GenerateOptions{GroupFilter: filter})
			if err != nil {
				return err
			}
			for _, blob := range blobs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", blob.SHA256, blob.Path, blob.URL)
			}
			return nil
		},
	}

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download missing blobs into the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := parseFilterFlag(groupFilter)
			if err != nil {
				return err
			}
			return c.app.FetchBlobs(cmd.Context(), app.GenerateOptions{GroupFilter: filter})
		},
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(fetchCmd)
	return cmd
}
