package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hellobundle/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the built artifacts and build records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, _ := cmd.Flags().GetBool("records")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{
				Root:     c.settings.Root,
				Manifest: c.settings.Manifest,
			}

			switch {
			case all:
				opts.Artifacts = true
				opts.Records = true
			case records:
				opts.Records = true
			default:
				// Default behavior: remove the artifacts
				opts.Artifacts = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("records", "r", false, "Remove the build records only")
	cmd.Flags().BoolP("all", "a", false, "Remove artifacts and build records")

	return cmd
}
