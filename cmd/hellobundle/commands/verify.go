package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hellobundle/internal/app"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the artifacts match the last build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Verify(cmd.Context(), app.VerifyOptions{
				Root:     c.settings.Root,
				Manifest: c.settings.Manifest,
			})
		},
	}
}
