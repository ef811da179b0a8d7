package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/hellobundle/internal/app"
	"go.trai.ch/hellobundle/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Concatenate and minify every bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			return c.build(cmd.Context(), quiet)
		},
	}
	cmd.Flags().BoolP("quiet", "q", false, "Suppress step progress (shorthand for --output-mode=quiet)")
	return cmd
}

func (c *CLI) build(ctx context.Context, quiet bool) error {
	outputMode := c.settings.OutputMode
	if quiet {
		outputMode = domain.OutputModeQuiet
	}

	return c.app.Build(ctx, app.BuildOptions{
		Root:       c.settings.Root,
		Manifest:   c.settings.Manifest,
		OutputMode: outputMode,
	})
}
