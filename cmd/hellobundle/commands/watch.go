package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hellobundle/internal/adapters/watcher" //nolint:depguard // Default debounce window
	"go.trai.ch/hellobundle/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild every bundle when a fragment or the descriptor changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			debounce, _ := cmd.Flags().GetDuration("debounce")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Root:       c.settings.Root,
				Manifest:   c.settings.Manifest,
				OutputMode: c.settings.OutputMode,
				Debounce:   debounce,
			})
		},
	}
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Quiet period after the last change before rebuilding")
	return cmd
}
