// Package commands implements the CLI commands for hellobundle.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/hellobundle/internal/adapters/config" //nolint:depguard // Settings are resolved at the CLI edge
	"go.trai.ch/hellobundle/internal/app"
	"go.trai.ch/hellobundle/internal/build"
	"go.trai.ch/hellobundle/internal/core/domain"
)

// CLI represents the command line interface for hellobundle.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	settings   domain.Settings
	onSettings func(domain.Settings)
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Verify(ctx context.Context, opts app.VerifyOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithSettingsHook registers a function called with the resolved settings
// before any command runs.
func WithSettingsHook(fn func(domain.Settings)) Option {
	return func(c *CLI) {
		c.onSettings = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "hellobundle",
		Short:         "Bundle and minify the hello.js sources",
		Long:          "Concatenates the hello.js fragments into dist/hello.js and dist/hello.all.js and minifies both.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	defaults := domain.DefaultSettings()
	pf := rootCmd.PersistentFlags()
	pf.StringP("root", "C", defaults.Root, "Project directory holding package.json, src and dist")
	pf.StringP("manifest", "m", defaults.Manifest, "Bundle manifest file (defaults to the built-in hello.js manifest)")
	pf.String("log-format", defaults.LogFormat, "Log format: pretty or json")
	pf.StringP("output-mode", "o", defaults.OutputMode, "Step progress output: auto, tui, linear or quiet")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		settings, err := config.LoadSettings(cmd.Flags())
		if err != nil {
			return err
		}
		c.settings = settings
		if c.onSettings != nil {
			c.onSettings(settings)
		}
		return nil
	}

	// Running without a subcommand builds, like the build command.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.build(cmd.Context(), false)
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
