// Package commands implements the CLI commands for the nobs build tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/nobs/internal/app"
	"go.trai.ch/nobs/internal/build"
)

// CLI represents the command line interface for nobs.
type CLI struct {
	app        Application
	configHook func(filename string)
	rootCmd    *cobra.Command
	configFile string
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, targetNames []string, opts app.RunOptions) error
	Clean(ctx context.Context) error
	SelfRebuild(ctx context.Context, scriptFile string, argv []string) error
}

// New creates a new CLI instance with the given app. configHook receives
// the -c flag value before any command body runs.
func New(a Application, configHook func(filename string)) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nobs",
		Short:         "A minimal incremental build orchestrator for C++ projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:        a,
		configHook: configHook,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configFile, "config", "c", "", "Manifest file to load (default nobs.yaml)")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.configHook != nil {
			c.configHook(c.configFile)
		}
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newBootstrapCmd())
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
