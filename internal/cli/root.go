// Package cli implements the harnesspair command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"harnesspair/internal/config"
	"harnesspair/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand creates the root command for the harnesspair CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "harnesspair",
		Short: "Random harness pairs with duplicate housing checks",
		Long: `harnesspair samples pairs of harness drawings from a SQLite database
and flags pairs whose wiring shares a housing connection.

The grid is available over HTTP (serve), in the terminal (tui) or as an
export (generate).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: search standard locations)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewTUICommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))

	return cmd
}

// loadConfig reads the config file named by --config or found on the
// search path, with environment overrides applied
func loadConfig(opts *RootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, _, err = config.LoadFromPath(opts.ConfigPath)
	} else {
		cfg, _, err = config.Load()
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	return cfg, nil
}

// validateConfig runs after flag overrides have been applied
func validateConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid config", err)
	}
	return nil
}

func newLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.Log.Development)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("failed to create logger (level %q)", level), err)
	}
	return logger, nil
}
