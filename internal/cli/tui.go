package cli

import (
	"github.com/spf13/cobra"

	"harnesspair/internal/tui"
)

// TUIOptions holds flags for the tui command.
type TUIOptions struct {
	*RootOptions
	dbOptions
}

// NewTUICommand creates the tui command.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TUIOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Show the pair grid in the terminal",
		Long: `Show the pair grid in the terminal. Press r to draw a new set, q to quit.

Logs go to stderr at warn level unless --verbose is set.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, cmd)
		},
	}

	addDatabaseFlag(cmd, &opts.dbOptions)
	addSeedFlag(cmd, &opts.dbOptions)

	return cmd
}

func runTUI(opts *TUIOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	opts.apply(cmd, cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}
	// Info logs would scribble over the grid
	if !opts.Verbose && cfg.Log.Level == "info" {
		cfg.Log.Level = "warn"
	}
	logger, err := newLogger(cfg, opts.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	a, err := openApp(cfg, logger, nil)
	if err != nil {
		return err
	}
	defer a.Close(logger)

	if err := tui.Run(cmd.Context(), a.svc); err != nil {
		return WrapExitError(ExitCommandError, "terminal error", err)
	}
	return nil
}
