package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"harnesspair/internal/loader"
	"harnesspair/internal/repository/sqlite"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	dbOptions
	Replace bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Create or fill a database from a YAML fixture",
		Long: `Create the harness tables if needed and import drawings and wires from
a YAML fixture in one transaction.

Example:
  harnesspair seed testdata/fixture.yaml --db ./dbs.db
  harnesspair seed fixture.yaml --replace`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, args[0], cmd)
		},
	}

	addDatabaseFlag(cmd, &opts.dbOptions)
	cmd.Flags().BoolVar(&opts.Replace, "replace", false, "delete existing rows before importing")

	return cmd
}

func runSeed(opts *SeedOptions, fixturePath string, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	opts.apply(cmd, cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}
	logger, err := newLogger(cfg, opts.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	fixture, err := loader.LoadYAML(fixturePath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load fixture", err)
	}

	repo, err := sqlite.Create(cfg.Database.Path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Error("error closing database", zap.Error(closeErr))
		}
	}()

	if err := repo.ImportFixture(cmd.Context(), fixture, opts.Replace); err != nil {
		return WrapExitError(ExitCommandError, "failed to import fixture", err)
	}

	logger.Info("fixture imported",
		zap.String("db", cfg.Database.Path),
		zap.Int("drawings", len(fixture.Drawings)),
		zap.Int("wires", len(fixture.Wires)))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d drawings and %d wires into %s\n",
		len(fixture.Drawings), len(fixture.Wires), cfg.Database.Path)
	return nil
}
