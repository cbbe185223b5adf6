package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"harnesspair/internal/domain"
	"harnesspair/internal/loader"
	"harnesspair/internal/repository"
	"harnesspair/internal/repository/sqlite"
)

// DumpOptions holds flags for the dump command.
type DumpOptions struct {
	*RootOptions
	dbOptions
	Output string
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DumpOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the database contents as a YAML fixture",
		Long: `Read every drawing and its wires and write them in the fixture format
accepted by seed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(opts, cmd)
		},
	}

	addDatabaseFlag(cmd, &opts.dbOptions)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func runDump(opts *DumpOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	opts.apply(cmd, cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer repo.Close()

	fixture, err := snapshot(cmd.Context(), repo)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read database", err)
	}

	data, err := loader.ExportYAML(fixture)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to encode fixture", err)
	}

	if opts.Output == "" {
		_, err = cmd.OutOrStdout().Write(data)
	} else {
		err = os.WriteFile(opts.Output, data, 0644)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	return nil
}

// snapshot reads every drawing and wire into a fixture
func snapshot(ctx context.Context, repo repository.DrawingRepository) (*domain.Fixture, error) {
	drawings, err := repo.ListDrawings(ctx)
	if err != nil {
		return nil, err
	}
	fixture := &domain.Fixture{Drawings: drawings}
	for _, d := range drawings {
		wires, err := repo.ListWires(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		fixture.Wires = append(fixture.Wires, wires...)
	}
	return fixture, nil
}
