package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"harnesspair/internal/config"
	"harnesspair/internal/repository/sqlite"
	"harnesspair/internal/sampler"
	"harnesspair/internal/service"
)

// dbOptions are the flags shared by every command that reads the database
type dbOptions struct {
	Database string
	Seed     uint64
}

func addDatabaseFlag(cmd *cobra.Command, opts *dbOptions) {
	cmd.Flags().StringVar(&opts.Database, "db", config.DefaultDatabasePath, "path to SQLite database")
}

func addSeedFlag(cmd *cobra.Command, opts *dbOptions) {
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed for a reproducible run (default: config or entropy)")
}

// apply copies flags the user actually set over the config values
func (o *dbOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("db") {
		cfg.Database.Path = o.Database
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		seed := o.Seed
		cfg.Generation.Seed = &seed
	}
}

func newSampler(cfg *config.Config) *sampler.Sampler {
	if cfg.Generation.Seed != nil {
		return sampler.NewSeeded(*cfg.Generation.Seed)
	}
	return sampler.NewDefault()
}

// app is the wired core shared by serve, generate and tui
type app struct {
	repo     *sqlite.Repository
	eventBus *service.EventBus
	svc      *service.PairService
}

// openApp opens the database read-only and wires the pair service.
// reg may be nil to skip metrics.
func openApp(cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) (*app, error) {
	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	logger.Debug("database opened", zap.String("path", cfg.Database.Path))

	var metrics *service.Metrics
	if reg != nil {
		metrics = service.NewMetrics(reg)
	}

	eventBus := service.NewEventBus()
	builder := service.NewBuilder(repo, newSampler(cfg), cfg.Generation.AttemptsPerResult)
	svc := service.NewPairService(repo, builder, eventBus, metrics, logger)

	return &app{repo: repo, eventBus: eventBus, svc: svc}, nil
}

func (a *app) Close(logger *zap.Logger) {
	if err := a.repo.Close(); err != nil {
		logger.Error("error closing database", zap.Error(err))
	}
}
