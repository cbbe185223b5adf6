package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"harnesspair/internal/handler"
	"harnesspair/internal/hub"
	"harnesspair/internal/service"
	"harnesspair/internal/watcher"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	dbOptions
	Addr  string
	Watch bool

	// ready, when set, receives the bound address once the listener is up
	ready chan<- string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return newServeCommand(&ServeOptions{RootOptions: rootOpts})
}

func newServeCommand(opts *ServeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pair grid over HTTP",
		Long: `Serve the pair grid, the JSON API, Server-Sent Events and Prometheus
metrics over HTTP.

Example:
  harnesspair serve --db ./dbs.db --addr :3000
  harnesspair serve --watch`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	addDatabaseFlag(cmd, &opts.dbOptions)
	addSeedFlag(cmd, &opts.dbOptions)
	cmd.Flags().StringVar(&opts.Addr, "addr", ":3000", "HTTP listen address")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "regenerate when the database file changes")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	opts.apply(cmd, cfg)
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = opts.Addr
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch.Enabled = opts.Watch
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, err := newLogger(cfg, opts.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	logger.Info("starting harnesspair server", zap.String("config", cfg.Summary()))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := openApp(cfg, logger, reg)
	if err != nil {
		return err
	}
	defer a.Close(logger)

	// Setup signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Forward service events to SSE clients
	sseHub := hub.New(logger.Named("sse"))
	go sseHub.Run()
	defer sseHub.Close()

	eventChan := make(chan service.Event, 100)
	a.eventBus.Subscribe(eventChan)
	forwardDone := make(chan struct{})
	go func() {
		defer close(forwardDone)
		forwardEvents(ctx, eventChan, sseHub)
	}()
	defer func() {
		cancel()
		<-forwardDone
	}()

	router := handler.NewRouter(
		handler.NewPairHandler(a.svc, logger.Named("http")),
		sseHub,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		logger.Named("http"),
	)

	server := &http.Server{
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration(),
		WriteTimeout: cfg.Server.WriteTimeout.Duration(),
		IdleTimeout:  60 * time.Second,
	}

	listener, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to listen on %s", cfg.Server.Addr), err)
	}

	if cfg.Watch.Enabled {
		w := watcher.New(cfg.Database.Path, a.svc.DrawingsChanged, logger.Named("watcher")).
			WithDebounce(cfg.Watch.Debounce.Duration())
		watchDone := make(chan struct{})
		go func() {
			defer close(watchDone)
			if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("watcher stopped", zap.Error(err))
			}
		}()
		// The repository closes after the last regeneration has finished
		defer func() {
			cancel()
			<-watchDone
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", listener.Addr().String()))
		serveErr <- server.Serve(listener)
	}()
	if opts.ready != nil {
		opts.ready <- listener.Addr().String()
	}

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return WrapExitError(ExitCommandError, "server error", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	sseHub.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
	return nil
}

// forwardEvents relays bus events to the SSE hub until ctx is done
func forwardEvents(ctx context.Context, events <-chan service.Event, sseHub *hub.Hub) {
	for {
		select {
		case event := <-events:
			sseHub.Broadcast(event)
		case <-ctx.Done():
			return
		}
	}
}
