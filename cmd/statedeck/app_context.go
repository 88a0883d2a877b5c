package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/statedeck/internal/config"
	"github.com/alexisbeaulieu97/statedeck/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/statedeck/internal/logger"
	"github.com/alexisbeaulieu97/statedeck/internal/metrics"
	"github.com/alexisbeaulieu97/statedeck/internal/ports"
	"github.com/alexisbeaulieu97/statedeck/internal/state"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config    *config.Config
	Logger    *logger.Logger
	Events    *events.LoggingPublisher
	Registry  *prometheus.Registry
	Metrics   *metrics.Collector
	SessionID string

	closers []io.Closer
}

// loadApp reads configuration and wires logging, events and metrics. With
// --verbose and no log file, entries go to stderr only when stderrLogs is set;
// the dashboard clears it because it owns the terminal. The caller must Close
// the returned context.
func loadApp(cmd *cobra.Command, flags *rootFlags, stderrLogs bool) (*AppContext, error) {
	cfg, err := config.Load(config.LoadOptions{
		Path:    flags.configPath,
		EnvFile: flags.envFile,
		Override: func(cfg *config.Config) {
			if flags.verbose {
				cfg.Log.Level = "debug"
			}
			if flags.metricsAddr != "" {
				cfg.Metrics.Addr = flags.metricsAddr
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	app := &AppContext{Config: cfg, SessionID: ports.NewSessionID()}

	var writer io.Writer
	switch {
	case cfg.Log.File != "":
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		app.closers = append(app.closers, file)
		writer = file
	case flags.verbose && stderrLogs:
		writer = cmd.ErrOrStderr()
	}

	if writer == nil {
		app.Logger = logger.Discard()
	} else {
		log, err := logger.New(logger.Options{
			Level:     cfg.Log.Level,
			Format:    cfg.Log.Format,
			Writer:    writer,
			Component: "statedeck",
		})
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("create logger: %w", err)
		}
		app.Logger = log
	}

	app.Events = events.NewLoggingPublisher(app.Logger.With("component", "events"))
	app.Registry = prometheus.NewRegistry()
	app.Metrics = metrics.NewCollector(app.Registry)
	if _, err := metrics.Subscribe(app.Events, app.Metrics); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("subscribe metrics: %w", err)
	}

	return app, nil
}

// CommandContext returns the command context tagged with the session ID and
// a logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithSessionID(ctx, a.SessionID)
	return ctx, a.Logger.With("component", component)
}

// NewState creates the application's single state container.
func (a *AppContext) NewState(ctx context.Context) *state.Container {
	opts := append(a.Config.StateOptions(),
		state.WithContext(ctx),
		state.WithPublisher(a.Events),
		state.WithLogger(a.Logger.With("component", "state")),
	)
	return state.New(opts...)
}

// Close releases files opened for logging.
func (a *AppContext) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
