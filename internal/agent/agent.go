package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plexsphere/linkmond/internal/metrics"
)

// shutdownTimeout is the maximum time for graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

// Agent owns the metrics manager and the pull endpoint for one node.
type Agent struct {
	cfg     *Config
	manager *metrics.Manager
	logger  *slog.Logger
}

// New constructs the agent: identity from config, then the metrics
// manager. Manager construction failure is fatal to startup.
func New(cfg *Config, logger *slog.Logger) (*Agent, error) {
	if logger == nil {
		logger = slog.Default()
	}
	id, err := cfg.NodeIdentity()
	if err != nil {
		return nil, err
	}

	manager, err := metrics.NewManager(id, logger)
	if err != nil {
		return nil, fmt.Errorf("agent: create metrics manager: %w", err)
	}

	return &Agent{
		cfg:     cfg,
		manager: manager,
		logger:  logger.With("component", "agent"),
	}, nil
}

// Manager returns the metrics manager.
func (a *Agent) Manager() *metrics.Manager {
	return a.manager
}

// Run tracks the configured links and serves the metrics endpoint until
// ctx is cancelled.
func (a *Agent) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Listen)
	if err != nil {
		return fmt.Errorf("agent: listen %s: %w", a.cfg.Listen, err)
	}
	return a.serve(ctx, ln)
}

func (a *Agent) serve(ctx context.Context, ln net.Listener) error {
	a.trackConfiguredLinks(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		a.manager.Registry().Prometheus(),
		promhttp.HandlerOpts{},
	))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	srv := &http.Server{Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	a.logger.Info("agent started",
		"listen", ln.Addr().String(),
		"node_id", a.manager.Registry().ID().String(),
	)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http shutdown failed", "error", err)
		}
		<-errCh
		a.logger.Info("agent stopped")
		return ctx.Err()
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("agent: serve: %w", err)
		}
		return nil
	}
}

// trackConfiguredLinks tracks the links named in the config. A failure for
// one link is logged and does not affect the others.
func (a *Agent) trackConfiguredLinks(ctx context.Context) {
	interval := a.cfg.Metrics.SampleInterval
	for _, name := range a.cfg.Metrics.PhysicalLinks {
		if err := a.manager.TrackPhysicalLink(ctx, name, interval); err != nil {
			a.logger.Warn("failed to track physical link", "link", name, "error", err)
		}
	}
	for _, vl := range a.cfg.Metrics.VirtualLinks {
		if err := a.manager.TrackVirtualLink(ctx, vl.Name, vl.Hostname, interval); err != nil {
			a.logger.Warn("failed to track virtual link", "link", vl.Name, "error", err)
		}
	}
}
