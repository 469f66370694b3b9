package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/plexsphere/linkmond/internal/agent"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Start the linkmond agent",
	Long: "Start the linkmond agent daemon. Registers the link sampler as a metrics\n" +
		"producer, tracks the configured datalinks, and serves the pull endpoint.",
	RunE: runUp,
}

func init() {
	rootCmd.AddCommand(upCmd)
}

func runUp(_ *cobra.Command, _ []string) error {
	cfg, err := agent.ParseConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("linkmond up: %w", err)
	}

	// Apply CLI flag overrides.
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if listen != "" {
		cfg.Listen = listen
	}

	logger := setupLogger(cfg.LogLevel)

	logger.Info("starting linkmond",
		"version", buildVersion,
		"node_id", cfg.Identity.NodeID,
	)

	a, err := agent.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("linkmond up: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("linkmond up: %w", err)
	}
	return nil
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
