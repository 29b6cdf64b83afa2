package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/asphyxia-tools/tachi-export/internal/config"
	"github.com/asphyxia-tools/tachi-export/internal/core"
	"github.com/asphyxia-tools/tachi-export/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exporter, err := core.New(cfg, logging.WithFields("database", cfg.Asphyxia.DatabasePath))
	if err != nil {
		slog.Error("failed to initialize exporter", "error", err)
		os.Exit(1)
	}

	res, err := exporter.Run(ctx)
	if err != nil {
		msg := core.MapError(err)
		slog.Error("export failed", "error", err, "code", msg.Code)
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}

	fmt.Printf("exported %d of %d matched scores to %s (skipped %d fails, %d unmapped)\n",
		res.Exported, res.Matched, res.OutputPath, res.SkippedFails, res.SkippedUnmapped)
}
