package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"estate_price/internal/application"
	"estate_price/internal/config"
	"estate_price/pkg/contextx"
	"estate_price/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Default().Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := slog.New(logx.NewHandler(os.Stdout, cfg.App.LogFormat, cfg.App.LogLevel)).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	app, err := application.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("application.New: %w", err)
	}

	log.Info("application started")

	if err = app.Run(ctx); err != nil {
		return fmt.Errorf("application.Run: %w", err)
	}

	log.Info("application stopped")

	return nil
}
