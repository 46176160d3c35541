// Command cvserver serves the CV GraphQL API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/goliatone/go-cv-backend/internal/config"
	"github.com/goliatone/go-cv-backend/internal/logging"
	"github.com/goliatone/go-cv-backend/internal/seed"
	"github.com/goliatone/go-cv-backend/internal/storage"
	"github.com/goliatone/go-cv-backend/pkg/di"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file (default $CV_CONFIG or config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	db, err := storage.Open(ctx, storage.Options{
		Driver:         cfg.Database.Driver,
		DSN:            cfg.Database.ConnectionString,
		MaxOpenConns:   cfg.Database.MaxOpenConns,
		MaxIdleConns:   cfg.Database.MaxIdleConns,
		ConnectRetries: cfg.Database.ConnectRetries,
		RetryDelay:     cfg.Database.RetryDelay,
		CommandTimeout: cfg.Database.CommandTimeout,
		Registerer:     registry,
	}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("close database", zap.Error(err))
		}
	}()

	if err := storage.Prepare(ctx, db, logger); err != nil {
		return err
	}

	if cfg.Database.Seed {
		if _, err := seed.Run(ctx, db.DB, logger); err != nil {
			return err
		}
	}

	container, err := di.NewContainer(ctx, di.Options{
		Config:   cfg,
		DB:       db,
		Registry: registry,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.Warn("close cache", zap.Error(err))
		}
	}()

	app := container.App()
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("address", cfg.Server.Address))
		errCh <- app.Listen(cfg.Server.Address, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return app.ShutdownWithContext(shutdownCtx)
}
