package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alphtip/internal/application/dto"
	"alphtip/internal/infrastructure/config"
	"alphtip/internal/infrastructure/di"
	"alphtip/internal/infrastructure/logging"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, cfgErr := config.LoadConfig()
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "startup config error code=%s message=%s metadata=%v\n", cfgErr.Code, cfgErr.Message, cfgErr.Metadata)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("wallet configuration",
		zap.Bool("dev_network", cfg.DevNetwork),
		zap.String("node_url", cfg.NodeURL),
		zap.String("fee_rate", cfg.FeeRate.String()),
		zap.Int("fee_addresses", len(cfg.FeeAddresses)),
	)

	container, buildErr := di.Build(cfg, logger)
	if buildErr != nil {
		logger.Fatal("dependency wiring failed", zap.Error(buildErr))
	}
	defer func() {
		if container.Database == nil {
			return
		}
		if err := container.Database.Close(); err != nil {
			logger.Warn("database close failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("persistence initialization starting", zap.String("database_target", cfg.DatabaseTarget))
	persistenceErr := container.InitializePersistenceUseCase.Execute(ctx, dto.InitializePersistenceCommand{
		ReadinessTimeout:       cfg.DBReadinessTimeout,
		ReadinessRetryInterval: cfg.DBReadinessRetryInterval,
	})
	if persistenceErr != nil {
		logger.Fatal("persistence initialization failed",
			zap.String("code", persistenceErr.Code),
			zap.String("message", persistenceErr.Message),
			zap.Any("details", persistenceErr.Details),
			zap.NamedError("cause", persistenceErr.Cause),
		)
	}
	logger.Info("persistence initialization completed", zap.String("database_target", cfg.DatabaseTarget))

	if container.ConsolidationWorker.Enabled() {
		go container.ConsolidationWorker.Start(ctx)
	}

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- container.Server.Start()
	}()

	select {
	case err := <-serverErrCh:
		if err != nil {
			logger.Fatal("server startup failed", zap.Error(err))
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := container.Server.Shutdown(shutdownCtx); err != nil {
			logger.Fatal("graceful shutdown failed", zap.Error(err))
		}

		if err := <-serverErrCh; err != nil {
			logger.Fatal("server stopped with error", zap.Error(err))
		}

		logger.Info("server stopped")
	}
}
