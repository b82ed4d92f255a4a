package main

import (
	"context"
	"flag"
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
	once := flag.Bool("once", false, "run a single consolidation pass and exit")
	flag.Parse()

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

	if !*once && !cfg.ConsolidationWorkerEnabled {
		logger.Fatal("consolidation worker disabled",
			zap.String("code", "CONFIG_CONSOLIDATION_WORKER_DISABLED"),
			zap.String("message", "CONSOLIDATION_WORKER_ENABLED must be true unless -once is given"),
		)
	}

	container, buildErr := di.Build(cfg, logger)
	if buildErr != nil {
		logger.Fatal("dependency wiring failed", zap.Error(buildErr))
	}
	defer func() {
		if err := container.Database.Close(); err != nil {
			logger.Warn("database close failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	persistenceErr := container.InitializePersistenceUseCase.Execute(ctx, dto.InitializePersistenceCommand{
		ReadinessTimeout:       cfg.DBReadinessTimeout,
		ReadinessRetryInterval: cfg.DBReadinessRetryInterval,
	})
	if persistenceErr != nil {
		logger.Fatal("persistence initialization failed",
			zap.String("code", persistenceErr.Code),
			zap.String("message", persistenceErr.Message),
			zap.NamedError("cause", persistenceErr.Cause),
		)
	}

	if *once {
		output := container.ConsolidationWorker.RunOnce(ctx)
		logger.Info("consolidation pass finished",
			zap.Int("scanned", output.Scanned),
			zap.Int("consolidated", output.Consolidated),
			zap.Int("failed", output.Failed),
		)
		return
	}

	container.ConsolidationWorker.Start(ctx)
	logger.Info("consolidator stopped")
}
