package consolidator

import (
	"context"
	"time"

	"alphtip/internal/application/dto"
	portsin "alphtip/internal/application/ports/in"

	"go.uber.org/zap"
)

// Worker periodically merges the UTXOs of every user wallet.
type Worker struct {
	enabled      bool
	pollInterval time.Duration
	batchSize    int
	useCase      portsin.ConsolidateAllUseCase
	logger       *zap.Logger
}

func NewWorker(
	enabled bool,
	pollInterval time.Duration,
	batchSize int,
	useCase portsin.ConsolidateAllUseCase,
	logger *zap.Logger,
) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		enabled:      enabled,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		useCase:      useCase,
		logger:       logger,
	}
}

func (w *Worker) Enabled() bool {
	return w != nil && w.enabled
}

// Start runs a cycle immediately and then on every tick until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	if w == nil || !w.enabled || w.useCase == nil {
		return
	}

	w.logger.Info("consolidation worker started",
		zap.Duration("poll_interval", w.pollInterval),
		zap.Int("batch_size", w.batchSize),
	)

	w.RunOnce(ctx)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("consolidation worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

func (w *Worker) RunOnce(ctx context.Context) dto.ConsolidateAllOutput {
	startedAt := time.Now()
	output, appErr := w.useCase.Execute(ctx, dto.ConsolidateAllCommand{BatchSize: w.batchSize})
	if appErr != nil {
		w.logger.Error("consolidation cycle failed",
			zap.String("code", appErr.Code),
			zap.String("message", appErr.Message),
			zap.Any("details", appErr.Details),
		)
		return output
	}

	w.logger.Info("consolidation cycle completed",
		zap.Int("scanned", output.Scanned),
		zap.Int("consolidated", output.Consolidated),
		zap.Int("failed", output.Failed),
		zap.Int64("latency_ms", time.Since(startedAt).Milliseconds()),
	)
	return output
}
