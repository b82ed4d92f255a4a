package statussink

import (
	"context"

	portsout "alphtip/internal/application/ports/out"

	"go.uber.org/zap"
)

// LogSink writes status updates to the service log. It never fails.
type LogSink struct {
	logger *zap.Logger
}

var _ portsout.StatusSink = (*LogSink)(nil)

func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) OnUpdate(_ context.Context, text string) error {
	s.logger.Info("transaction status", zap.String("status", text))
	return nil
}
