package events

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	p.logger.Debug("event", zap.String("subject", subject), zap.Any("payload", payload))
	return nil
}

func (p *LogPublisher) Close() {}
