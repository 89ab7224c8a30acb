package pubsub

import (
	"context"
	"log/slog"

	"bpaml/internal/domain/service"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishActivityEvent(_ context.Context, event *service.ActivityEvent) error {
	p.logger.Debug("Event publishing disabled, dropping event",
		slog.String("type", event.Type),
		slog.Int64("activity_id", event.ActivityID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
