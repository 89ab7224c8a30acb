package service

import (
	"context"
	"time"
)

// ActivityEvent is published after an activity was imported or deleted locally.
type ActivityEvent struct {
	Type            string    `json:"type"`
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	AthleteStravaID int64     `json:"athlete_strava_id"`
	ActivityID      int64     `json:"activity_id"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActivityEvent publishes an activity event for downstream consumers
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
