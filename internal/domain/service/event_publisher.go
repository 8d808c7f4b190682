package service

import (
	"context"
	"time"
)

// MarketplaceEvent is an account-facing event published after a moderation action.
type MarketplaceEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a marketplace event to downstream consumers.
	Publish(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
