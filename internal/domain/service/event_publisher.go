package service

import (
	"context"
	"time"
)

// AdEvent describes a change to an ad or one of its comments.
type AdEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	AdID       int64     `json:"ad_id"`
	CommentID  int64     `json:"comment_id,omitempty"`
	ActorID    int64     `json:"actor_id"`
	ImagePath  string    `json:"image_path,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAdEvent publishes an ad lifecycle event
	PublishAdEvent(ctx context.Context, event *AdEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
