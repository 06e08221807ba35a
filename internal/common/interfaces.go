package common

import (
	"context" // provides context for cancellation, deletion, update anything
)

// EventPublisher delivers engagement events to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, event EngagementEvent) error
}

// EventSink accepts events without blocking the caller.
type EventSink interface {
	Emit(event EngagementEvent)
}
