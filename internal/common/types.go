package common

import (
	"time"
)

type EventType string

const (
	LikeAddedEvent           EventType = "like.added"
	LikeRemovedEvent         EventType = "like.removed"
	SubscriptionAddedEvent   EventType = "subscription.added"
	SubscriptionRemovedEvent EventType = "subscription.removed"
	CommentCreatedEvent      EventType = "comment.created"
	VideoPublishedEvent      EventType = "video.published"
)

type EventMetadata map[string]interface{}

// EngagementEvent is published after a relation or document change has
// been committed.
type EngagementEvent struct {
	Type       EventType     `json:"type"`
	ActorID    string        `json:"actor_id"`
	TargetKind string        `json:"target_kind,omitempty"`
	TargetID   string        `json:"target_id"`
	OccurredAt time.Time     `json:"occurred_at"`
	Metadata   EventMetadata `json:"metadata,omitempty"`
}
