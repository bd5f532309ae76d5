package shared

import (
	"context"
	"time"
)

const (
	EventOrderCreated    = "order.created"
	EventOrderPaid       = "order.paid"
	EventIntentFulfilled = "intent.fulfilled"
)

// DomainEvent is published after the transaction that produced it commits.
type DomainEvent struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}
