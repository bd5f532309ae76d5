package commands

import (
	"context"
	"log/slog"
	"time"

	"ticket-seckill/internal/usecase/shared"
)

// publishAfterCommit never fails the caller. Events are notifications, the database stays the
// source of truth.
func publishAfterCommit(ctx context.Context, pub shared.EventPublisher, eventType string, at time.Time, payload any) {
	if pub == nil {
		return
	}
	err := pub.Publish(ctx, shared.DomainEvent{Type: eventType, OccurredAt: at, Payload: payload})
	if err != nil {
		slog.WarnContext(ctx, "failed to publish domain event", "type", eventType, "error", err.Error())
	}
}
