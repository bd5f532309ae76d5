package repository

import (
	"context"
	"time"

	"ticket-seckill/internal/domain/catalog"
	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertEventSQL = `
INSERT INTO events (id, name, starts_at, ends_at)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	eventExistsSQL = `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`
)

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(ctx context.Context, tx db.DBTX, e *catalog.Event) (*catalog.Event, error) {
	var createdAt time.Time
	err := tx.QueryRow(ctx, insertEventSQL, e.ID(), e.Name(), e.StartsAt(), e.EndsAt()).Scan(&createdAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to create event", err)
	}
	return catalog.ReconstructEvent(e.ID(), e.Name(), e.StartsAt(), e.EndsAt(), createdAt), nil
}

func (r *EventRepository) Exists(ctx context.Context, tx db.DBTX, eventID uuid.UUID) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, eventExistsSQL, eventID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check event existence", err)
	}
	return exists, nil
}
