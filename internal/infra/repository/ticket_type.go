package repository

import (
	"context"
	"errors"
	"time"

	"ticket-seckill/internal/domain/catalog"
	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertTicketTypeSQL = `
INSERT INTO ticket_types (id, event_id, name, price_cents, inventory_total, inventory_remaining, sale_starts_at, sale_ends_at)
VALUES ($1, $2, $3, $4, $5, $5, $6, $7)
RETURNING created_at`

	// A single conditional statement: the row lock taken by UPDATE serializes concurrent
	// allocations, and the predicate is re-evaluated against the latest committed row.
	allocateTicketSQL = `
UPDATE ticket_types
SET inventory_remaining = inventory_remaining - 1
WHERE id = $1
  AND inventory_remaining >= 1
  AND sale_starts_at <= $2
  AND sale_ends_at > $2
RETURNING price_cents`

	releaseTicketSQL = `
UPDATE ticket_types
SET inventory_remaining = inventory_remaining + 1
WHERE id = $1
  AND inventory_remaining < inventory_total`
)

type TicketTypeRepository struct{}

func NewTicketTypeRepository() *TicketTypeRepository {
	return &TicketTypeRepository{}
}

func (r *TicketTypeRepository) Create(ctx context.Context, tx db.DBTX, tt *catalog.TicketType) (*catalog.TicketType, error) {
	var createdAt time.Time
	err := tx.QueryRow(ctx, insertTicketTypeSQL,
		tt.ID(),
		tt.EventID(),
		tt.Name(),
		tt.Price().Cents(),
		tt.InventoryTotal(),
		tt.SaleStartsAt(),
		tt.SaleEndsAt(),
	).Scan(&createdAt)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to create ticket type", err)
	}

	return catalog.ReconstructTicketType(
		tt.ID(),
		tt.EventID(),
		tt.Name(),
		tt.Price().Cents(),
		tt.InventoryTotal(),
		tt.InventoryTotal(),
		tt.SaleStartsAt(),
		tt.SaleEndsAt(),
		createdAt,
	), nil
}

func (r *TicketTypeRepository) Allocate(ctx context.Context, tx db.DBTX, ticketTypeID uuid.UUID, now time.Time) (int64, bool, error) {
	var priceCents int64
	err := tx.QueryRow(ctx, allocateTicketSQL, ticketTypeID, now).Scan(&priceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr(infra.KindDBFailure, "failed to allocate ticket", err)
	}
	return priceCents, true, nil
}

func (r *TicketTypeRepository) Release(ctx context.Context, tx db.DBTX, ticketTypeID uuid.UUID) error {
	tag, err := tx.Exec(ctx, releaseTicketSQL, ticketTypeID)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to release ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "no allocated unit to release", nil)
	}
	return nil
}
