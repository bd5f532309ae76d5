package repository

import (
	"context"

	"ticket-seckill/internal/domain/intent"
	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/infra/db"
	"ticket-seckill/internal/infra/repository/converter"
	"ticket-seckill/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertIntentSQL = `
INSERT INTO purchase_intents (id, user_id, ticket_type_id, status, idempotency_key, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + converter.IntentColumns

	listActiveIntentIDsSQL = `
SELECT id
FROM purchase_intents
WHERE status = 'ACTIVE'
ORDER BY created_at ASC, id ASC
LIMIT $1`

	// SKIP LOCKED lets several workers share the queue without waiting on each other.
	lockIntentSQL = `SELECT ` + converter.IntentColumns + `
FROM purchase_intents
WHERE id = $1
FOR UPDATE SKIP LOCKED`

	markIntentFulfilledSQL = `
UPDATE purchase_intents
SET status = 'FULFILLED', order_id = $2, last_error = NULL, updated_at = $3
WHERE id = $1`

	recordIntentFailureSQL = `
UPDATE purchase_intents
SET last_error = $2, updated_at = $3
WHERE id = $1 AND status = 'ACTIVE'`
)

type IntentRepository struct{}

func NewIntentRepository() *IntentRepository {
	return &IntentRepository{}
}

func (r *IntentRepository) Create(ctx context.Context, tx db.DBTX, p *intent.PurchaseIntent) (*intent.PurchaseIntent, error) {
	row, err := converter.ScanIntent(tx.QueryRow(ctx, insertIntentSQL,
		p.ID(),
		p.UserID(),
		p.TicketTypeID(),
		p.Status().String(),
		p.IdempotencyKey().Value(),
		p.CreatedAt(),
	))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to create purchase intent", err)
	}
	return converter.IntentRowToDomain(row), nil
}

func (r *IntentRepository) ListActiveIDs(ctx context.Context, tx db.DBTX, limit int) ([]uuid.UUID, error) {
	rows, err := tx.Query(ctx, listActiveIntentIDsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list active intents", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, limit)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan intent id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate active intents", err)
	}
	return ids, nil
}

func (r *IntentRepository) LockByID(ctx context.Context, tx db.DBTX, intentID uuid.UUID) (*intent.PurchaseIntent, error) {
	row, err := converter.ScanIntent(tx.QueryRow(ctx, lockIntentSQL, intentID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "intent missing or locked", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to lock intent", err)
	}
	return converter.IntentRowToDomain(row), nil
}

func (r *IntentRepository) MarkFulfilled(ctx context.Context, tx db.DBTX, p *intent.PurchaseIntent) error {
	_, err := tx.Exec(ctx, markIntentFulfilledSQL, p.ID(), pgconv.UUIDPtrToPgtype(p.OrderID()), p.UpdatedAt())
	if err != nil {
		return infra.ClassifyPgErr("failed to mark intent fulfilled", err)
	}
	return nil
}

func (r *IntentRepository) RecordFailure(ctx context.Context, tx db.DBTX, p *intent.PurchaseIntent) error {
	_, err := tx.Exec(ctx, recordIntentFailureSQL, p.ID(), pgconv.StringPtrToPgtype(p.LastError()), p.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to record intent failure", err)
	}
	return nil
}
