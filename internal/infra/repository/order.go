package repository

import (
	"context"
	"errors"

	"ticket-seckill/internal/domain/order"
	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/infra/db"
	"ticket-seckill/internal/infra/repository/converter"
	"ticket-seckill/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	// ON CONFLICT without a target covers both the idempotency constraint and the partial
	// active-order index, so a lost race leaves the transaction usable.
	insertOrderSQL = `
INSERT INTO orders (id, user_id, ticket_type_id, qty, amount_cents, status, idempotency_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT DO NOTHING
RETURNING id`

	findOrderByKeySQL = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE user_id = $1 AND idempotency_key = $2`

	findActiveOrderSQL = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE user_id = $1 AND ticket_type_id = $2 AND status IN ('CREATED', 'PAID')`

	findOwnedOrderForUpdateSQL = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE id = $1 AND user_id = $2
FOR UPDATE`

	markOrderPaidSQL = `
UPDATE orders
SET status = 'PAID', paid_at = $2
WHERE id = $1 AND status = 'CREATED'`

	orderExistsSQL = `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Insert(ctx context.Context, tx db.DBTX, o *order.Order) (bool, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertOrderSQL,
		o.ID(),
		o.UserID(),
		o.TicketTypeID(),
		o.Quantity(),
		o.AmountCents(),
		o.Status().String(),
		converter.IdempotencyKeyToPgtype(o.IdempotencyKey()),
		o.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.ClassifyPgErr("failed to insert order", err)
	}
	return true, nil
}

func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, tx db.DBTX, userID uuid.UUID, key order.IdempotencyKey) (*order.Order, error) {
	row, err := converter.ScanOrder(tx.QueryRow(ctx, findOrderByKeySQL, userID, key.Value()))
	if err != nil {
		return nil, r.findErr(err, "failed to find order by idempotency key")
	}
	return converter.OrderRowToDomain(row), nil
}

func (r *OrderRepository) FindActive(ctx context.Context, tx db.DBTX, userID, ticketTypeID uuid.UUID) (*order.Order, error) {
	row, err := converter.ScanOrder(tx.QueryRow(ctx, findActiveOrderSQL, userID, ticketTypeID))
	if err != nil {
		return nil, r.findErr(err, "failed to find active order")
	}
	return converter.OrderRowToDomain(row), nil
}

func (r *OrderRepository) FindOwnedForUpdate(ctx context.Context, tx db.DBTX, orderID, userID uuid.UUID) (*order.Order, error) {
	row, err := converter.ScanOrder(tx.QueryRow(ctx, findOwnedOrderForUpdateSQL, orderID, userID))
	if err != nil {
		return nil, r.findErr(err, "failed to lock order")
	}
	return converter.OrderRowToDomain(row), nil
}

func (r *OrderRepository) MarkPaid(ctx context.Context, tx db.DBTX, o *order.Order) error {
	tag, err := tx.Exec(ctx, markOrderPaidSQL, o.ID(), pgconv.TimePtrToPgtype(o.PaidAt()))
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to mark order paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "order not payable", nil)
	}
	return nil
}

func (r *OrderRepository) Exists(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, orderExistsSQL, orderID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check order existence", err)
	}
	return exists, nil
}

func (r *OrderRepository) findErr(err error, msg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
