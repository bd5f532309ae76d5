package readstore

import (
	"context"

	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/infra/db"
	"ticket-seckill/internal/infra/repository/converter"
	"ticket-seckill/internal/pkg/pgconv"
	"ticket-seckill/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	listOrdersByUserSQL = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

	findOrderForUserSQL = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE id = $1 AND user_id = $2`
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, listOrdersByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list orders", err)
	}
	defer rows.Close()

	views := make([]*queries.OrderView, 0)
	for rows.Next() {
		row, err := converter.ScanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan order", err)
		}
		views = append(views, converter.OrderRowToView(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate orders", err)
	}
	return views, nil
}

// FindByIDForUser treats orders owned by someone else as missing.
func (r *OrderReadStore) FindByIDForUser(ctx context.Context, orderID, userID uuid.UUID) (*queries.OrderView, error) {
	row, err := converter.ScanOrder(r.db.QueryRow(ctx, findOrderForUserSQL, orderID, userID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get order", err)
	}
	return converter.OrderRowToView(row), nil
}
