package readstore

import (
	"context"

	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/infra/db"
	"ticket-seckill/internal/infra/repository/converter"
	"ticket-seckill/internal/usecase/queries"

	"github.com/google/uuid"
)

const listIntentsByUserSQL = `SELECT ` + converter.IntentColumns + `
FROM purchase_intents
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

type IntentReadStore struct {
	db db.DBTX
}

func NewIntentReadStore(db db.DBTX) *IntentReadStore {
	return &IntentReadStore{db: db}
}

func (r *IntentReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.IntentView, error) {
	rows, err := r.db.Query(ctx, listIntentsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list purchase intents", err)
	}
	defer rows.Close()

	views := make([]*queries.IntentView, 0)
	for rows.Next() {
		row, err := converter.ScanIntent(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan purchase intent", err)
		}
		views = append(views, converter.IntentRowToView(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate purchase intents", err)
	}
	return views, nil
}
