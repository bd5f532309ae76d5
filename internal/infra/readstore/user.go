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

const findUserByIDSQL = `SELECT ` + converter.UserColumns + `
FROM users
WHERE id = $1`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := converter.ScanUser(r.db.QueryRow(ctx, findUserByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user by ID", err)
	}
	return converter.UserRowToView(row), nil
}
