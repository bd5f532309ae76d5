package repository

import (
	"context"
	"time"

	"ticket-seckill/internal/domain/user"
	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/infra/db"
	"ticket-seckill/internal/infra/repository/converter"
	"ticket-seckill/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	findUserByUsernameSQL = `SELECT ` + converter.UserColumns + `
FROM users
WHERE username = $1`

	// The no-op update makes RETURNING yield the existing row when two first logins race.
	upsertUserSQL = `
INSERT INTO users (id, username, password_hash, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT ON CONSTRAINT uq_users_username DO UPDATE SET username = EXCLUDED.username
RETURNING ` + converter.UserColumns

	updateUserLastLoginSQL = `UPDATE users SET last_login_at = $2 WHERE id = $1`
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByUsername(ctx context.Context, tx db.DBTX, username user.Username) (*user.User, error) {
	row, err := converter.ScanUser(tx.QueryRow(ctx, findUserByUsernameSQL, username.Value()))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user by username", err)
	}
	u, err := converter.UserRowToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid stored user", err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (*user.User, error) {
	row, err := converter.ScanUser(tx.QueryRow(ctx, upsertUserSQL,
		u.ID(),
		u.Username().Value(),
		u.PasswordHash(),
		u.Role().String(),
	))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to create user", err)
	}
	created, err := converter.UserRowToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid stored user", err)
	}
	return created, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error {
	_, err := tx.Exec(ctx, updateUserLastLoginSQL, userID, at)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update user last login", err)
	}
	return nil
}
