package converter

import (
	"time"

	"ticket-seckill/internal/domain/user"
	"ticket-seckill/internal/pkg/pgconv"
	"ticket-seckill/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const UserColumns = `id, username, password_hash, role, last_login_at, created_at`

type UserRow struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         string
	LastLoginAt  pgtype.Timestamptz
	CreatedAt    time.Time
}

func ScanUser(row pgx.Row) (UserRow, error) {
	var r UserRow
	err := row.Scan(&r.ID, &r.Username, &r.PasswordHash, &r.Role, &r.LastLoginAt, &r.CreatedAt)
	return r, err
}

func UserRowToDomain(r UserRow) (*user.User, error) {
	username, err := user.NewUsername(r.Username)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(r.ID, username, r.PasswordHash, role, pgconv.TimePtrFromPgtype(r.LastLoginAt), r.CreatedAt), nil
}

func UserRowToView(r UserRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          r.ID,
		Username:    r.Username,
		Role:        r.Role,
		LastLoginAt: pgconv.TimePtrFromPgtype(r.LastLoginAt),
		CreatedAt:   r.CreatedAt,
	}
}
