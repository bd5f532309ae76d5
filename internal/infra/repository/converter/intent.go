package converter

import (
	"time"

	"ticket-seckill/internal/domain/intent"
	"ticket-seckill/internal/pkg/pgconv"
	"ticket-seckill/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const IntentColumns = `id, user_id, ticket_type_id, status, order_id, last_error, created_at, updated_at`

type IntentRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	TicketTypeID uuid.UUID
	Status       string
	OrderID      pgtype.UUID
	LastError    pgtype.Text
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ScanIntent(row pgx.Row) (IntentRow, error) {
	var r IntentRow
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.TicketTypeID,
		&r.Status,
		&r.OrderID,
		&r.LastError,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func IntentRowToDomain(r IntentRow) *intent.PurchaseIntent {
	return intent.ReconstructPurchaseIntent(
		r.ID,
		r.UserID,
		r.TicketTypeID,
		intent.Status(r.Status),
		pgconv.UUIDPtrFromPgtype(r.OrderID),
		pgconv.StringPtrFromPgtype(r.LastError),
		r.CreatedAt,
		r.UpdatedAt,
	)
}

func IntentRowToView(r IntentRow) *queries.IntentView {
	return &queries.IntentView{
		ID:           r.ID,
		UserID:       r.UserID,
		TicketTypeID: r.TicketTypeID,
		Status:       r.Status,
		OrderID:      pgconv.UUIDPtrFromPgtype(r.OrderID),
		LastError:    pgconv.StringPtrFromPgtype(r.LastError),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func IntentToView(p *intent.PurchaseIntent) *queries.IntentView {
	return &queries.IntentView{
		ID:           p.ID(),
		UserID:       p.UserID(),
		TicketTypeID: p.TicketTypeID(),
		Status:       p.Status().String(),
		OrderID:      p.OrderID(),
		LastError:    p.LastError(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}
