package converter

import (
	"time"

	"ticket-seckill/internal/domain/order"
	"ticket-seckill/internal/pkg/pgconv"
	"ticket-seckill/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// OrderColumns is the select list matched by ScanOrder.
const OrderColumns = `id, user_id, ticket_type_id, qty, amount_cents, status, idempotency_key, created_at, paid_at`

type OrderRow struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	TicketTypeID   uuid.UUID
	Qty            int32
	AmountCents    int64
	Status         string
	IdempotencyKey pgtype.Text
	CreatedAt      time.Time
	PaidAt         pgtype.Timestamptz
}

func ScanOrder(row pgx.Row) (OrderRow, error) {
	var r OrderRow
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.TicketTypeID,
		&r.Qty,
		&r.AmountCents,
		&r.Status,
		&r.IdempotencyKey,
		&r.CreatedAt,
		&r.PaidAt,
	)
	return r, err
}

func OrderRowToDomain(r OrderRow) *order.Order {
	var key *order.IdempotencyKey
	if r.IdempotencyKey.Valid {
		// Stored keys were validated on the way in.
		k, err := order.NewIdempotencyKey(r.IdempotencyKey.String)
		if err == nil {
			key = &k
		}
	}
	return order.ReconstructOrder(
		r.ID,
		r.UserID,
		r.TicketTypeID,
		r.Qty,
		r.AmountCents,
		order.Status(r.Status),
		key,
		r.CreatedAt,
		pgconv.TimePtrFromPgtype(r.PaidAt),
	)
}

func OrderRowToView(r OrderRow) *queries.OrderView {
	return &queries.OrderView{
		ID:             r.ID,
		UserID:         r.UserID,
		TicketTypeID:   r.TicketTypeID,
		Qty:            r.Qty,
		AmountCents:    r.AmountCents,
		Status:         r.Status,
		IdempotencyKey: pgconv.StringPtrFromPgtype(r.IdempotencyKey),
		CreatedAt:      r.CreatedAt,
		PaidAt:         pgconv.TimePtrFromPgtype(r.PaidAt),
	}
}

// OrderToView renders a domain order with the same shape the read side returns.
func OrderToView(o *order.Order) *queries.OrderView {
	var key *string
	if k := o.IdempotencyKey(); k != nil {
		v := k.Value()
		key = &v
	}
	return &queries.OrderView{
		ID:             o.ID(),
		UserID:         o.UserID(),
		TicketTypeID:   o.TicketTypeID(),
		Qty:            o.Quantity(),
		AmountCents:    o.AmountCents(),
		Status:         o.Status().String(),
		IdempotencyKey: key,
		CreatedAt:      o.CreatedAt(),
		PaidAt:         o.PaidAt(),
	}
}

func IdempotencyKeyToPgtype(k *order.IdempotencyKey) pgtype.Text {
	if k == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: k.Value(), Valid: true}
}
