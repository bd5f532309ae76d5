package converter

import (
	"time"

	"ticket-seckill/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	EventColumns      = `id, name, starts_at, ends_at`
	TicketTypeColumns = `id, event_id, name, price_cents, inventory_total, inventory_remaining, sale_starts_at, sale_ends_at`
)

type EventRow struct {
	ID       uuid.UUID
	Name     string
	StartsAt time.Time
	EndsAt   time.Time
}

func ScanEvent(row pgx.Row) (EventRow, error) {
	var r EventRow
	err := row.Scan(&r.ID, &r.Name, &r.StartsAt, &r.EndsAt)
	return r, err
}

func EventRowToView(r EventRow) *queries.EventView {
	return &queries.EventView{
		ID:       r.ID,
		Name:     r.Name,
		StartsAt: r.StartsAt,
		EndsAt:   r.EndsAt,
	}
}

type TicketTypeRow struct {
	ID                 uuid.UUID
	EventID            uuid.UUID
	Name               string
	PriceCents         int64
	InventoryTotal     int32
	InventoryRemaining int32
	SaleStartsAt       time.Time
	SaleEndsAt         time.Time
}

func ScanTicketType(row pgx.Row) (TicketTypeRow, error) {
	var r TicketTypeRow
	err := row.Scan(
		&r.ID,
		&r.EventID,
		&r.Name,
		&r.PriceCents,
		&r.InventoryTotal,
		&r.InventoryRemaining,
		&r.SaleStartsAt,
		&r.SaleEndsAt,
	)
	return r, err
}

func TicketTypeRowToView(r TicketTypeRow) *queries.TicketTypeView {
	return &queries.TicketTypeView{
		ID:                 r.ID,
		EventID:            r.EventID,
		Name:               r.Name,
		PriceCents:         r.PriceCents,
		InventoryTotal:     r.InventoryTotal,
		InventoryRemaining: r.InventoryRemaining,
		SaleStartsAt:       r.SaleStartsAt,
		SaleEndsAt:         r.SaleEndsAt,
	}
}
