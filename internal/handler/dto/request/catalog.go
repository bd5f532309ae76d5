package request

import (
	"time"

	"ticket-seckill/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Name     string    `json:"name" binding:"required"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
}

func (r CreateEventRequest) ToCommand() commands.CreateEventRequest {
	return commands.CreateEventRequest{
		Name:     r.Name,
		StartsAt: r.StartsAt,
		EndsAt:   r.EndsAt,
	}
}

type CreateTicketTypeRequest struct {
	// Only read by POST /api/admin/ticket-types; the nested route takes it from the path.
	EventID        uuid.UUID `json:"event_id"`
	Name           string    `json:"name" binding:"required"`
	PriceCents     int64     `json:"price_cents" binding:"min=0"`
	InventoryTotal int32     `json:"inventory_total" binding:"required,gt=0"`
	SaleStartsAt   time.Time `json:"sale_starts_at" binding:"required"`
	SaleEndsAt     time.Time `json:"sale_ends_at" binding:"required"`
}

func (r CreateTicketTypeRequest) ToCommand(eventID uuid.UUID) commands.CreateTicketTypeRequest {
	return commands.CreateTicketTypeRequest{
		EventID:        eventID,
		Name:           r.Name,
		PriceCents:     r.PriceCents,
		InventoryTotal: r.InventoryTotal,
		SaleStartsAt:   r.SaleStartsAt,
		SaleEndsAt:     r.SaleEndsAt,
	}
}
