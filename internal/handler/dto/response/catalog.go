package response

import (
	"time"

	"ticket-seckill/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

type TicketTypeResponse struct {
	ID                 uuid.UUID `json:"id"`
	EventID            uuid.UUID `json:"event_id"`
	Name               string    `json:"name"`
	PriceCents         int64     `json:"price_cents"`
	InventoryTotal     int32     `json:"inventory_total"`
	InventoryRemaining int32     `json:"inventory_remaining"`
	SaleStartsAt       time.Time `json:"sale_starts_at"`
	SaleEndsAt         time.Time `json:"sale_ends_at"`
}

func FromEventViews(vs []*queries.EventView) ([]*EventResponse, error) {
	res := make([]*EventResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, err
	}
	return res, nil
}

func FromEventView(v *queries.EventView) (*EventResponse, error) {
	var res EventResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromTicketTypeViews(vs []*queries.TicketTypeView) ([]*TicketTypeResponse, error) {
	res := make([]*TicketTypeResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, err
	}
	return res, nil
}

func FromTicketTypeView(v *queries.TicketTypeView) (*TicketTypeResponse, error) {
	var res TicketTypeResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
