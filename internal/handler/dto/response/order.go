package response

import (
	"time"

	"ticket-seckill/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	TicketTypeID   uuid.UUID  `json:"ticket_type_id"`
	Qty            int32      `json:"qty"`
	AmountCents    int64      `json:"amount_cents"`
	Status         string     `json:"status"`
	IdempotencyKey *string    `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

type IntentResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	TicketTypeID uuid.UUID  `json:"ticket_type_id"`
	Status       string     `json:"status"`
	OrderID      *uuid.UUID `json:"order_id,omitempty"`
	LastError    *string    `json:"last_error,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	var res OrderResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromOrderViews(vs []*queries.OrderView) ([]*OrderResponse, error) {
	res := make([]*OrderResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, err
	}
	return res, nil
}

func FromIntentView(v *queries.IntentView) (*IntentResponse, error) {
	var res IntentResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromIntentViews(vs []*queries.IntentView) ([]*IntentResponse, error) {
	res := make([]*IntentResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, err
	}
	return res, nil
}
