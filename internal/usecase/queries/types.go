package queries

import (
	"time"

	"github.com/google/uuid"
)

// OrderView is the read model of an order, returned by both grab and order queries.
type OrderView struct {
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

type IntentView struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	TicketTypeID uuid.UUID  `json:"ticket_type_id"`
	Status       string     `json:"status"`
	OrderID      *uuid.UUID `json:"order_id,omitempty"`
	LastError    *string    `json:"last_error,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type EventView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

type TicketTypeView struct {
	ID                 uuid.UUID `json:"id"`
	EventID            uuid.UUID `json:"event_id"`
	Name               string    `json:"name"`
	PriceCents         int64     `json:"price_cents"`
	InventoryTotal     int32     `json:"inventory_total"`
	InventoryRemaining int32     `json:"inventory_remaining"`
	SaleStartsAt       time.Time `json:"sale_starts_at"`
	SaleEndsAt         time.Time `json:"sale_ends_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
