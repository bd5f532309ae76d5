package order

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	id             uuid.UUID
	userID         uuid.UUID
	ticketTypeID   uuid.UUID
	quantity       int32
	amountCents    int64
	status         Status
	idempotencyKey *IdempotencyKey
	createdAt      time.Time
	paidAt         *time.Time
}

// NewOrder builds a CREATED order for one allocated unit at priceCents.
func NewOrder(userID, ticketTypeID uuid.UUID, priceCents int64, key *IdempotencyKey, now time.Time) (*Order, error) {
	if priceCents < 0 {
		return nil, ErrNegativeAmount
	}
	return &Order{
		id:             uuid.Must(uuid.NewV7()),
		userID:         userID,
		ticketTypeID:   ticketTypeID,
		quantity:       Quantity,
		amountCents:    priceCents * int64(Quantity),
		status:         StatusCreated,
		idempotencyKey: key,
		createdAt:      now,
	}, nil
}

func ReconstructOrder(
	id, userID, ticketTypeID uuid.UUID,
	quantity int32,
	amountCents int64,
	status Status,
	idempotencyKey *IdempotencyKey,
	createdAt time.Time,
	paidAt *time.Time,
) *Order {
	return &Order{
		id:             id,
		userID:         userID,
		ticketTypeID:   ticketTypeID,
		quantity:       quantity,
		amountCents:    amountCents,
		status:         status,
		idempotencyKey: idempotencyKey,
		createdAt:      createdAt,
		paidAt:         paidAt,
	}
}

// Pay moves CREATED to PAID. PAID is terminal.
func (o *Order) Pay(now time.Time) error {
	if o.status != StatusCreated {
		return ErrNotPayable
	}
	o.status = StatusPaid
	paidAt := now
	o.paidAt = &paidAt
	return nil
}

func (o *Order) IsActive() bool { return o.status.IsActive() }

func (o *Order) ID() uuid.UUID                   { return o.id }
func (o *Order) UserID() uuid.UUID               { return o.userID }
func (o *Order) TicketTypeID() uuid.UUID         { return o.ticketTypeID }
func (o *Order) Quantity() int32                 { return o.quantity }
func (o *Order) AmountCents() int64              { return o.amountCents }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) IdempotencyKey() *IdempotencyKey { return o.idempotencyKey }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) PaidAt() *time.Time              { return o.paidAt }
