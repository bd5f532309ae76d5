package intent

import (
	"errors"
	"time"

	"ticket-seckill/internal/domain/order"

	"github.com/google/uuid"
)

var ErrAlreadyFulfilled = errors.New("intent already fulfilled")

const keyPrefix = order.ReservedKeyPrefix

// PurchaseIntent is a standing request for one unit of a ticket type. Only the reconciliation
// worker mutates it, and FULFILLED is its only terminal state.
type PurchaseIntent struct {
	id             uuid.UUID
	userID         uuid.UUID
	ticketTypeID   uuid.UUID
	status         Status
	orderID        *uuid.UUID
	lastError      *string
	idempotencyKey order.IdempotencyKey
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPurchaseIntent(userID, ticketTypeID uuid.UUID, now time.Time) *PurchaseIntent {
	id := uuid.Must(uuid.NewV7())
	return &PurchaseIntent{
		id:             id,
		userID:         userID,
		ticketTypeID:   ticketTypeID,
		status:         StatusActive,
		idempotencyKey: KeyFor(id),
		createdAt:      now,
		updatedAt:      now,
	}
}

func ReconstructPurchaseIntent(
	id, userID, ticketTypeID uuid.UUID,
	status Status,
	orderID *uuid.UUID,
	lastError *string,
	createdAt, updatedAt time.Time,
) *PurchaseIntent {
	return &PurchaseIntent{
		id:             id,
		userID:         userID,
		ticketTypeID:   ticketTypeID,
		status:         status,
		orderID:        orderID,
		lastError:      lastError,
		idempotencyKey: KeyFor(id),
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// KeyFor derives the order idempotency key of an intent. It depends on the id only, so every
// fulfillment attempt of the same intent reuses it.
func KeyFor(id uuid.UUID) order.IdempotencyKey {
	key, err := order.NewIdempotencyKey(keyPrefix + id.String())
	if err != nil {
		panic("intent: derived idempotency key rejected: " + err.Error())
	}
	return key
}

// Fulfill attaches orderID and marks the intent FULFILLED.
func (p *PurchaseIntent) Fulfill(orderID uuid.UUID, now time.Time) error {
	if p.status != StatusActive {
		return ErrAlreadyFulfilled
	}
	p.status = StatusFulfilled
	p.orderID = &orderID
	p.updatedAt = now
	return nil
}

// RecordFailure keeps the intent ACTIVE and remembers why the last attempt failed.
func (p *PurchaseIntent) RecordFailure(reason string, now time.Time) {
	p.lastError = &reason
	p.updatedAt = now
}

func (p *PurchaseIntent) IsActive() bool { return p.status == StatusActive }

func (p *PurchaseIntent) ID() uuid.UUID                       { return p.id }
func (p *PurchaseIntent) UserID() uuid.UUID                   { return p.userID }
func (p *PurchaseIntent) TicketTypeID() uuid.UUID             { return p.ticketTypeID }
func (p *PurchaseIntent) Status() Status                      { return p.status }
func (p *PurchaseIntent) OrderID() *uuid.UUID                 { return p.orderID }
func (p *PurchaseIntent) LastError() *string                  { return p.lastError }
func (p *PurchaseIntent) IdempotencyKey() order.IdempotencyKey { return p.idempotencyKey }
func (p *PurchaseIntent) CreatedAt() time.Time                { return p.createdAt }
func (p *PurchaseIntent) UpdatedAt() time.Time                { return p.updatedAt }
