package commands

import (
	"context"
	"time"

	"ticket-seckill/internal/domain/order"
	"ticket-seckill/internal/usecase/shared"

	"github.com/google/uuid"
)

// placement is the result of placeOrder. created is false when an existing order was returned.
type placement struct {
	order   *order.Order
	created bool
}

// placeOrder runs the shared path of a direct grab and an intent fulfillment inside tx:
// replay by key, reuse of the buyer's active order, one conditional allocation, then an
// insert that may lose a uniqueness race to a concurrent request of the same buyer.
func placeOrder(ctx context.Context, tx shared.Tx, userID, ticketTypeID uuid.UUID, key *order.IdempotencyKey, now time.Time) (*placement, error) {
	existing, err := findExisting(ctx, tx, userID, ticketTypeID, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &placement{order: existing}, nil
	}

	priceCents, allocated, err := tx.TicketTypes().Allocate(ctx, tx.DB(), ticketTypeID, now)
	if err != nil {
		return nil, storageFailure(err, "allocate ticket")
	}
	if !allocated {
		// A concurrent request of the same buyer may have taken the last unit.
		existing, err = findExisting(ctx, tx, userID, ticketTypeID, key)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &placement{order: existing}, nil
		}
		return nil, ErrTicketUnavailable
	}

	o, err := order.NewOrder(userID, ticketTypeID, priceCents, key, now)
	if err != nil {
		return nil, storageFailure(err, "build order")
	}

	inserted, err := tx.Orders().Insert(ctx, tx.DB(), o)
	if err != nil {
		return nil, storageFailure(err, "insert order")
	}
	if inserted {
		return &placement{order: o, created: true}, nil
	}

	// Lost the race: give the unit back and return the winner.
	if err := tx.TicketTypes().Release(ctx, tx.DB(), ticketTypeID); err != nil {
		return nil, storageFailure(err, "release ticket")
	}
	winner, err := findExisting(ctx, tx, userID, ticketTypeID, key)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, ErrOrderRaceUnresolved
	}
	return &placement{order: winner}, nil
}

// findExisting looks up the order a request should resolve to without allocating:
// first by idempotency key, then by the buyer's active order for the ticket type.
func findExisting(ctx context.Context, tx shared.Tx, userID, ticketTypeID uuid.UUID, key *order.IdempotencyKey) (*order.Order, error) {
	if key != nil {
		o, err := tx.Orders().FindByIdempotencyKey(ctx, tx.DB(), userID, *key)
		if err == nil {
			return o, nil
		}
		if !isNotFound(err) {
			return nil, storageFailure(err, "find order by idempotency key")
		}
	}

	o, err := tx.Orders().FindActive(ctx, tx.DB(), userID, ticketTypeID)
	if err == nil {
		return o, nil
	}
	if !isNotFound(err) {
		return nil, storageFailure(err, "find active order")
	}
	return nil, nil
}
