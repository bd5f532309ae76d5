package commands

import (
	"context"
	"log/slog"

	"ticket-seckill/internal/domain/intent"
	"ticket-seckill/internal/infra/repository/converter"
	"ticket-seckill/internal/pkg/clock"
	"ticket-seckill/internal/pkg/errs"
	"ticket-seckill/internal/usecase/shared"

	"github.com/google/uuid"
)

type FulfillOutcome string

const (
	// OutcomeSkipped: the intent is gone, already FULFILLED, or locked by another worker.
	OutcomeSkipped FulfillOutcome = "skipped"
	// OutcomeFulfilled: the intent already pointed at an existing order.
	OutcomeFulfilled FulfillOutcome = "fulfilled"
	// OutcomeAdopted: the buyer already held an active order, which was attached.
	OutcomeAdopted FulfillOutcome = "adopted"
	// OutcomeCreated: a unit was allocated and a new order created.
	OutcomeCreated FulfillOutcome = "created"
	// OutcomeFailed: the intent stays ACTIVE with last_error set.
	OutcomeFailed FulfillOutcome = "failed"
)

type IntentReconciler interface {
	// ClaimActive returns up to limit ACTIVE intent ids, oldest first.
	ClaimActive(ctx context.Context, limit int) ([]uuid.UUID, error)
	FulfillIntent(ctx context.Context, intentID uuid.UUID) (FulfillOutcome, error)
}

type intentReconcilerImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher shared.EventPublisher
}

func NewIntentReconciler(uow shared.UnitOfWork, clk clock.Clock, publisher shared.EventPublisher) IntentReconciler {
	return &intentReconcilerImpl{
		uow:       uow,
		clock:     clk,
		publisher: publisher,
	}
}

func (r *intentReconcilerImpl) ClaimActive(ctx context.Context, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Intents().ListActiveIDs(ctx, tx.DB(), limit)
		if err != nil {
			return err
		}
		ids = res
		return nil
	})
	if err != nil {
		return nil, storageFailure(err, "list active intents")
	}
	return ids, nil
}

// FulfillIntent attempts one intent under its row lock. A failed attempt rolls back every
// write of the attempt and then records last_error, so the intent is retried on a later tick.
// The returned error is non-nil only together with OutcomeFailed.
func (r *intentReconcilerImpl) FulfillIntent(ctx context.Context, intentID uuid.UUID) (FulfillOutcome, error) {
	var (
		locked  *intent.PurchaseIntent
		outcome = OutcomeSkipped
	)

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, outcome = nil, OutcomeSkipped

		p, err := tx.Intents().LockByID(ctx, tx.DB(), intentID)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return storageFailure(err, "lock intent")
		}
		locked = p
		if !p.IsActive() {
			return nil
		}

		now := r.clock.Now()

		if orderID := p.OrderID(); orderID != nil {
			exists, err := tx.Orders().Exists(ctx, tx.DB(), *orderID)
			if err != nil {
				return storageFailure(err, "check intent order")
			}
			if exists {
				if err := p.Fulfill(*orderID, now); err != nil {
					return err
				}
				if err := tx.Intents().MarkFulfilled(ctx, tx.DB(), p); err != nil {
					return storageFailure(err, "mark intent fulfilled")
				}
				outcome = OutcomeFulfilled
				return nil
			}
		}

		key := p.IdempotencyKey()
		placed, err := placeOrder(ctx, tx, p.UserID(), p.TicketTypeID(), &key, now)
		if err != nil {
			return err
		}
		// A key hit only counts when it is an order for the intent's own ticket type.
		if placed.order.TicketTypeID() != p.TicketTypeID() {
			return ErrIntentKeyTaken
		}

		if err := p.Fulfill(placed.order.ID(), now); err != nil {
			return err
		}
		if err := tx.Intents().MarkFulfilled(ctx, tx.DB(), p); err != nil {
			return storageFailure(err, "mark intent fulfilled")
		}

		outcome = OutcomeAdopted
		if placed.created {
			outcome = OutcomeCreated
		}
		return nil
	})
	if err != nil {
		// Shutdown mid-attempt: the rollback already left the intent ACTIVE.
		if ctx.Err() != nil {
			return OutcomeFailed, ctx.Err()
		}
		r.recordFailure(ctx, locked, intentID, err)
		return OutcomeFailed, err
	}

	if outcome != OutcomeSkipped {
		publishAfterCommit(ctx, r.publisher, shared.EventIntentFulfilled, locked.UpdatedAt(), converter.IntentToView(locked))
	}
	return outcome, nil
}

func (r *intentReconcilerImpl) recordFailure(ctx context.Context, p *intent.PurchaseIntent, intentID uuid.UUID, cause error) {
	if !errs.Is(cause, ErrTicketUnavailable) {
		slog.ErrorContext(ctx, "intent fulfill error", "intent_id", intentID, "error", cause.Error())
	}
	if p == nil {
		// The lock itself failed, nothing is known about the row.
		return
	}

	p.RecordFailure(cause.Error(), r.clock.Now())
	err := r.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Intents().RecordFailure(ctx, tx.DB(), p)
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to record intent failure", "intent_id", intentID, "error", err.Error())
	}
}
