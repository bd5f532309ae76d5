package commands

import (
	"context"

	"ticket-seckill/internal/domain/order"
	"ticket-seckill/internal/infra/repository/converter"
	"ticket-seckill/internal/pkg/clock"
	"ticket-seckill/internal/usecase/queries"
	"ticket-seckill/internal/usecase/shared"

	"github.com/google/uuid"
)

type GrabRequest struct {
	UserID         uuid.UUID
	TicketTypeID   uuid.UUID
	Quantity       int32
	IdempotencyKey string
}

type GrabResult struct {
	Order *queries.OrderView
	// Replayed is true when no new order was created for this request.
	Replayed bool
}

type OrderCommands interface {
	Grab(ctx context.Context, req GrabRequest) (*GrabResult, error)
	Pay(ctx context.Context, userID, orderID uuid.UUID) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher shared.EventPublisher
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock, publisher shared.EventPublisher) OrderCommands {
	return &orderCommandsImpl{
		uow:       uow,
		clock:     clk,
		publisher: publisher,
	}
}

func (uc *orderCommandsImpl) Grab(ctx context.Context, req GrabRequest) (*GrabResult, error) {
	if err := order.ValidateQuantity(req.Quantity); err != nil {
		return nil, invalidInput(err)
	}
	key, err := order.ParseIdempotencyKey(req.IdempotencyKey)
	if err != nil {
		return nil, invalidInput(err)
	}

	var result *placement
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := placeOrder(ctx, tx, req.UserID, req.TicketTypeID, key, uc.clock.Now())
		if err != nil {
			return err
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := converter.OrderToView(result.order)
	if result.created {
		publishAfterCommit(ctx, uc.publisher, shared.EventOrderCreated, view.CreatedAt, view)
	}

	return &GrabResult{Order: view, Replayed: !result.created}, nil
}

func (uc *orderCommandsImpl) Pay(ctx context.Context, userID, orderID uuid.UUID) (*queries.OrderView, error) {
	var paid *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindOwnedForUpdate(ctx, tx.DB(), orderID, userID)
		if err != nil {
			if isNotFound(err) {
				return ErrOrderNotFound
			}
			return storageFailure(err, "lock order")
		}

		if err := o.Pay(uc.clock.Now()); err != nil {
			return ErrOrderNotPayable
		}

		if err := tx.Orders().MarkPaid(ctx, tx.DB(), o); err != nil {
			if isNotFound(err) {
				return ErrOrderNotPayable
			}
			return storageFailure(err, "mark order paid")
		}
		paid = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := converter.OrderToView(paid)
	publishAfterCommit(ctx, uc.publisher, shared.EventOrderPaid, *view.PaidAt, view)
	return view, nil
}
