package commands

import (
	"context"

	"ticket-seckill/internal/domain/intent"
	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/infra/repository/converter"
	"ticket-seckill/internal/pkg/clock"
	"ticket-seckill/internal/usecase/queries"
	"ticket-seckill/internal/usecase/shared"

	"github.com/google/uuid"
)

type IntentCommands interface {
	Create(ctx context.Context, userID, ticketTypeID uuid.UUID) (*queries.IntentView, error)
}

type intentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewIntentCommands(uow shared.UnitOfWork, clk clock.Clock) IntentCommands {
	return &intentCommandsImpl{uow: uow, clock: clk}
}

// Create registers a standing request. The partial unique index on ACTIVE intents decides
// the duplicate case, so two concurrent creates cannot both succeed.
func (uc *intentCommandsImpl) Create(ctx context.Context, userID, ticketTypeID uuid.UUID) (*queries.IntentView, error) {
	p := intent.NewPurchaseIntent(userID, ticketTypeID, uc.clock.Now())

	var created *intent.PurchaseIntent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Intents().Create(ctx, tx.DB(), p)
		if err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == infra.ConstraintIntentsActivePerTicket:
			return nil, ErrActiveIntentExists
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrTicketTypeNotFound
		default:
			return nil, storageFailure(err, "create purchase intent")
		}
	}

	return converter.IntentToView(created), nil
}
