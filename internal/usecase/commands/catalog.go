package commands

import (
	"context"
	"time"

	"ticket-seckill/internal/domain/catalog"
	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/usecase/queries"
	"ticket-seckill/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Name     string
	StartsAt time.Time
	EndsAt   time.Time
}

type CreateTicketTypeRequest struct {
	EventID        uuid.UUID
	Name           string
	PriceCents     int64
	InventoryTotal int32
	SaleStartsAt   time.Time
	SaleEndsAt     time.Time
}

type CatalogCommands interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*queries.EventView, error)
	CreateTicketType(ctx context.Context, req CreateTicketTypeRequest) (*queries.TicketTypeView, error)
}

type catalogCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogCommands(uow shared.UnitOfWork) CatalogCommands {
	return &catalogCommandsImpl{uow: uow}
}

func (uc *catalogCommandsImpl) CreateEvent(ctx context.Context, req CreateEventRequest) (*queries.EventView, error) {
	ev, err := catalog.NewEvent(req.Name, req.StartsAt, req.EndsAt)
	if err != nil {
		return nil, invalidInput(err)
	}

	var created *catalog.Event
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Events().Create(ctx, tx.DB(), ev)
		if err != nil {
			return storageFailure(err, "create event")
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.EventView{
		ID:       created.ID(),
		Name:     created.Name(),
		StartsAt: created.StartsAt(),
		EndsAt:   created.EndsAt(),
	}, nil
}

func (uc *catalogCommandsImpl) CreateTicketType(ctx context.Context, req CreateTicketTypeRequest) (*queries.TicketTypeView, error) {
	tt, err := catalog.NewTicketType(req.EventID, req.Name, req.PriceCents, req.InventoryTotal, req.SaleStartsAt, req.SaleEndsAt)
	if err != nil {
		return nil, invalidInput(err)
	}

	var created *catalog.TicketType
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Events().Exists(ctx, tx.DB(), req.EventID)
		if err != nil {
			return storageFailure(err, "check event")
		}
		if !exists {
			return ErrEventNotFound
		}

		res, err := tx.TicketTypes().Create(ctx, tx.DB(), tt)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrEventNotFound
			}
			return storageFailure(err, "create ticket type")
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.TicketTypeView{
		ID:                 created.ID(),
		EventID:            created.EventID(),
		Name:               created.Name(),
		PriceCents:         created.Price().Cents(),
		InventoryTotal:     created.InventoryTotal(),
		InventoryRemaining: created.InventoryRemaining(),
		SaleStartsAt:       created.SaleStartsAt(),
		SaleEndsAt:         created.SaleEndsAt(),
	}, nil
}
