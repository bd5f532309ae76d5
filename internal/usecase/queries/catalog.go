package queries

import (
	"context"

	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTicketTypeNotFound = errs.Mark(errs.New("ticket type not found"), errs.ErrNotFound)

type CatalogQueries interface {
	ListEvents(ctx context.Context) ([]*EventView, error)
	ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]*TicketTypeView, error)
	GetTicketType(ctx context.Context, id uuid.UUID) (*TicketTypeView, error)
}

type CatalogReadStore interface {
	ListEvents(ctx context.Context) ([]*EventView, error)
	ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]*TicketTypeView, error)
	FindTicketType(ctx context.Context, id uuid.UUID) (*TicketTypeView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListEvents(ctx context.Context) ([]*EventView, error) {
	views, err := q.readStore.ListEvents(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]*TicketTypeView, error) {
	views, err := q.readStore.ListTicketTypes(ctx, eventID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetTicketType(ctx context.Context, id uuid.UUID) (*TicketTypeView, error) {
	view, err := q.readStore.FindTicketType(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketTypeNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return view, nil
}
