package queries

import (
	"context"

	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.Mark(errs.New("order not found"), errs.ErrNotFound)

type OrderQueries interface {
	// ListMine returns the buyer's orders, newest first.
	ListMine(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	// GetMine hides orders of other buyers behind ErrOrderNotFound.
	GetMine(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error)
}

type OrderReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	FindByIDForUser(ctx context.Context, orderID, userID uuid.UUID) (*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*OrderView, error) {
	views, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return views, nil
}

func (q *orderQueriesImpl) GetMine(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return view, nil
}
