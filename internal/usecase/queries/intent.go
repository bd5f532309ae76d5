package queries

import (
	"context"

	"ticket-seckill/internal/pkg/errs"

	"github.com/google/uuid"
)

type IntentQueries interface {
	// ListMine returns the buyer's intents, newest first.
	ListMine(ctx context.Context, userID uuid.UUID) ([]*IntentView, error)
}

type IntentReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*IntentView, error)
}

type intentQueriesImpl struct {
	readStore IntentReadStore
}

func NewIntentQueries(readStore IntentReadStore) IntentQueries {
	return &intentQueriesImpl{readStore: readStore}
}

func (q *intentQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*IntentView, error) {
	views, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return views, nil
}
