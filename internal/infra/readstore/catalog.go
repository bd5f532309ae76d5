package readstore

import (
	"context"

	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/infra/db"
	"ticket-seckill/internal/infra/repository/converter"
	"ticket-seckill/internal/pkg/pgconv"
	"ticket-seckill/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	listEventsSQL = `SELECT ` + converter.EventColumns + `
FROM events
ORDER BY starts_at DESC, id DESC`

	listTicketTypesByEventSQL = `SELECT ` + converter.TicketTypeColumns + `
FROM ticket_types
WHERE event_id = $1
ORDER BY created_at ASC, id ASC`

	findTicketTypeSQL = `SELECT ` + converter.TicketTypeColumns + `
FROM ticket_types
WHERE id = $1`
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) ListEvents(ctx context.Context) ([]*queries.EventView, error) {
	rows, err := r.db.Query(ctx, listEventsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list events", err)
	}
	defer rows.Close()

	views := make([]*queries.EventView, 0)
	for rows.Next() {
		row, err := converter.ScanEvent(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan event", err)
		}
		views = append(views, converter.EventRowToView(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate events", err)
	}
	return views, nil
}

func (r *CatalogReadStore) ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]*queries.TicketTypeView, error) {
	rows, err := r.db.Query(ctx, listTicketTypesByEventSQL, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list ticket types", err)
	}
	defer rows.Close()

	views := make([]*queries.TicketTypeView, 0)
	for rows.Next() {
		row, err := converter.ScanTicketType(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan ticket type", err)
		}
		views = append(views, converter.TicketTypeRowToView(row))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate ticket types", err)
	}
	return views, nil
}

func (r *CatalogReadStore) FindTicketType(ctx context.Context, id uuid.UUID) (*queries.TicketTypeView, error) {
	row, err := converter.ScanTicketType(r.db.QueryRow(ctx, findTicketTypeSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "ticket type not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get ticket type", err)
	}
	return converter.TicketTypeRowToView(row), nil
}
