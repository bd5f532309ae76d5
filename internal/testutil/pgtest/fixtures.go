//go:build e2e

package pgtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the minimal interface required for fixture statements.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Fixture users never log in with a password; tests mint their tokens directly.
const passwordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func CreateUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	id := uuid.Must(uuid.NewV7())
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (id, username, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT uq_users_username DO UPDATE SET username = EXCLUDED.username
		RETURNING id`,
		id, username, passwordHash, role,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateEvent(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		`INSERT INTO events (id, name, starts_at, ends_at) VALUES ($1, $2, $3, $4)`,
		id, name, now.Add(24*time.Hour), now.Add(48*time.Hour),
	)
	require.NoError(t, err)
	return id
}

type TicketTypeSpec struct {
	Name         string
	PriceCents   int64
	Total        int32
	SaleStartsAt time.Time
	SaleEndsAt   time.Time
}

// OpenSale is a ticket type whose sale window contains now.
func OpenSale(total int32) TicketTypeSpec {
	now := time.Now().UTC()
	return TicketTypeSpec{
		Name:         "GA",
		PriceCents:   5000,
		Total:        total,
		SaleStartsAt: now.Add(-time.Hour),
		SaleEndsAt:   now.Add(time.Hour),
	}
}

// FutureSale is a ticket type whose sale has not started yet.
func FutureSale(total int32) TicketTypeSpec {
	now := time.Now().UTC()
	return TicketTypeSpec{
		Name:         "Presale",
		PriceCents:   8000,
		Total:        total,
		SaleStartsAt: now.Add(time.Hour),
		SaleEndsAt:   now.Add(2 * time.Hour),
	}
}

func CreateTicketType(t *testing.T, db DBLike, eventID uuid.UUID, spec TicketTypeSpec) uuid.UUID {
	t.Helper()

	id := uuid.Must(uuid.NewV7())
	_, err := db.Exec(context.Background(), `
		INSERT INTO ticket_types
			(id, event_id, name, price_cents, inventory_total, inventory_remaining, sale_starts_at, sale_ends_at)
		VALUES ($1, $2, $3, $4, $5, $5, $6, $7)`,
		id, eventID, spec.Name, spec.PriceCents, spec.Total, spec.SaleStartsAt, spec.SaleEndsAt,
	)
	require.NoError(t, err)
	return id
}

func InventoryRemaining(t *testing.T, db DBLike, ticketTypeID uuid.UUID) int32 {
	t.Helper()

	var remaining int32
	err := db.QueryRow(context.Background(),
		`SELECT inventory_remaining FROM ticket_types WHERE id = $1`, ticketTypeID,
	).Scan(&remaining)
	require.NoError(t, err)
	return remaining
}

// SetInventoryRemaining bypasses the allocation path; tests use it to simulate freed stock.
func SetInventoryRemaining(t *testing.T, db DBLike, ticketTypeID uuid.UUID, remaining int32) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`UPDATE ticket_types SET inventory_remaining = $2 WHERE id = $1`, ticketTypeID, remaining,
	)
	require.NoError(t, err)
}

func CountOrders(t *testing.T, db DBLike, ticketTypeID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM orders WHERE ticket_type_id = $1`, ticketTypeID,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountUserOrders(t *testing.T, db DBLike, userID, ticketTypeID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM orders WHERE user_id = $1 AND ticket_type_id = $2`, userID, ticketTypeID,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB truncates every table of the public schema.
func ResetDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := pool.Query(ctx, `
		SELECT 'public.' || quote_ident(tablename)
		FROM pg_tables
		WHERE schemaname = 'public'`)
	require.NoError(t, err)
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	require.NoError(t, err)
	if len(tables) == 0 {
		return
	}

	_, err = pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" CASCADE")
	require.NoError(t, err)
}
