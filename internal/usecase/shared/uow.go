package shared

import (
	"context"
	"time"

	"ticket-seckill/internal/domain/catalog"
	"ticket-seckill/internal/domain/intent"
	"ticket-seckill/internal/domain/order"
	"ticket-seckill/internal/domain/user"
	"ticket-seckill/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single statements outside any explicit transaction
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	TicketTypes() TicketTypeRepository
	Orders() OrderRepository
	Intents() IntentRepository
	Events() EventRepository
	Users() UserRepository
	DB() db.DBTX
}

type TicketTypeRepository interface {
	Create(ctx context.Context, tx db.DBTX, tt *catalog.TicketType) (*catalog.TicketType, error)
	// Allocate atomically takes one unit if any remain and now is inside the sale window.
	// allocated is false when the ticket type is sold out, outside its window or unknown.
	Allocate(ctx context.Context, tx db.DBTX, ticketTypeID uuid.UUID, now time.Time) (priceCents int64, allocated bool, err error)
	// Release returns one unit taken by Allocate earlier in the same transaction.
	Release(ctx context.Context, tx db.DBTX, ticketTypeID uuid.UUID) error
}

type OrderRepository interface {
	// Insert stores o unless it would violate a uniqueness invariant, in which case inserted is false.
	Insert(ctx context.Context, tx db.DBTX, o *order.Order) (inserted bool, err error)
	FindByIdempotencyKey(ctx context.Context, tx db.DBTX, userID uuid.UUID, key order.IdempotencyKey) (*order.Order, error)
	FindActive(ctx context.Context, tx db.DBTX, userID, ticketTypeID uuid.UUID) (*order.Order, error)
	FindOwnedForUpdate(ctx context.Context, tx db.DBTX, orderID, userID uuid.UUID) (*order.Order, error)
	MarkPaid(ctx context.Context, tx db.DBTX, o *order.Order) error
	Exists(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (bool, error)
}

type IntentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *intent.PurchaseIntent) (*intent.PurchaseIntent, error)
	// ListActiveIDs returns up to limit ACTIVE intents, oldest first.
	ListActiveIDs(ctx context.Context, tx db.DBTX, limit int) ([]uuid.UUID, error)
	// LockByID row-locks the intent, skipping it when another transaction holds the lock.
	LockByID(ctx context.Context, tx db.DBTX, intentID uuid.UUID) (*intent.PurchaseIntent, error)
	MarkFulfilled(ctx context.Context, tx db.DBTX, p *intent.PurchaseIntent) error
	RecordFailure(ctx context.Context, tx db.DBTX, p *intent.PurchaseIntent) error
}

type EventRepository interface {
	Create(ctx context.Context, tx db.DBTX, e *catalog.Event) (*catalog.Event, error)
	Exists(ctx context.Context, tx db.DBTX, eventID uuid.UUID) (bool, error)
}

type UserRepository interface {
	FindByUsername(ctx context.Context, tx db.DBTX, username user.Username) (*user.User, error)
	// Create inserts u, or returns the user that already owns the username.
	Create(ctx context.Context, tx db.DBTX, u *user.User) (*user.User, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error
}
