//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ticket-seckill/cmd/bootstrap"
	"ticket-seckill/cmd/bootstrap/components"
	"ticket-seckill/internal/domain/user"
	"ticket-seckill/internal/pkg/config"
	"ticket-seckill/internal/pkg/jwt"
	"ticket-seckill/internal/testutil/httptest"
	"ticket-seckill/internal/testutil/pgtest"
	"ticket-seckill/internal/usecase/commands"
	"ticket-seckill/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite boots the whole application against a dedicated database. The worker loop is
// disabled; tests drive reconciliation with Worker.Tick.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Worker *worker.IntentWorker
	JWT    *jwt.Service

	Reconciler commands.IntentReconciler
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbConfig := pgtest.NewDatabase(t)
	s.DB = pool

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig

	app := fx.New(
		fx.Module("testdb", fx.Provide(func() *pgxpool.Pool { return pool })),
		fx.Module("testconfig", fx.Provide(func() config.Config { return cfg })),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.RedisModule,
		bootstrap.BrokerModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.WorkerModule,
		fx.Populate(&s.Router, &s.Config, &s.Worker, &s.JWT, &s.Reconciler),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("stop fx app", "error", err.Error())
		}
	})
}

func (s *SharedSuite) SetupTest() {
	pgtest.ResetDB(s.T(), s.DB)
}

// buyer inserts a buyer and returns its id and bearer token.
func (s *SharedSuite) buyer(name string) (uuid.UUID, string) {
	id := pgtest.CreateUser(s.T(), s.DB, name, string(user.RoleBuyer))
	token, err := s.JWT.GenerateToken(id, name, user.RoleBuyer)
	s.Require().NoError(err)
	return id, token
}

// ticketType creates an event with one ticket type.
func (s *SharedSuite) ticketType(spec pgtest.TicketTypeSpec) uuid.UUID {
	eventID := pgtest.CreateEvent(s.T(), s.DB, "Concert")
	return pgtest.CreateTicketType(s.T(), s.DB, eventID, spec)
}

func (s *SharedSuite) grab(token string, ticketTypeID uuid.UUID, key string) (int, orderBody) {
	var opts []httptest.RequestOption
	if key != "" {
		opts = append(opts, httptest.WithIdempotencyKey(key))
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/tickets/grab",
		map[string]any{"ticket_type_id": ticketTypeID}, token, opts...)

	var body orderBody
	if w.Code == http.StatusOK {
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	}
	return w.Code, body
}

func (s *SharedSuite) tick() worker.Stats {
	stats, err := s.Worker.Tick(context.Background())
	s.Require().NoError(err)
	return stats
}

type orderBody struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	TicketTypeID   uuid.UUID  `json:"ticket_type_id"`
	Qty            int32      `json:"qty"`
	AmountCents    int64      `json:"amount_cents"`
	Status         string     `json:"status"`
	IdempotencyKey *string    `json:"idempotency_key"`
	PaidAt         *time.Time `json:"paid_at"`
}

type intentBody struct {
	ID           uuid.UUID  `json:"id"`
	TicketTypeID uuid.UUID  `json:"ticket_type_id"`
	Status       string     `json:"status"`
	OrderID      *uuid.UUID `json:"order_id"`
	LastError    *string    `json:"last_error"`
}

func username(prefix string, i int) string {
	return fmt.Sprintf("%s-%03d", prefix, i)
}
