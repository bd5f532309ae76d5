package components

import (
	"ticket-seckill/internal/handler"
	"ticket-seckill/internal/handler/api"
	"ticket-seckill/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewOrderHandler,
		api.NewIntentHandler,
		NewHealthHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHealthHandler(pool *pgxpool.Pool) *api.HealthHandler {
	return api.NewHealthHandler(pool)
}
