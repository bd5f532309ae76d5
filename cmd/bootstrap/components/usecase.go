package components

import (
	"ticket-seckill/internal/pkg/clock"
	"ticket-seckill/internal/pkg/config"
	"ticket-seckill/internal/pkg/jwt"
	"ticket-seckill/internal/usecase"
	"ticket-seckill/internal/usecase/commands"
	"ticket-seckill/internal/usecase/queries"
	"ticket-seckill/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		commands.NewCatalogCommands,
		commands.NewOrderCommands,
		commands.NewIntentCommands,
		commands.NewIntentReconciler,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewOrderQueries,
		queries.NewIntentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock, cfg config.Config) commands.AuthCommands {
	return commands.NewAuthCommands(uow, jwtService, clk, cfg.Auth.AdminUsernames)
}
