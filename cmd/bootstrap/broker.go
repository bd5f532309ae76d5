package bootstrap

import (
	"context"
	"io"

	"ticket-seckill/internal/infra/broker"
	"ticket-seckill/internal/pkg/config"
	"ticket-seckill/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	publisher := broker.NewPublisher(cfg.Broker)
	if closer, ok := publisher.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return closer.Close()
			},
		})
	}
	return publisher
}
