package bootstrap

import (
	"context"
	"log/slog"

	"ticket-seckill/internal/pkg/config"
	"ticket-seckill/internal/usecase/commands"
	"ticket-seckill/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewIntentWorker,
	),
	fx.Invoke(startIntentWorker),
)

func NewIntentWorker(reconciler commands.IntentReconciler, cfg config.Config, logger *slog.Logger) *worker.IntentWorker {
	return worker.NewIntentWorker(reconciler, cfg.Worker, logger)
}

func startIntentWorker(lc fx.Lifecycle, w *worker.IntentWorker, cfg config.Config, logger *slog.Logger) {
	if !cfg.Worker.Enabled {
		logger.Info("intent worker disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop(ctx)
		},
	})
}
