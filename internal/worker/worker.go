package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ticket-seckill/internal/pkg/config"
	"ticket-seckill/internal/usecase/commands"
)

// Stats summarizes one tick.
type Stats struct {
	Claimed   int
	Fulfilled int
	Adopted   int
	Created   int
	Skipped   int
	Failed    int
}

// IntentWorker drains ACTIVE purchase intents. Each tick claims one FIFO batch and
// processes it sequentially; the next tick starts one poll interval after the previous ended.
// Several instances may run against the same database.
type IntentWorker struct {
	reconciler commands.IntentReconciler
	interval   time.Duration
	batchSize  int
	logger     *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewIntentWorker(reconciler commands.IntentReconciler, cfg config.WorkerConfig, logger *slog.Logger) *IntentWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &IntentWorker{
		reconciler: reconciler,
		interval:   cfg.PollInterval,
		batchSize:  cfg.BatchSize,
		logger:     logger.With("component", "intent_worker"),
	}
}

// Tick runs a single poll. A failure on one intent never stops the batch.
func (w *IntentWorker) Tick(ctx context.Context) (Stats, error) {
	var stats Stats

	ids, err := w.reconciler.ClaimActive(ctx, w.batchSize)
	if err != nil {
		return stats, err
	}
	stats.Claimed = len(ids)

	for _, id := range ids {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		outcome, err := w.reconciler.FulfillIntent(ctx, id)
		switch outcome {
		case commands.OutcomeFulfilled:
			stats.Fulfilled++
		case commands.OutcomeAdopted:
			stats.Adopted++
		case commands.OutcomeCreated:
			stats.Created++
		case commands.OutcomeFailed:
			stats.Failed++
			w.logger.DebugContext(ctx, "intent stays active", "intent_id", id, "error", err)
		default:
			stats.Skipped++
		}
	}

	return stats, nil
}

func (w *IntentWorker) Run(ctx context.Context) {
	w.logger.Info("purchase intents worker started", "interval", w.interval, "batch_size", w.batchSize)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("purchase intents worker stopped")
			return
		case <-timer.C:
		}

		stats, err := w.Tick(ctx)
		if err != nil && ctx.Err() == nil {
			w.logger.Error("purchase intents worker tick failed", "error", err.Error())
		}
		if stats.Claimed > 0 {
			w.logger.Debug("purchase intents worker tick",
				"claimed", stats.Claimed,
				"created", stats.Created,
				"adopted", stats.Adopted,
				"fulfilled", stats.Fulfilled,
				"skipped", stats.Skipped,
				"failed", stats.Failed,
			)
		}

		timer.Reset(w.interval)
	}
}

// Start launches Run in the background. Calling Start twice is a no-op.
func (w *IntentWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)
		w.Run(ctx)
	}()
}

// Stop cancels the loop and waits for the in-flight tick, or until ctx expires.
func (w *IntentWorker) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
