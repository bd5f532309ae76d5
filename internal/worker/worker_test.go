//go:build unit

package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"ticket-seckill/internal/pkg/config"
	"ticket-seckill/internal/pkg/errs"
	"ticket-seckill/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReconciler struct {
	mu        sync.Mutex
	ids       []uuid.UUID
	claimErr  error
	outcomes  map[uuid.UUID]commands.FulfillOutcome
	attempted []uuid.UUID
	limits    []int
}

func (f *fakeReconciler) ClaimActive(_ context.Context, limit int) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limits = append(f.limits, limit)
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	return f.ids, nil
}

func (f *fakeReconciler) FulfillIntent(_ context.Context, id uuid.UUID) (commands.FulfillOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempted = append(f.attempted, id)
	outcome := f.outcomes[id]
	if outcome == commands.OutcomeFailed {
		return outcome, commands.ErrTicketUnavailable
	}
	return outcome, nil
}

func (f *fakeReconciler) claims() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.limits)
}

func testWorkerConfig() config.WorkerConfig {
	return config.WorkerConfig{Enabled: true, PollInterval: 10 * time.Millisecond, BatchSize: 50}
}

func TestIntentWorker_Tick(t *testing.T) {
	created, adopted, failed, skipped, done := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()
	rec := &fakeReconciler{
		ids: []uuid.UUID{created, adopted, failed, skipped, done},
		outcomes: map[uuid.UUID]commands.FulfillOutcome{
			created: commands.OutcomeCreated,
			adopted: commands.OutcomeAdopted,
			failed:  commands.OutcomeFailed,
			skipped: commands.OutcomeSkipped,
			done:    commands.OutcomeFulfilled,
		},
	}
	w := NewIntentWorker(rec, testWorkerConfig(), nil)

	stats, err := w.Tick(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Stats{Claimed: 5, Created: 1, Adopted: 1, Failed: 1, Skipped: 1, Fulfilled: 1}, stats)
	assert.Equal(t, rec.ids, rec.attempted, "intents are processed in claim order")
	assert.Equal(t, []int{50}, rec.limits)
}

func TestIntentWorker_TickClaimError(t *testing.T) {
	rec := &fakeReconciler{claimErr: errs.New("db down")}
	w := NewIntentWorker(rec, testWorkerConfig(), nil)

	_, err := w.Tick(context.Background())

	assert.Error(t, err)
	assert.Empty(t, rec.attempted)
}

func TestIntentWorker_StartStop(t *testing.T) {
	rec := &fakeReconciler{claimErr: errs.New("db down")}
	w := NewIntentWorker(rec, testWorkerConfig(), nil)

	w.Start()
	w.Start()

	require.Eventually(t, func() bool { return rec.claims() >= 2 }, time.Second, 5*time.Millisecond,
		"a failing tick must not stop the loop")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Stop(ctx))
	require.NoError(t, w.Stop(ctx))

	after := rec.claims()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, rec.claims())
}
