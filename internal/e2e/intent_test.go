//go:build e2e

package e2e

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"ticket-seckill/internal/testutil/httptest"
	"ticket-seckill/internal/testutil/pgtest"
	"ticket-seckill/internal/usecase/commands"
	"ticket-seckill/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type IntentSuite struct {
	SharedSuite
}

func TestIntentSuite(t *testing.T) {
	suite.Run(t, new(IntentSuite))
}

func (s *IntentSuite) createIntent(token string, ticketTypeID uuid.UUID) (int, intentBody) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchase-intents",
		map[string]any{"ticket_type_id": ticketTypeID}, token)

	var body intentBody
	if w.Code == http.StatusOK {
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	}
	return w.Code, body
}

func (s *IntentSuite) myIntents(token string) []intentBody {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/purchase-intents/mine", nil, token)
	var intents []intentBody
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &intents)
	return intents
}

func (s *IntentSuite) TestCreate() {
	ticketTypeID := s.ticketType(pgtest.OpenSale(3))
	_, token := s.buyer("u1")

	status, created := s.createIntent(token, ticketTypeID)
	s.Require().Equal(http.StatusOK, status)
	s.Equal("ACTIVE", created.Status)
	s.Nil(created.OrderID)

	status, _ = s.createIntent(token, ticketTypeID)
	s.Equal(http.StatusConflict, status, "a second ACTIVE intent for the same ticket type")

	status, _ = s.createIntent(token, uuid.New())
	s.Equal(http.StatusNotFound, status)

	s.Equal(int32(3), pgtest.InventoryRemaining(s.T(), s.DB, ticketTypeID), "queueing does not allocate")
}

func (s *IntentSuite) TestWorkerFulfillsIntent() {
	ticketTypeID := s.ticketType(pgtest.OpenSale(3))
	userID, token := s.buyer("u1")

	_, created := s.createIntent(token, ticketTypeID)

	stats := s.tick()
	s.Equal(1, stats.Created)

	intents := s.myIntents(token)
	s.Require().Len(intents, 1)
	s.Equal(created.ID, intents[0].ID)
	s.Equal("FULFILLED", intents[0].Status)
	s.Require().NotNil(intents[0].OrderID)
	s.Nil(intents[0].LastError)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/orders/"+intents[0].OrderID.String(), nil, token)
	var order orderBody
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &order)
	s.Require().NotNil(order.IdempotencyKey)
	s.Equal("intent:"+created.ID.String(), *order.IdempotencyKey)

	s.Equal(1, pgtest.CountUserOrders(s.T(), s.DB, userID, ticketTypeID))
	s.Equal(int32(2), pgtest.InventoryRemaining(s.T(), s.DB, ticketTypeID))

	// A fulfilled intent frees the slot for a new one.
	status, _ := s.createIntent(token, ticketTypeID)
	s.Equal(http.StatusOK, status)
}

// Scenario C: a sold-out intent keeps retrying and converges once stock is freed.
func (s *IntentSuite) TestSoldOutIntentRetriesUntilStockFrees() {
	ticketTypeID := s.ticketType(pgtest.OpenSale(1))
	_, holder := s.buyer("holder")
	_, waiter := s.buyer("waiter")

	status, _ := s.grab(holder, ticketTypeID, "")
	s.Require().Equal(http.StatusOK, status)

	_, created := s.createIntent(waiter, ticketTypeID)

	for range 2 {
		stats := s.tick()
		s.Equal(1, stats.Failed)

		intents := s.myIntents(waiter)
		s.Require().Len(intents, 1)
		s.Equal("ACTIVE", intents[0].Status)
		s.Require().NotNil(intents[0].LastError)
		s.NotEmpty(*intents[0].LastError)
	}
	s.Equal(int32(0), pgtest.InventoryRemaining(s.T(), s.DB, ticketTypeID))

	pgtest.SetInventoryRemaining(s.T(), s.DB, ticketTypeID, 1)

	stats := s.tick()
	s.Equal(1, stats.Created)

	intents := s.myIntents(waiter)
	s.Require().Len(intents, 1)
	s.Equal(created.ID, intents[0].ID)
	s.Equal("FULFILLED", intents[0].Status)
	s.NotNil(intents[0].OrderID)
	s.Nil(intents[0].LastError)
}

// Scenario D: an order grabbed directly is adopted by the buyer's standing intent.
func (s *IntentSuite) TestWorkerAdoptsDirectGrab() {
	ticketTypeID := s.ticketType(pgtest.OpenSale(5))
	userID, token := s.buyer("u1")

	_, created := s.createIntent(token, ticketTypeID)

	status, grabbed := s.grab(token, ticketTypeID, "")
	s.Require().Equal(http.StatusOK, status)

	stats := s.tick()
	s.Equal(1, stats.Adopted)

	intents := s.myIntents(token)
	s.Require().Len(intents, 1)
	s.Equal(created.ID, intents[0].ID)
	s.Equal("FULFILLED", intents[0].Status)
	s.Require().NotNil(intents[0].OrderID)
	s.Equal(grabbed.ID, *intents[0].OrderID)

	s.Equal(1, pgtest.CountUserOrders(s.T(), s.DB, userID, ticketTypeID))
	s.Equal(int32(4), pgtest.InventoryRemaining(s.T(), s.DB, ticketTypeID))
}

func (s *IntentSuite) TestWorkerServesOldestIntentFirst() {
	ticketTypeID := s.ticketType(pgtest.OpenSale(1))
	_, early := s.buyer("early")
	_, late := s.buyer("late")

	_, _ = s.createIntent(early, ticketTypeID)
	_, _ = s.createIntent(late, ticketTypeID)

	stats := s.tick()
	s.Equal(2, stats.Claimed)
	s.Equal(1, stats.Created)
	s.Equal(1, stats.Failed)

	s.Equal("FULFILLED", s.myIntents(early)[0].Status)
	s.Equal("ACTIVE", s.myIntents(late)[0].Status)
}

// Several worker instances share the queue: every intent ends with exactly one order.
func (s *IntentSuite) TestConcurrentTicksFulfillEachIntentOnce() {
	const (
		total   = 10
		buyers  = 6
		workers = 3
	)
	ticketTypeID := s.ticketType(pgtest.OpenSale(total))

	userIDs := make([]uuid.UUID, buyers)
	tokens := make([]string, buyers)
	for i := range buyers {
		userIDs[i], tokens[i] = s.buyer(username("buyer", i))
		status, _ := s.createIntent(tokens[i], ticketTypeID)
		s.Require().Equal(http.StatusOK, status)
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		sum   worker.Stats
		fails []error
	)
	start := make(chan struct{})
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			stats, err := s.Worker.Tick(context.Background())
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fails = append(fails, err)
			}
			sum.Created += stats.Created
			sum.Adopted += stats.Adopted
			sum.Failed += stats.Failed
		}()
	}
	close(start)
	wg.Wait()

	s.Empty(fails)
	s.Equal(buyers, sum.Created, "each intent is allocated exactly once")
	s.Zero(sum.Adopted)
	s.Zero(sum.Failed)
	s.Equal(buyers, pgtest.CountOrders(s.T(), s.DB, ticketTypeID))
	s.Equal(int32(total-buyers), pgtest.InventoryRemaining(s.T(), s.DB, ticketTypeID))
	for i := range buyers {
		s.Equal(1, pgtest.CountUserOrders(s.T(), s.DB, userIDs[i], ticketTypeID))
		intents := s.myIntents(tokens[i])
		s.Require().Len(intents, 1)
		s.Equal("FULFILLED", intents[0].Status)
	}
}

func (s *IntentSuite) TestConcurrentFulfillSameIntent() {
	const (
		total    = 3
		attempts = 8
	)
	ticketTypeID := s.ticketType(pgtest.OpenSale(total))
	userID, token := s.buyer("u1")

	_, created := s.createIntent(token, ticketTypeID)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		outcomes = map[commands.FulfillOutcome]int{}
		fails    []error
	)
	start := make(chan struct{})
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			outcome, err := s.Reconciler.FulfillIntent(context.Background(), created.ID)
			mu.Lock()
			defer mu.Unlock()
			outcomes[outcome]++
			if err != nil {
				fails = append(fails, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	s.Empty(fails)
	s.Equal(1, outcomes[commands.OutcomeCreated])
	s.Equal(attempts-1, outcomes[commands.OutcomeSkipped])
	s.Equal(1, pgtest.CountUserOrders(s.T(), s.DB, userID, ticketTypeID))
	s.Equal(int32(total-1), pgtest.InventoryRemaining(s.T(), s.DB, ticketTypeID))
	s.Equal("FULFILLED", s.myIntents(token)[0].Status)
}

func (s *IntentSuite) TestListMine_NewestFirstAndAlias() {
	first := s.ticketType(pgtest.OpenSale(1))
	second := s.ticketType(pgtest.OpenSale(1))
	_, token := s.buyer("u1")

	_, older := s.createIntent(token, first)
	_, newer := s.createIntent(token, second)

	intents := s.myIntents(token)
	s.Require().Len(intents, 2)
	s.Equal(newer.ID, intents[0].ID)
	s.Equal(older.ID, intents[1].ID)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/purchase-intents/me", nil, token)
	var alias []intentBody
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &alias)
	s.Len(alias, 2)
}
