//go:build unit

package api

import (
	"net/http"
	"testing"
	"time"

	"ticket-seckill/internal/domain/user"
	resdto "ticket-seckill/internal/handler/dto/response"
	"ticket-seckill/internal/testutil/httptest"
	"ticket-seckill/internal/usecase/commands"
	"ticket-seckill/internal/usecase/commands/commandsmock"
	"ticket-seckill/internal/usecase/queries"
	"ticket-seckill/internal/usecase/queries/queriesmock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type catalogHandlerFixture struct {
	engine   *gin.Engine
	commands *commandsmock.MockCatalogCommands
	queries  *queriesmock.MockCatalogQueries
}

func newCatalogHandlerFixture(t *testing.T) catalogHandlerFixture {
	ctrl := gomock.NewController(t)
	f := catalogHandlerFixture{
		commands: commandsmock.NewMockCatalogCommands(ctrl),
		queries:  queriesmock.NewMockCatalogQueries(ctrl),
	}
	h := NewCatalogHandler(f.commands, f.queries)

	f.engine = newTestEngine(uuid.New(), user.RoleAdmin)
	f.engine.POST("/api/admin/events", h.CreateEvent)
	f.engine.POST("/api/admin/events/:event_id/ticket_types", h.CreateTicketType)
	f.engine.POST("/api/admin/ticket-types", h.CreateTicketTypeFromBody)
	f.engine.GET("/api/events", h.ListEvents)
	f.engine.GET("/api/events/:event_id/ticket_types", h.ListTicketTypes)
	return f
}

var (
	saleStart = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	saleEnd   = time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
)

func ticketTypeBody() map[string]any {
	return map[string]any{
		"name":            "GA",
		"price_cents":     5000,
		"inventory_total": 100,
		"sale_starts_at":  saleStart,
		"sale_ends_at":    saleEnd,
	}
}

func TestCatalogHandler_CreateEvent(t *testing.T) {
	t.Run("creates event", func(t *testing.T) {
		f := newCatalogHandlerFixture(t)
		view := &queries.EventView{ID: uuid.New(), Name: "Concert", StartsAt: saleStart, EndsAt: saleEnd}

		f.commands.EXPECT().
			CreateEvent(gomock.Any(), commands.CreateEventRequest{Name: "Concert", StartsAt: saleStart, EndsAt: saleEnd}).
			Return(view, nil)

		w := httptest.PerformRequest(t, f.engine, http.MethodPost, "/api/admin/events",
			map[string]any{"name": "Concert", "starts_at": saleStart, "ends_at": saleEnd}, "")

		var res resdto.EventResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, view.ID, res.ID)
		assert.Equal(t, "Concert", res.Name)
	})

	t.Run("missing name", func(t *testing.T) {
		f := newCatalogHandlerFixture(t)

		w := httptest.PerformRequest(t, f.engine, http.MethodPost, "/api/admin/events",
			map[string]any{"starts_at": saleStart, "ends_at": saleEnd}, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})
}

func TestCatalogHandler_CreateTicketType(t *testing.T) {
	eventID := uuid.New()

	t.Run("nested route takes the event from the path", func(t *testing.T) {
		f := newCatalogHandlerFixture(t)
		view := &queries.TicketTypeView{
			ID:                 uuid.New(),
			EventID:            eventID,
			Name:               "GA",
			PriceCents:         5000,
			InventoryTotal:     100,
			InventoryRemaining: 100,
			SaleStartsAt:       saleStart,
			SaleEndsAt:         saleEnd,
		}

		f.commands.EXPECT().
			CreateTicketType(gomock.Any(), commands.CreateTicketTypeRequest{
				EventID:        eventID,
				Name:           "GA",
				PriceCents:     5000,
				InventoryTotal: 100,
				SaleStartsAt:   saleStart,
				SaleEndsAt:     saleEnd,
			}).
			Return(view, nil)

		w := httptest.PerformRequest(t, f.engine, http.MethodPost,
			"/api/admin/events/"+eventID.String()+"/ticket_types", ticketTypeBody(), "")

		var res resdto.TicketTypeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, int32(100), res.InventoryRemaining)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newCatalogHandlerFixture(t)
		f.commands.EXPECT().CreateTicketType(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEventNotFound)

		w := httptest.PerformRequest(t, f.engine, http.MethodPost,
			"/api/admin/events/"+eventID.String()+"/ticket_types", ticketTypeBody(), "")

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, commands.ErrEventNotFound.Error())
	})

	t.Run("zero inventory is rejected by binding", func(t *testing.T) {
		f := newCatalogHandlerFixture(t)
		body := ticketTypeBody()
		body["inventory_total"] = 0

		w := httptest.PerformRequest(t, f.engine, http.MethodPost,
			"/api/admin/events/"+eventID.String()+"/ticket_types", body, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	t.Run("flat route reads the event from the body", func(t *testing.T) {
		f := newCatalogHandlerFixture(t)
		body := ticketTypeBody()
		body["event_id"] = eventID

		f.commands.EXPECT().
			CreateTicketType(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.CreateTicketTypeRequest) (*queries.TicketTypeView, error) {
				assert.Equal(t, eventID, req.EventID)
				return &queries.TicketTypeView{ID: uuid.New(), EventID: eventID}, nil
			})

		w := httptest.PerformRequest(t, f.engine, http.MethodPost, "/api/admin/ticket-types", body, "")

		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	})

	t.Run("flat route without event_id", func(t *testing.T) {
		f := newCatalogHandlerFixture(t)

		w := httptest.PerformRequest(t, f.engine, http.MethodPost, "/api/admin/ticket-types", ticketTypeBody(), "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "event_id is required")
	})
}

func TestCatalogHandler_Lists(t *testing.T) {
	f := newCatalogHandlerFixture(t)
	eventID := uuid.New()

	f.queries.EXPECT().ListEvents(gomock.Any()).Return([]*queries.EventView{{ID: eventID, Name: "Concert"}}, nil)
	f.queries.EXPECT().ListTicketTypes(gomock.Any(), eventID).Return([]*queries.TicketTypeView{
		{ID: uuid.New(), EventID: eventID, Name: "Early"},
		{ID: uuid.New(), EventID: eventID, Name: "GA"},
	}, nil)

	w := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/events", nil, "")
	var events []resdto.EventResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &events)
	require.Len(t, events, 1)

	w = httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/events/"+eventID.String()+"/ticket_types", nil, "")
	var types []resdto.TicketTypeResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &types)
	require.Len(t, types, 2)
	assert.Equal(t, "Early", types[0].Name)
}
