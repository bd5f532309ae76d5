//go:build e2e

package e2e

import (
	"net/http"
	"testing"
	"time"

	"ticket-seckill/internal/testutil/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CatalogSuite struct {
	SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

type loginBody struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
}

func (s *CatalogSuite) login(username, password string) (int, loginBody) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		map[string]any{"username": username, "password": password}, "")

	var body loginBody
	if w.Code == http.StatusOK {
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	}
	return w.Code, body
}

func (s *CatalogSuite) TestLogin_RegistersThenVerifies() {
	status, first := s.login("  carol  ", "s3cret")
	s.Require().Equal(http.StatusOK, status)
	s.Equal("carol", first.Username)
	s.Equal("buyer", first.Role)
	s.NotEmpty(first.AccessToken)

	status, second := s.login("carol", "s3cret")
	s.Require().Equal(http.StatusOK, status)
	s.Equal(first.UserID, second.UserID)

	status, _ = s.login("carol", "wrong")
	s.Equal(http.StatusUnauthorized, status)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, second.AccessToken)
	var me struct {
		ID       uuid.UUID `json:"id"`
		Username string    `json:"username"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
	s.Equal(first.UserID, me.ID)
}

func (s *CatalogSuite) TestAdminCreatesCatalog() {
	status, admin := s.login("admin", "admin-password")
	s.Require().Equal(http.StatusOK, status)
	s.Require().Equal("admin", admin.Role)

	now := time.Now().UTC().Truncate(time.Second)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/events", map[string]any{
		"name":      "Festival",
		"starts_at": now.Add(48 * time.Hour),
		"ends_at":   now.Add(72 * time.Hour),
	}, admin.AccessToken)
	var event struct {
		ID uuid.UUID `json:"id"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &event)

	ticketType := map[string]any{
		"name":            "GA",
		"price_cents":     4200,
		"inventory_total": 3,
		"sale_starts_at":  now.Add(-time.Hour),
		"sale_ends_at":    now.Add(time.Hour),
	}
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/admin/events/"+event.ID.String()+"/ticket_types", ticketType, admin.AccessToken)
	var created struct {
		ID                 uuid.UUID `json:"id"`
		InventoryRemaining int32     `json:"inventory_remaining"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &created)
	s.Equal(int32(3), created.InventoryRemaining)

	flat := map[string]any{"event_id": event.ID}
	for k, v := range ticketType {
		flat[k] = v
	}
	flat["name"] = "VIP"
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/ticket-types", flat, admin.AccessToken)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/admin/events/"+uuid.NewString()+"/ticket_types", ticketType, admin.AccessToken)
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/events/"+event.ID.String()+"/ticket_types", nil, "")
	var listed []struct {
		Name string `json:"name"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &listed)
	s.Require().Len(listed, 2)
	s.Equal("GA", listed[0].Name)
	s.Equal("VIP", listed[1].Name)

	// The new ticket type is immediately on sale.
	_, buyerToken := s.buyer("u1")
	status, order := s.grab(buyerToken, created.ID, "")
	s.Require().Equal(http.StatusOK, status)
	s.Equal(int64(4200), order.AmountCents)
}

func (s *CatalogSuite) TestBuyerCannotAdministerCatalog() {
	_, token := s.buyer("u1")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/events", map[string]any{
		"name":      "Festival",
		"starts_at": time.Now().Add(time.Hour),
		"ends_at":   time.Now().Add(2 * time.Hour),
	}, token)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *CatalogSuite) TestHealth() {
	s.Equal(http.StatusOK, httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, "").Code)
	s.Equal(http.StatusOK, httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/healthz", nil, "").Code)
}
