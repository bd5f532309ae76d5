//go:build unit

package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"ticket-seckill/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		ping       error
		wantStatus int
	}{
		{"database reachable", nil, http.StatusOK},
		{"database down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(pingerFunc(func(context.Context) error { return tt.ping }))
			engine := gin.New()
			engine.GET("/health", h.Live)
			engine.GET("/healthz", h.Ready)

			assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil, "").Code)
			assert.Equal(t, tt.wantStatus, httptest.PerformRequest(t, engine, http.MethodGet, "/healthz", nil, "").Code)
		})
	}
}
