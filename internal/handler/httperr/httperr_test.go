//go:build unit

package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket-seckill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", errs.Mark(errors.New("bad qty"), errs.ErrInvalidInput), http.StatusBadRequest},
		{"not found", errs.Mark(errors.New("order not found"), errs.ErrNotFound), http.StatusNotFound},
		{"conflict", errs.Wrap(errs.Mark(errors.New("sold out"), errs.ErrConflict), "grab"), http.StatusConflict},
		{"unauthorized", errs.Mark(errors.New("bad password"), errs.ErrUnauthorized), http.StatusUnauthorized},
		{"uncategorized", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("expected outcome exposes message", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/tickets/grab", nil)

		Respond(c, errs.Mark(errs.New("out of stock or not in sale window"), errs.ErrConflict))

		assert.Equal(t, http.StatusConflict, w.Code)
		var body Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "out of stock or not in sale window", body.Error.Message)
		assert.True(t, c.IsAborted())
	})

	t.Run("storage failure is generic", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/tickets/grab", nil)

		Respond(c, errs.Wrap(errors.New("pq: connection refused"), "allocate ticket"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
		assert.Contains(t, w.Body.String(), internalMessage)
	})
}
