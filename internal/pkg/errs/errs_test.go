//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"ticket-seckill/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	soldOut := errs.Mark(errs.New("sold out"), errs.ErrConflict)
	missing := errs.Mark(errs.New("order not found"), errs.ErrNotFound)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "marked conflict", err: soldOut, want: errs.ErrConflict},
		{name: "wrapped marked conflict", err: errs.Wrap(soldOut, "grab"), want: errs.ErrConflict},
		{name: "marked not found", err: missing, want: errs.ErrNotFound},
		{name: "unmarked error", err: errors.New("boom"), want: errs.ErrStorageFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, errs.Category(tt.err))
		})
	}
}

func TestMarkKeepsOriginalIdentity(t *testing.T) {
	sentinel := errs.New("ticket unavailable")
	marked := errs.Mark(sentinel, errs.ErrConflict)

	assert.True(t, errs.Is(marked, sentinel))
	assert.True(t, errs.Is(marked, errs.ErrConflict))
	assert.False(t, errs.Is(marked, errs.ErrNotFound))
	assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
}
