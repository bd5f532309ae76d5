//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"ticket-seckill/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	ticketTypeID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		row           stubRow
		wantPrice     int64
		wantAllocated bool
		wantKind      infra.RepositoryErrorKind
	}{
		{
			name:          "unit taken",
			row:           stubRow{fill: func(dest ...any) { *dest[0].(*int64) = 4200 }},
			wantPrice:     4200,
			wantAllocated: true,
		},
		{
			name:          "no row matched the predicate",
			row:           stubRow{err: pgx.ErrNoRows},
			wantAllocated: false,
		},
		{
			name:     "database error",
			row:      stubRow{err: assert.AnError},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("QueryRow", mock.Anything, allocateTicketSQL, []any{ticketTypeID, now}).Return(tt.row)

			price, allocated, err := NewTicketTypeRepository().Allocate(context.Background(), dbtx, ticketTypeID, now)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllocated, allocated)
			assert.Equal(t, tt.wantPrice, price)
			dbtx.AssertExpectations(t)
		})
	}
}

func TestRelease(t *testing.T) {
	ticketTypeID := uuid.New()

	tests := []struct {
		name     string
		tag      pgconn.CommandTag
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "unit returned",
			tag:  pgconn.NewCommandTag("UPDATE 1"),
		},
		{
			name:     "inventory already full",
			tag:      pgconn.NewCommandTag("UPDATE 0"),
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			execErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("Exec", mock.Anything, releaseTicketSQL, []any{ticketTypeID}).Return(tt.tag, tt.execErr)

			err := NewTicketTypeRepository().Release(context.Background(), dbtx, ticketTypeID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			assert.NoError(t, err)
		})
	}
}
