//go:build unit

package jwt

import (
	"testing"
	"time"

	"ticket-seckill/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "alice", user.RoleBuyer)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "buyer", claims.Role)
}

func TestService_ValidateToken(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService("secret", time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(uuid.New(), "alice", user.RoleAdmin)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := NewService("secret", time.Hour)
		later.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }

		_, err := later.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other", time.Hour)
		other.now = svc.now

		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
