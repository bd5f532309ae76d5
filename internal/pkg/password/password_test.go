//go:build unit

package password_test

import (
	"strings"
	"testing"

	"ticket-seckill/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	password.Cost = bcrypt.MinCost

	hash, err := password.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, password.ComparePassword(hash, "correct horse"))
	assert.ErrorIs(t, password.ComparePassword(hash, "battery staple"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
}

func TestHashPasswordRejects(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	_, err = password.HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, password.ErrPasswordTooLong)
}
