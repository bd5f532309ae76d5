//go:build unit

package ratelimit

import (
	"testing"
	"time"

	"ticket-seckill/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestBucketTTL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.RateLimitConfig
		want time.Duration
	}{
		{"burst larger than rate", config.RateLimitConfig{RPS: 10, Burst: 20}, 3 * time.Second},
		{"burst smaller than rate", config.RateLimitConfig{RPS: 10, Burst: 5}, time.Second},
		{"no refill", config.RateLimitConfig{RPS: 0, Burst: 5}, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bucketTTL(tt.cfg))
		})
	}
}

func TestKey(t *testing.T) {
	l := NewLimiter(nil, config.RateLimitConfig{Prefix: "rl", RPS: 1, Burst: 1})

	assert.Equal(t, "rl:user:42:POST /api/tickets/grab", l.Key("user:42", "POST /api/tickets/grab"))
	assert.Equal(t, "rl", l.Key())
}

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(7), asInt64(int64(7)))
	assert.Equal(t, int64(3), asInt64(3))
	assert.Equal(t, int64(12), asInt64("12"))
	assert.Equal(t, int64(0), asInt64(nil))
}
