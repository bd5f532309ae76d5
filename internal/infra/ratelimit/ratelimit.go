package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ticket-seckill/internal/pkg/config"
	"ticket-seckill/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Token bucket kept in a Redis hash. Refill and take happen in one script call so
// concurrent API instances share a consistent budget per key.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

var ErrUnexpectedReply = errs.New("unexpected rate limit script reply")

type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

type Limiter struct {
	rdb      *redis.Client
	prefix   string
	capacity int
	refill   int
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time
}

func NewLimiter(rdb *redis.Client, cfg config.RateLimitConfig) *Limiter {
	return &Limiter{
		rdb:      rdb,
		prefix:   cfg.Prefix,
		capacity: cfg.Burst,
		refill:   cfg.RPS,
		interval: time.Second,
		ttl:      bucketTTL(cfg),
		now:      time.Now,
	}
}

// bucketTTL keeps an idle bucket around long enough to refill completely.
func bucketTTL(cfg config.RateLimitConfig) time.Duration {
	if cfg.RPS <= 0 {
		return time.Minute
	}
	secs := cfg.Burst/cfg.RPS + 1
	return time.Duration(secs) * time.Second
}

func (l *Limiter) Key(parts ...string) string {
	key := l.prefix
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	args := []any{
		l.now().UnixMilli(),
		l.capacity,
		l.refill,
		l.interval.Milliseconds(),
		int64(l.ttl / time.Second),
	}

	vals, err := tokenBucketScript.Run(ctx, l.rdb, []string{key}, args...).Result()
	if err != nil {
		return Decision{}, errs.Wrap(err, "run token bucket script")
	}

	arr, ok := vals.([]any)
	if !ok || len(arr) != 3 {
		return Decision{}, errs.Wrap(ErrUnexpectedReply, fmt.Sprintf("%#v", vals))
	}

	return Decision{
		Allowed:    asInt64(arr[0]) == 1,
		Limit:      l.capacity,
		Remaining:  asInt64(arr[1]),
		RetryAfter: time.Duration(asInt64(arr[2])) * time.Millisecond,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
