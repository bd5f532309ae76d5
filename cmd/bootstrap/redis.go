package bootstrap

import (
	"context"
	"log/slog"

	"ticket-seckill/internal/handler/middleware"
	"ticket-seckill/internal/infra/ratelimit"
	"ticket-seckill/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewRateLimiter,
		middleware.NewRateLimitMiddleware,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDR not set, rate limiting is disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// An unreachable Redis only disables limiting, startup goes on.
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

// NewRateLimiter returns a nil interface when limiting is off, which the middleware treats as
// pass-through.
func NewRateLimiter(rdb *redis.Client, cfg config.Config) middleware.RateLimiter {
	if rdb == nil || !cfg.RateLimit.Enabled || cfg.RateLimit.RPS <= 0 || cfg.RateLimit.Burst <= 0 {
		return nil
	}
	return ratelimit.NewLimiter(rdb, cfg.RateLimit)
}
