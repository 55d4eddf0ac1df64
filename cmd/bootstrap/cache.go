package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-pricing/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset; the price cache is then skipped.
// An unreachable Redis at startup is logged, not fatal: lookups fall through to the database.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Info("price cache disabled", "reason", "REDIS_ADDR not set")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err)
				return nil
			}
			logger.Info("price cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.PriceTTL)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
