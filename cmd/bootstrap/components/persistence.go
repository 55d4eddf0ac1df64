package components

import (
	"log/slog"

	"hotel-pricing/internal/domain/reservation"
	"hotel-pricing/internal/infra/cache"
	"hotel-pricing/internal/infra/readstore"
	"hotel-pricing/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		readstore.NewPackagePriceReadStore,
		NewPricingLookup,
	),
)

func NewDBTX(pool *pgxpool.Pool) readstore.DBTX {
	return pool
}

// NewPricingLookup puts the Redis cache in front of the readstore when a client is configured.
func NewPricingLookup(store *readstore.PackagePriceReadStore, client *redis.Client, cfg config.Config, logger *slog.Logger) reservation.PricingLookup {
	if client == nil {
		return store
	}
	return cache.NewPackagePriceCache(store, client, cfg.Redis.PriceTTL, logger)
}
