package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"time"

	"hotel-pricing/internal/domain/reservation"

	"github.com/redis/go-redis/v9"
)

const (
	packagePriceKeyPrefix = "package_price:"
	defaultPriceTTL       = 5 * time.Minute
)

// Store is the subset of *redis.Client the cache uses.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// PackagePriceCache memoizes per-room price lookups. Redis failures are
// logged and fall through to the wrapped lookup.
type PackagePriceCache struct {
	next   reservation.PricingLookup
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewPackagePriceCache(next reservation.PricingLookup, store Store, ttl time.Duration, logger *slog.Logger) *PackagePriceCache {
	if ttl <= 0 {
		ttl = defaultPriceTTL
	}
	return &PackagePriceCache{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *PackagePriceCache) CalculatePackagePrice(ctx context.Context, req reservation.RoomPriceRequest) (*reservation.PriceResult, error) {
	key, err := PackagePriceKey(req)
	if err != nil {
		return c.next.CalculatePackagePrice(ctx, req)
	}

	data, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached reservation.PriceResult
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			c.logger.DebugContext(ctx, "package price cache hit", slog.String("key", key))
			return &cached, nil
		}
		c.logger.WarnContext(ctx, "discarding unreadable cached package price", slog.String("key", key))
	case errors.Is(err, redis.Nil):
		c.logger.DebugContext(ctx, "package price cache miss", slog.String("key", key))
	default:
		c.logger.WarnContext(ctx, "package price cache get failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}

	res, err := c.next.CalculatePackagePrice(ctx, req)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(res)
	if err != nil {
		return res, nil
	}
	if err := c.store.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "package price cache set failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	return res, nil
}

// PackagePriceKey is stable under reordering of additional products.
func PackagePriceKey(req reservation.RoomPriceRequest) (string, error) {
	products := slices.Clone(req.AdditionalProducts)
	slices.Sort(products)
	req.AdditionalProducts = products
	if req.ChildrenAges == nil {
		req.ChildrenAges = []int{}
	}
	if req.AdditionalProducts == nil {
		req.AdditionalProducts = []string{}
	}

	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return packagePriceKeyPrefix + hex.EncodeToString(sum[:]), nil
}
