//go:build unit

package cache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/domain/reservation"
	"hotel-pricing/internal/infra/cache"
	reservationmock "hotel-pricing/tests/mock/reservation"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errRedisDown = errors.New("redis: connection refused")

type fakeStore struct {
	data   map[string]string
	getErr error
	setErr error
	ttl    time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	f.ttl = expiration
	return redis.NewStatusResult("OK", nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func request() reservation.RoomPriceRequest {
	return reservation.RoomPriceRequest{
		PackageCode:        "FULL_BOARD",
		RoomCode:           "habitacion_101",
		Adults:             2,
		ChildrenAges:       []int{6},
		Nights:             2,
		AdditionalProducts: []string{"masaje", "cena"},
	}
}

func result() *reservation.PriceResult {
	return &reservation.PriceResult{
		GrandTotal: 150000,
		RoomCount:  1,
		Nights:     2,
		Breakdown:  []reservation.PriceBreakdownItem{{Code: "habitacion_101", Name: "Room", Total: 150000}},
	}
}

func TestPackagePriceCache(t *testing.T) {
	ctx := context.Background()

	t.Run("success: miss then hit calls the lookup once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lookup := reservationmock.NewMockPricingLookup(ctrl)
		lookup.EXPECT().CalculatePackagePrice(gomock.Any(), request()).Return(result(), nil).Times(1)
		store := newFakeStore()
		c := cache.NewPackagePriceCache(lookup, store, time.Minute, discardLogger())

		first, err := c.CalculatePackagePrice(ctx, request())
		require.NoError(t, err)
		second, err := c.CalculatePackagePrice(ctx, request())
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, pricing.Money(150000), second.GrandTotal)
		assert.Equal(t, time.Minute, store.ttl)
	})

	t.Run("success: redis failures fall through to the lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lookup := reservationmock.NewMockPricingLookup(ctrl)
		lookup.EXPECT().CalculatePackagePrice(gomock.Any(), gomock.Any()).Return(result(), nil).Times(2)
		store := newFakeStore()
		store.getErr = errRedisDown
		store.setErr = errRedisDown
		c := cache.NewPackagePriceCache(lookup, store, 0, discardLogger())

		for range 2 {
			res, err := c.CalculatePackagePrice(ctx, request())
			require.NoError(t, err)
			assert.Equal(t, pricing.Money(150000), res.GrandTotal)
		}
	})

	t.Run("error: lookup errors are returned and not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lookup := reservationmock.NewMockPricingLookup(ctrl)
		lookup.EXPECT().CalculatePackagePrice(gomock.Any(), gomock.Any()).Return(nil, errRedisDown)
		store := newFakeStore()
		c := cache.NewPackagePriceCache(lookup, store, time.Minute, discardLogger())

		_, err := c.CalculatePackagePrice(ctx, request())

		require.ErrorIs(t, err, errRedisDown)
		assert.Empty(t, store.data)
	})
}

func TestPackagePriceKey(t *testing.T) {
	a := request()
	b := request()
	b.AdditionalProducts = []string{"cena", "masaje"}

	keyA, err := cache.PackagePriceKey(a)
	require.NoError(t, err)
	keyB, err := cache.PackagePriceKey(b)
	require.NoError(t, err)

	assert.Equal(t, keyA, keyB)
	assert.True(t, strings.HasPrefix(keyA, "package_price:"))
	assert.Equal(t, []string{"masaje", "cena"}, a.AdditionalProducts, "caller's slice is not reordered")

	c := request()
	c.Adults = 3
	keyC, err := cache.PackagePriceKey(c)
	require.NoError(t, err)
	assert.NotEqual(t, keyA, keyC)
}
