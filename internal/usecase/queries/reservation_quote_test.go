//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-pricing/internal/domain/allocation"
	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/domain/reservation"
	"hotel-pricing/internal/pkg/clock"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/queries"
	reservationmock "hotel-pricing/tests/mock/reservation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errUpstream = errors.New("rpc unavailable")
	quotedAt    = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
)

func newQuoteQueries(lookup reservation.PricingLookup) queries.ReservationQuoteQueries {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return queries.NewReservationQuoteQueries(reservation.NewAggregator(lookup, 1), clock.NewFixedClock(quotedAt), logger)
}

func quoteInput() queries.QuoteInput {
	checkIn := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	return queries.QuoteInput{
		PackageCode: "HALF_BOARD",
		Rooms:       []reservation.Room{{Number: "101"}, {Code: "suite_201", Number: "201"}},
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, 3),
		Party:       allocation.GuestParty{Adults: 3, Children: 2, ChildAges: []int{4, 9}},
		Discount:    pricing.NoAdjustment(),
		Surcharge:   pricing.NoAdjustment(),
	}
}

func priced(total pricing.Money) *reservation.PriceResult {
	return &reservation.PriceResult{
		GrandTotal: total,
		RoomTotal:  total,
		Breakdown:  []reservation.PriceBreakdownItem{{Code: "room", Name: "Room", Total: total}},
	}
}

func TestReservationQuoteQueries_Allocate(t *testing.T) {
	ctx := context.Background()
	q := newQuoteQueries(nil)

	t.Run("success: splits guests across rooms", func(t *testing.T) {
		party := allocation.GuestParty{Adults: 5, Children: 3, ChildAges: []int{2, 7, 11}}

		views, err := q.Allocate(ctx, party, 2)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, queries.RoomAllocationView{Room: 0, Adults: 3, Children: 2, ChildrenAges: []int{2, 7}}, views[0])
		assert.Equal(t, queries.RoomAllocationView{Room: 1, Adults: 2, Children: 1, ChildrenAges: []int{11}}, views[1])
	})

	t.Run("error: zero rooms", func(t *testing.T) {
		_, err := q.Allocate(ctx, allocation.GuestParty{Adults: 1}, 0)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrAllocation))
	})
}

func TestReservationQuoteQueries_Quote(t *testing.T) {
	ctx := context.Background()

	t.Run("success: aggregates rooms and applies order adjustments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lookup := reservationmock.NewMockPricingLookup(ctrl)
		lookup.EXPECT().CalculatePackagePrice(gomock.Any(), reservation.RoomPriceRequest{
			PackageCode: "HALF_BOARD", RoomCode: "habitacion_101", Adults: 2, ChildrenAges: []int{4}, Nights: 3,
		}).Return(priced(300000), nil)
		lookup.EXPECT().CalculatePackagePrice(gomock.Any(), reservation.RoomPriceRequest{
			PackageCode: "HALF_BOARD", RoomCode: "suite_201", Adults: 1, ChildrenAges: []int{9}, Nights: 3,
		}).Return(priced(200000), nil)

		in := quoteInput()
		var err error
		in.Discount, err = pricing.NewDiscount(pricing.ModePercentage, decimal.NewFromInt(10))
		require.NoError(t, err)
		in.Surcharge, err = pricing.NewSurcharge(pricing.ModeFixedAmount, decimal.NewFromInt(15000))
		require.NoError(t, err)

		view, err := newQuoteQueries(lookup).Quote(ctx, in)

		require.NoError(t, err)
		assert.NotEmpty(t, view.ID)
		assert.Equal(t, 3, view.Nights)
		assert.Equal(t, quotedAt, view.QuotedAt)
		assert.Equal(t, "HALF_BOARD", view.PackageCode)
		require.Len(t, view.Allocations, 2)
		assert.Equal(t, "habitacion_101", view.Allocations[0].RoomCode)
		assert.Equal(t, "suite_201", view.Allocations[1].RoomCode)
		assert.Equal(t, pricing.Money(500000), view.Subtotal)
		assert.Equal(t, pricing.Money(50000), view.DiscountAmount)
		assert.Equal(t, pricing.Money(15000), view.SurchargeAmount)
		assert.Equal(t, pricing.Money(465000), view.FinalTotal)
		assert.Equal(t, 2, view.Pricing.RoomCount)
	})

	t.Run("error: check-out before check-in", func(t *testing.T) {
		in := quoteInput()
		in.CheckOut = in.CheckIn

		_, err := newQuoteQueries(nil).Quote(ctx, in)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidStay))
	})

	t.Run("error: missing package code", func(t *testing.T) {
		in := quoteInput()
		in.PackageCode = ""

		_, err := newQuoteQueries(nil).Quote(ctx, in)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrDomainValidation))
	})

	t.Run("error: lookup failure fails the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lookup := reservationmock.NewMockPricingLookup(ctrl)
		lookup.EXPECT().CalculatePackagePrice(gomock.Any(), gomock.Any()).Return(nil, errUpstream).Times(1)

		view, err := newQuoteQueries(lookup).Quote(ctx, quoteInput())

		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, errs.Is(err, errs.ErrPricingLookup))
	})
}

func TestReservationQuoteQueries_ComparePackages(t *testing.T) {
	ctx := context.Background()

	t.Run("success: a failing package does not fail the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lookup := reservationmock.NewMockPricingLookup(ctrl)
		lookup.EXPECT().CalculatePackagePrice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req reservation.RoomPriceRequest) (*reservation.PriceResult, error) {
				if req.PackageCode == "BROKEN" {
					return nil, errUpstream
				}
				return priced(100000), nil
			}).AnyTimes()

		views, err := newQuoteQueries(lookup).ComparePackages(ctx, quoteInput(), []string{"HALF_BOARD", "BROKEN", "FULL_BOARD"})

		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, pricing.Money(200000), views[0].GrandTotal)
		assert.Empty(t, views[0].Error)
		assert.Equal(t, "BROKEN", views[1].PackageCode)
		assert.Contains(t, views[1].Error, errUpstream.Error())
		assert.Equal(t, 2, views[2].RoomCount)
	})

	t.Run("error: invalid stay fails the whole comparison", func(t *testing.T) {
		in := quoteInput()
		in.CheckOut = in.CheckIn.Add(-time.Hour)

		_, err := newQuoteQueries(nil).ComparePackages(ctx, in, []string{"HALF_BOARD"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidStay))
	})
}
