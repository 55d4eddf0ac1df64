//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutQueries() queries.CheckoutQueries {
	return queries.NewCheckoutQueries(pricing.NewComposer(pricing.NewDefaultTaxDecomposer()))
}

func TestCheckoutQueries_ComputeTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("success: lines and totals for a discounted restaurant ticket", func(t *testing.T) {
		tenOff, err := pricing.NewDiscount(pricing.ModePercentage, decimal.NewFromInt(10))
		require.NoError(t, err)

		order := pricing.Order{
			Items: []pricing.LineItem{
				{ProductCode: "lunch", Name: "Lunch", UnitPriceGross: 10000, Quantity: 2, Discount: tenOff},
				{ProductCode: "coffee", Name: "Coffee", UnitPriceGross: 3000, Quantity: 1, Discount: pricing.NoAdjustment()},
			},
			Discount:  pricing.NoAdjustment(),
			Surcharge: pricing.NoAdjustment(),
		}

		view, err := newCheckoutQueries().ComputeTotals(ctx, order)

		require.NoError(t, err)
		require.Len(t, view.Lines, 2)
		assert.Equal(t, pricing.Money(20000), view.Lines[0].GrossSubtotal)
		assert.Equal(t, pricing.Money(2000), view.Lines[0].DiscountAmount)
		assert.Equal(t, pricing.Money(18000), view.Lines[0].FinalTotal)
		assert.Equal(t, pricing.Money(3000), view.Lines[1].FinalTotal)

		assert.Equal(t, pricing.Money(23000), view.Totals.GrossSubtotal)
		assert.Equal(t, pricing.Money(2000), view.Totals.GrossDiscount)
		assert.Equal(t, pricing.Money(21000), view.Totals.FinalTotal)
		assert.Equal(t, view.Totals.GrandTotalBeforeAdjustment,
			view.Totals.SubtotalAfterDiscountNet+view.Totals.TaxAmount)
		assert.Equal(t, "0.19", view.TaxRate)
		assert.Equal(t, "Discount applied to Lunch", view.DiscountReason)
	})

	t.Run("success: empty order yields zero totals", func(t *testing.T) {
		view, err := newCheckoutQueries().ComputeTotals(ctx, pricing.Order{})

		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.Equal(t, pricing.Money(0), view.Totals.FinalTotal)
		assert.Empty(t, view.DiscountReason)
	})

	t.Run("error: invalid line is rejected", func(t *testing.T) {
		order := pricing.Order{
			Items: []pricing.LineItem{{ProductCode: "x", Name: "X", UnitPriceGross: 100, Quantity: 0}},
		}

		view, err := newCheckoutQueries().ComputeTotals(ctx, order)

		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
