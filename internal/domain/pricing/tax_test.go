//go:build unit

package pricing_test

import (
	"testing"

	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxDecomposer(t *testing.T) {
	tax := pricing.NewDefaultTaxDecomposer()

	t.Run("18000 gross", func(t *testing.T) {
		got := tax.Decompose(18000)
		assert.Equal(t, pricing.TaxBreakdown{Net: 15126, Tax: 2874}, got)
	})

	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, pricing.TaxBreakdown{}, tax.Decompose(0))
	})

	t.Run("net plus tax reproduces gross", func(t *testing.T) {
		for gross := pricing.Money(0); gross <= 50000; gross += 7 {
			got := tax.Decompose(gross)
			require.Equal(t, gross, got.Net+got.Tax, "gross %d", gross)
			require.GreaterOrEqual(t, got.Tax, pricing.Money(0), "gross %d", gross)
		}
	})

	t.Run("custom rate", func(t *testing.T) {
		ten, err := pricing.NewTaxDecomposer(decimal.RequireFromString("0.10"))
		require.NoError(t, err)
		assert.Equal(t, pricing.TaxBreakdown{Net: 1000, Tax: 100}, ten.Decompose(1100))
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := pricing.NewTaxDecomposer(decimal.NewFromInt(-1))
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}
