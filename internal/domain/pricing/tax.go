package pricing

import (
	"hotel-pricing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var DefaultTaxRate = decimal.RequireFromString("0.19")

type TaxBreakdown struct {
	Net Money
	Tax Money
}

// TaxDecomposer recovers the net and tax parts of a gross amount for a fixed rate.
type TaxDecomposer struct {
	rate    decimal.Decimal
	divisor decimal.Decimal
}

func NewTaxDecomposer(rate decimal.Decimal) (*TaxDecomposer, error) {
	if rate.IsNegative() {
		return nil, errs.Invalid("tax rate cannot be negative, got %s", rate)
	}
	return &TaxDecomposer{
		rate:    rate,
		divisor: decimal.NewFromInt(1).Add(rate),
	}, nil
}

func NewDefaultTaxDecomposer() *TaxDecomposer {
	t, _ := NewTaxDecomposer(DefaultTaxRate)
	return t
}

func (t *TaxDecomposer) Rate() decimal.Decimal {
	return t.rate
}

// Decompose guarantees Net + Tax == gross.
func (t *TaxDecomposer) Decompose(gross Money) TaxBreakdown {
	net := MoneyFromDecimal(gross.Decimal().Div(t.divisor))
	return TaxBreakdown{Net: net, Tax: gross - net}
}
