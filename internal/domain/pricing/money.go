package pricing

import (
	"github.com/shopspring/decimal"
)

// Money is an amount in whole currency units (CLP has no minor unit).
// Every unit price handled by this package is gross, i.e. tax-inclusive.
type Money int64

// MaxAmount bounds every line subtotal, order total and adjustment amount.
// Anything above it is rejected as invalid input.
const MaxAmount Money = 1_000_000_000_000_000

func NewMoney(amount int64) Money {
	return Money(amount)
}

// MoneyFromDecimal rounds half-up to the nearest unit.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money(d.Round(0).IntPart())
}

func (m Money) Int64() int64 {
	return int64(m)
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m))
}

func (m Money) IsNegative() bool {
	return m < 0
}

func (m Money) Min(other Money) Money {
	if other < m {
		return other
	}
	return m
}

// DivRound divides and rounds half-up. Division by zero yields zero.
func (m Money) DivRound(n int) Money {
	if n == 0 {
		return 0
	}
	return MoneyFromDecimal(m.Decimal().Div(decimal.NewFromInt(int64(n))))
}

func percentOf(base Money, percent decimal.Decimal) Money {
	return MoneyFromDecimal(base.Decimal().Mul(percent).Div(hundred))
}

var hundred = decimal.NewFromInt(100)
