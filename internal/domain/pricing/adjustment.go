package pricing

import (
	"hotel-pricing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type AdjustmentMode string

const (
	ModeNone        AdjustmentMode = "none"
	ModePercentage  AdjustmentMode = "percentage"
	ModeFixedAmount AdjustmentMode = "fixed_amount"
)

func (m AdjustmentMode) String() string {
	return string(m)
}

func (m AdjustmentMode) IsValid() bool {
	switch m {
	case ModeNone, ModePercentage, ModeFixedAmount:
		return true
	default:
		return false
	}
}

// ParseAdjustmentMode treats an empty string as ModeNone.
func ParseAdjustmentMode(s string) (AdjustmentMode, error) {
	if s == "" {
		return ModeNone, nil
	}
	m := AdjustmentMode(s)
	if !m.IsValid() {
		return "", errs.Invalid("unknown adjustment mode %q", s)
	}
	return m, nil
}

// Adjustment is either a discount or a surcharge. The two share a shape and
// differ only in how ComputeDiscount and ComputeSurcharge realize them.
type Adjustment struct {
	Mode  AdjustmentMode
	Value decimal.Decimal
}

func NoAdjustment() Adjustment {
	return Adjustment{Mode: ModeNone}
}

func NewDiscount(mode AdjustmentMode, value decimal.Decimal) (Adjustment, error) {
	d := Adjustment{Mode: mode, Value: value}
	if err := d.ValidateDiscount(); err != nil {
		return Adjustment{}, err
	}
	return d, nil
}

func NewSurcharge(mode AdjustmentMode, value decimal.Decimal) (Adjustment, error) {
	s := Adjustment{Mode: mode, Value: value}
	if err := s.ValidateSurcharge(); err != nil {
		return Adjustment{}, err
	}
	return s, nil
}

func (a Adjustment) IsNone() bool {
	return a.Mode == "" || a.Mode == ModeNone
}

func (a Adjustment) ValidateDiscount() error {
	if err := a.validateCommon(); err != nil {
		return err
	}
	if a.Mode == ModePercentage && a.Value.GreaterThan(hundred) {
		return errs.Invalid("percentage discount must be between 0 and 100, got %s", a.Value)
	}
	return nil
}

// ValidateSurcharge does not cap percentages: a surcharge is an added fee.
func (a Adjustment) ValidateSurcharge() error {
	return a.validateCommon()
}

// ValidateSurchargeOn also rejects a surcharge whose amount on base would
// exceed MaxAmount.
func (a Adjustment) ValidateSurchargeOn(base Money) error {
	if err := a.ValidateSurcharge(); err != nil {
		return err
	}
	if a.Mode == ModePercentage && base.Decimal().Mul(a.Value).Div(hundred).GreaterThan(MaxAmount.Decimal()) {
		return errs.Invalid("surcharge of %s%% on %d exceeds %d", a.Value, base, MaxAmount)
	}
	return nil
}

func (a Adjustment) validateCommon() error {
	if a.Mode != "" && !a.Mode.IsValid() {
		return errs.Invalid("unknown adjustment mode %q", a.Mode)
	}
	if a.Value.IsNegative() {
		return errs.Invalid("adjustment value cannot be negative, got %s", a.Value)
	}
	if a.Mode == ModeFixedAmount && a.Value.GreaterThan(MaxAmount.Decimal()) {
		return errs.Invalid("fixed adjustment cannot exceed %d, got %s", MaxAmount, a.Value)
	}
	return nil
}

// ComputeDiscount realizes a discount against a gross amount. Fixed amounts
// are clamped so a discounted amount never goes below zero.
func ComputeDiscount(lineGross Money, d Adjustment) Money {
	switch d.Mode {
	case ModePercentage:
		return percentOf(lineGross, d.Value)
	case ModeFixedAmount:
		return MoneyFromDecimal(d.Value).Min(lineGross)
	default:
		return 0
	}
}

// ComputeSurcharge realizes a surcharge against a base amount. Fixed amounts
// are not clamped.
func ComputeSurcharge(baseAmount Money, s Adjustment) Money {
	switch s.Mode {
	case ModePercentage:
		return percentOf(baseAmount, s.Value)
	case ModeFixedAmount:
		return MoneyFromDecimal(s.Value)
	default:
		return 0
	}
}
