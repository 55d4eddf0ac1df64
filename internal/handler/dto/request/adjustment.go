package request

import (
	"hotel-pricing/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

type AdjustmentRequest struct {
	Type  string          `json:"type" binding:"omitempty,oneof=none percentage fixed_amount"`
	Value decimal.Decimal `json:"value"`
}

func (r *AdjustmentRequest) ToDiscount() (pricing.Adjustment, error) {
	if r == nil {
		return pricing.NoAdjustment(), nil
	}
	mode, err := pricing.ParseAdjustmentMode(r.Type)
	if err != nil {
		return pricing.Adjustment{}, err
	}
	return pricing.NewDiscount(mode, r.Value)
}

func (r *AdjustmentRequest) ToSurcharge() (pricing.Adjustment, error) {
	if r == nil {
		return pricing.NoAdjustment(), nil
	}
	mode, err := pricing.ParseAdjustmentMode(r.Type)
	if err != nil {
		return pricing.Adjustment{}, err
	}
	return pricing.NewSurcharge(mode, r.Value)
}
