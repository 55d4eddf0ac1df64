//go:build unit || e2e

package builder

import (
	"hotel-pricing/internal/domain/pricing"
	reqdto "hotel-pricing/internal/handler/dto/request"
	"hotel-pricing/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type CheckoutBuilder struct {
	Items     []reqdto.LineItemRequest
	Discount  *reqdto.AdjustmentRequest
	Surcharge *reqdto.AdjustmentRequest
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		Items: []reqdto.LineItemRequest{
			{
				ProductCode:    "almuerzo",
				Name:           "Lunch",
				UnitPriceGross: 10000,
				Quantity:       2,
				Discount:       &reqdto.AdjustmentRequest{Type: "percentage", Value: decimal.NewFromInt(10)},
			},
			{ProductCode: "cafe", Name: "Coffee", UnitPriceGross: 3000, Quantity: 1},
		},
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildRequestDTO() reqdto.CheckoutTotalsRequest {
	return reqdto.CheckoutTotalsRequest{
		Items:     b.Items,
		Discount:  b.Discount,
		Surcharge: b.Surcharge,
	}
}

func (b *CheckoutBuilder) BuildView() *queries.CheckoutTotalsView {
	return &queries.CheckoutTotalsView{
		Lines: []queries.CheckoutLineView{
			{ProductCode: "almuerzo", Name: "Lunch", Quantity: 2, UnitPriceGross: 10000, GrossSubtotal: 20000, DiscountAmount: 2000, FinalTotal: 18000},
			{ProductCode: "cafe", Name: "Coffee", Quantity: 1, UnitPriceGross: 3000, GrossSubtotal: 3000, FinalTotal: 3000},
		},
		Totals: pricing.OrderTotals{
			GrossSubtotal:              23000,
			GrossDiscount:              2000,
			SubtotalNet:                19328,
			DiscountNet:                1681,
			SubtotalAfterDiscountNet:   17647,
			TaxAmount:                  3353,
			GrandTotalBeforeAdjustment: 21000,
			FinalTotal:                 21000,
		},
		TaxRate:        "0.19",
		DiscountReason: "Discount applied to Lunch",
	}
}
