package queries

import (
	"context"

	"hotel-pricing/internal/domain/pricing"
)

type CheckoutLineView struct {
	ProductCode    string        `json:"product_code"`
	Name           string        `json:"name"`
	Quantity       int           `json:"quantity"`
	UnitPriceGross pricing.Money `json:"unit_price_gross"`
	GrossSubtotal  pricing.Money `json:"gross_subtotal"`
	DiscountAmount pricing.Money `json:"discount_amount"`
	FinalTotal     pricing.Money `json:"final_total"`
}

type CheckoutTotalsView struct {
	Lines          []CheckoutLineView  `json:"lines"`
	Totals         pricing.OrderTotals `json:"totals"`
	TaxRate        string              `json:"tax_rate"`
	DiscountReason string              `json:"discount_reason,omitempty"`
}

// CheckoutQueries backs both point-of-sale screens (reception and restaurant).
type CheckoutQueries interface {
	ComputeTotals(ctx context.Context, order pricing.Order) (*CheckoutTotalsView, error)
}

type checkoutQueriesImpl struct {
	composer *pricing.Composer
}

func NewCheckoutQueries(composer *pricing.Composer) CheckoutQueries {
	return &checkoutQueriesImpl{composer: composer}
}

func (q *checkoutQueriesImpl) ComputeTotals(_ context.Context, order pricing.Order) (*CheckoutTotalsView, error) {
	totals, err := q.composer.ComposeTotals(order)
	if err != nil {
		return nil, err
	}

	lines := make([]CheckoutLineView, len(order.Items))
	for i, item := range order.Items {
		lines[i] = CheckoutLineView{
			ProductCode:    item.ProductCode,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceGross: item.UnitPriceGross,
			GrossSubtotal:  item.GrossSubtotal(),
			DiscountAmount: item.DiscountAmount(),
			FinalTotal:     item.FinalTotal(),
		}
	}

	return &CheckoutTotalsView{
		Lines:          lines,
		Totals:         totals,
		TaxRate:        q.composer.TaxRate().String(),
		DiscountReason: pricing.DiscountReason(order.Items),
	}, nil
}
