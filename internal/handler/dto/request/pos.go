package request

import (
	"strings"

	"hotel-pricing/internal/domain/pricing"
)

type LineItemRequest struct {
	ProductCode    string             `json:"productCode" binding:"required"`
	Name           string             `json:"name"`
	UnitPriceGross int64              `json:"unitPriceGross" binding:"min=0,max=1000000000000000"`
	Quantity       int                `json:"quantity" binding:"required,min=1"`
	Discount       *AdjustmentRequest `json:"discount,omitempty"`
}

type CheckoutTotalsRequest struct {
	Items     []LineItemRequest  `json:"items" binding:"dive"`
	Discount  *AdjustmentRequest `json:"discount,omitempty"`
	Surcharge *AdjustmentRequest `json:"surcharge,omitempty"`
}

func (r CheckoutTotalsRequest) ToDomain() (pricing.Order, error) {
	items := make([]pricing.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		discount, err := it.Discount.ToDiscount()
		if err != nil {
			return pricing.Order{}, err
		}
		items = append(items, pricing.LineItem{
			ProductCode:    strings.TrimSpace(it.ProductCode),
			Name:           strings.TrimSpace(it.Name),
			UnitPriceGross: pricing.NewMoney(it.UnitPriceGross),
			Quantity:       it.Quantity,
			Discount:       discount,
		})
	}

	discount, err := r.Discount.ToDiscount()
	if err != nil {
		return pricing.Order{}, err
	}
	surcharge, err := r.Surcharge.ToSurcharge()
	if err != nil {
		return pricing.Order{}, err
	}

	return pricing.Order{
		Items:     items,
		Discount:  discount,
		Surcharge: surcharge,
	}, nil
}
