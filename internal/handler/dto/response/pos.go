package response

import (
	"hotel-pricing/internal/usecase/queries"
)

type CheckoutLineResponse struct {
	ProductCode    string `json:"productCode"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceGross int64  `json:"unitPriceGross"`
	GrossSubtotal  int64  `json:"grossSubtotal"`
	DiscountAmount int64  `json:"discountAmount"`
	FinalTotal     int64  `json:"finalTotal"`
}

type CheckoutTotalsResponse struct {
	Lines                      []CheckoutLineResponse `json:"lines"`
	GrossSubtotal              int64                  `json:"grossSubtotal"`
	GrossDiscount              int64                  `json:"grossDiscount"`
	SubtotalNet                int64                  `json:"subtotalNet"`
	DiscountNet                int64                  `json:"discountNet"`
	SubtotalAfterDiscountNet   int64                  `json:"subtotalAfterDiscountNet"`
	TaxAmount                  int64                  `json:"taxAmount"`
	TaxRate                    string                 `json:"taxRate"`
	GrandTotalBeforeAdjustment int64                  `json:"grandTotalBeforeAdjustment"`
	OrderDiscountAmount        int64                  `json:"orderDiscountAmount"`
	SurchargeAmount            int64                  `json:"surchargeAmount"`
	FinalTotal                 int64                  `json:"finalTotal"`
	DiscountReason             string                 `json:"discountReason,omitempty"`
}

func FromCheckoutTotalsView(v *queries.CheckoutTotalsView) *CheckoutTotalsResponse {
	lines := make([]CheckoutLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = CheckoutLineResponse{
			ProductCode:    l.ProductCode,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPriceGross: l.UnitPriceGross.Int64(),
			GrossSubtotal:  l.GrossSubtotal.Int64(),
			DiscountAmount: l.DiscountAmount.Int64(),
			FinalTotal:     l.FinalTotal.Int64(),
		}
	}

	t := v.Totals
	return &CheckoutTotalsResponse{
		Lines:                      lines,
		GrossSubtotal:              t.GrossSubtotal.Int64(),
		GrossDiscount:              t.GrossDiscount.Int64(),
		SubtotalNet:                t.SubtotalNet.Int64(),
		DiscountNet:                t.DiscountNet.Int64(),
		SubtotalAfterDiscountNet:   t.SubtotalAfterDiscountNet.Int64(),
		TaxAmount:                  t.TaxAmount.Int64(),
		TaxRate:                    v.TaxRate,
		GrandTotalBeforeAdjustment: t.GrandTotalBeforeAdjustment.Int64(),
		OrderDiscountAmount:        t.OrderDiscountAmount.Int64(),
		SurchargeAmount:            t.SurchargeAmount.Int64(),
		FinalTotal:                 t.FinalTotal.Int64(),
		DiscountReason:             v.DiscountReason,
	}
}
