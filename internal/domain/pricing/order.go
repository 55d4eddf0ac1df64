package pricing

import (
	"fmt"

	"hotel-pricing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Order is an ephemeral checkout: nothing here is persisted.
type Order struct {
	Items     []LineItem
	Discount  Adjustment
	Surcharge Adjustment
}

func (o Order) Validate() error {
	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if err := o.Discount.ValidateDiscount(); err != nil {
		return err
	}
	return o.Surcharge.ValidateSurcharge()
}

type OrderTotals struct {
	GrossSubtotal            Money
	GrossDiscount            Money
	SubtotalNet              Money
	DiscountNet              Money
	SubtotalAfterDiscountNet Money
	TaxAmount                Money

	GrandTotalBeforeAdjustment Money
	OrderDiscountAmount        Money
	SurchargeAmount            Money
	FinalTotal                 Money
}

type OrderAdjustments struct {
	DiscountAmount  Money
	SurchargeAmount Money
	FinalTotal      Money
}

// ApplyOrderAdjustments applies an order-level discount and surcharge, both
// computed against base.
func ApplyOrderAdjustments(base Money, discount, surcharge Adjustment) OrderAdjustments {
	d := ComputeDiscount(base, discount)
	s := ComputeSurcharge(base, surcharge)
	return OrderAdjustments{
		DiscountAmount:  d,
		SurchargeAmount: s,
		FinalTotal:      base - d + s,
	}
}

type Composer struct {
	tax *TaxDecomposer
}

func NewComposer(tax *TaxDecomposer) *Composer {
	return &Composer{tax: tax}
}

func (c *Composer) TaxRate() decimal.Decimal {
	return c.tax.Rate()
}

// ComposeTotals folds all lines into order totals.
//
// Tax is recovered from the aggregate gross subtotal and the aggregate gross
// discount, never line by line. Decomposing each line and summing the nets
// rounds differently; the aggregate order is kept for compatibility with the
// amounts already printed on receipts.
func (c *Composer) ComposeTotals(order Order) (OrderTotals, error) {
	if err := order.Validate(); err != nil {
		return OrderTotals{}, err
	}

	var grossSubtotal, grossDiscount, grandTotal Money
	for _, item := range order.Items {
		if item.GrossSubtotal() > MaxAmount-grossSubtotal {
			return OrderTotals{}, errs.Invalid("order subtotal exceeds %d", MaxAmount)
		}
		grossSubtotal += item.GrossSubtotal()
		grossDiscount += item.DiscountAmount()
		grandTotal += item.FinalTotal()
	}
	if err := order.Surcharge.ValidateSurchargeOn(grandTotal); err != nil {
		return OrderTotals{}, err
	}

	subtotal := c.tax.Decompose(grossSubtotal)
	discount := c.tax.Decompose(grossDiscount)

	adj := ApplyOrderAdjustments(grandTotal, order.Discount, order.Surcharge)

	return OrderTotals{
		GrossSubtotal:              grossSubtotal,
		GrossDiscount:              grossDiscount,
		SubtotalNet:                subtotal.Net,
		DiscountNet:                discount.Net,
		SubtotalAfterDiscountNet:   subtotal.Net - discount.Net,
		TaxAmount:                  grossSubtotal - subtotal.Net - (grossDiscount - discount.Net),
		GrandTotalBeforeAdjustment: grandTotal,
		OrderDiscountAmount:        adj.DiscountAmount,
		SurchargeAmount:            adj.SurchargeAmount,
		FinalTotal:                 adj.FinalTotal,
	}, nil
}

// DiscountReason summarizes which lines carry a discount. Empty when none do.
func DiscountReason(items []LineItem) string {
	var discounted []LineItem
	for _, item := range items {
		if item.HasDiscount() {
			discounted = append(discounted, item)
		}
	}
	switch len(discounted) {
	case 0:
		return ""
	case 1:
		return "Discount applied to " + discounted[0].displayName()
	default:
		return fmt.Sprintf("Discounts applied to %d products", len(discounted))
	}
}
