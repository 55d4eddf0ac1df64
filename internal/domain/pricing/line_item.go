package pricing

import (
	"hotel-pricing/internal/pkg/errs"
)

type LineItem struct {
	ProductCode    string
	Name           string
	UnitPriceGross Money
	Quantity       int
	Discount       Adjustment
}

func (li LineItem) Validate() error {
	if li.Quantity < 1 {
		return errs.Invalid("line %q: quantity must be at least 1, got %d", li.ProductCode, li.Quantity)
	}
	if li.UnitPriceGross.IsNegative() {
		return errs.Invalid("line %q: unit price cannot be negative, got %d", li.ProductCode, li.UnitPriceGross)
	}
	if li.UnitPriceGross > MaxAmount/Money(li.Quantity) {
		return errs.Invalid("line %q: subtotal exceeds %d", li.ProductCode, MaxAmount)
	}
	if err := li.Discount.ValidateDiscount(); err != nil {
		return errs.Wrapf(err, "line %q", li.ProductCode)
	}
	return nil
}

func (li LineItem) GrossSubtotal() Money {
	return li.UnitPriceGross * Money(li.Quantity)
}

func (li LineItem) DiscountAmount() Money {
	return ComputeDiscount(li.GrossSubtotal(), li.Discount)
}

// FinalTotal is the tax-inclusive line total after the line discount.
func (li LineItem) FinalTotal() Money {
	return li.GrossSubtotal() - li.DiscountAmount()
}

func (li LineItem) HasDiscount() bool {
	return !li.Discount.IsNone()
}

func (li LineItem) displayName() string {
	if li.Name != "" {
		return li.Name
	}
	return li.ProductCode
}
