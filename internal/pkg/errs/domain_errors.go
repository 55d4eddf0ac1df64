package errs

import "errors"

// Domain-specific sentinel errors shared by the pricing, allocation and reservation packages
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Allocation errors
	ErrAllocation = errors.New("invalid room allocation")

	// Stay errors
	ErrInvalidStay = errors.New("invalid stay")

	// Pricing lookup errors
	ErrPricingLookup   = errors.New("pricing lookup failed")
	ErrPackageNotFound = errors.New("package price not found")
)

// Invalid wraps a formatted message around ErrDomainValidation.
func Invalid(format string, args ...any) error {
	return Wrapf(ErrDomainValidation, format, args...)
}
