package kernel

import (
	"fmt"

	"kitchen/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed indicates that a Price was not initialized
// through one of the constructor functions.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("Price must be created via NewPrice or PriceFromString")

// Price is a value object for monetary amounts. It wraps a decimal so money
// arithmetic never touches floating point, and it enforces the catalog rule
// that prices are strictly positive.
//
// The zero value is invalid; construct instances with NewPrice or
// PriceFromString. Line subtotals and order totals are derived with
// MulQuantity and Add, which preserve positivity.
type Price struct {
	amount decimal.Decimal

	isConstructed bool
}

// NewPrice creates a Price from a decimal amount.
// Returns an error if the amount is not strictly positive.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if !amount.IsPositive() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	return Price{amount: amount, isConstructed: true}, nil
}

// PriceFromString parses a decimal string such as "12.50" into a Price.
// Returns an error for malformed input or non-positive amounts.
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	return NewPrice(amount)
}

// Validate returns ErrPriceIsNotConstructed for the zero value, nil otherwise.
func (p Price) Validate() error {
	if !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}

// Decimal returns the underlying decimal amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// String returns the decimal representation, e.g. "12.5".
func (p Price) String() string {
	return p.amount.String()
}

// IsEqual reports whether two prices represent the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// MulQuantity returns the price multiplied by a line quantity.
// The quantity must be at least 1; positivity is therefore preserved.
func (p Price) MulQuantity(quantity int) (Price, error) {
	if quantity < 1 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Price{
		amount:        p.amount.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}, nil
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{
		amount:        p.amount.Add(other.amount),
		isConstructed: true,
	}
}
