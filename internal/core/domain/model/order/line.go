package order

import (
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created through
// the NewLine factory method.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError("Line must be created via NewLine")

// Line is one frozen (food, quantity, price) record inside an order.
// The price is copied from the catalog at order-creation time and never
// re-read afterwards: later catalog price changes do not affect it.
// Lines are immutable once created.
type Line struct {
	id       kernel.UUID
	foodID   kernel.UUID
	quantity int
	price    kernel.Price

	isConstructed bool
}

// NewLine creates an order line with a frozen price.
// The quantity must be at least 1 and the price must be a valid Price.
func NewLine(id kernel.UUID, foodID kernel.UUID, quantity int, price kernel.Price) (Line, error) {
	if err := id.Validate(); err != nil {
		return Line{}, err
	}
	if err := foodID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := price.Validate(); err != nil {
		return Line{}, err
	}

	return Line{
		id:            id,
		foodID:        foodID,
		quantity:      quantity,
		price:         price,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was created via NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// FoodID returns the identifier of the referenced catalog item.
func (l Line) FoodID() kernel.UUID {
	return l.foodID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Price returns the frozen per-unit price.
func (l Line) Price() kernel.Price {
	return l.price
}

// Subtotal returns the frozen price multiplied by the quantity.
func (l Line) Subtotal() kernel.Price {
	subtotal, err := l.price.MulQuantity(l.quantity)
	if err != nil {
		// quantity >= 1 is enforced at construction
		return l.price
	}
	return subtotal
}
