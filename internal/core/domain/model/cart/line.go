package cart

import (
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created through
// the NewLine factory method.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError("Line must be created via NewLine")

// Line is one (food, quantity) record in a user's cart. Unlike order lines,
// cart lines carry no price: pricing is resolved against the live catalog
// whenever the cart is read.
type Line struct {
	id       kernel.UUID
	foodID   kernel.UUID
	quantity int

	isConstructed bool
}

// NewLine creates a cart line. The quantity must be at least 1.
func NewLine(id kernel.UUID, foodID kernel.UUID, quantity int) (*Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := foodID.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &Line{
		id:            id,
		foodID:        foodID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was created via NewLine.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// FoodID returns the identifier of the referenced catalog item.
func (l *Line) FoodID() kernel.UUID {
	return l.foodID
}

// Quantity returns the line's current quantity.
func (l *Line) Quantity() int {
	return l.quantity
}

// increment raises the quantity by delta. Used by Cart.AddItem when a food
// is added that is already present; delta must be at least 1.
func (l *Line) increment(delta int) error {
	if delta < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", delta))
	}

	l.quantity += delta
	return nil
}
