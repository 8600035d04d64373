package food

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

var (
	// ErrFoodIsNotConstructed is returned when a Food instance was not
	// created through the NewFood or RestoreFood factory methods.
	ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood or RestoreFood")

	// ErrFoodUnavailable is returned when an operation requires an
	// available catalog item and the item is currently switched off.
	ErrFoodUnavailable = errors.New("food item is currently unavailable")
)

// Food is a catalog item. Name is globally unique (enforced by the catalog
// store), price is strictly positive, and availability can be toggled by
// staff at any time. New items start available.
type Food struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Price
	category    string
	available   bool
	createdAt   time.Time

	isConstructed bool
}

// NewFood creates an available catalog item.
func NewFood(id kernel.UUID, name, description string, price kernel.Price, category string, createdAt time.Time) (*Food, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, errs.NewValueIsRequiredError("category")
	}

	return &Food{
		id:            id,
		name:          name,
		description:   description,
		price:         price,
		category:      category,
		available:     true,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreFood reconstructs a catalog item from persistence.
func RestoreFood(id kernel.UUID, name, description string, price kernel.Price, category string, available bool, createdAt time.Time) (*Food, error) {
	f, err := NewFood(id, name, description, price, category, createdAt)
	if err != nil {
		return nil, err
	}
	f.available = available
	return f, nil
}

// Validate ensures the Food instance was properly constructed.
func (f *Food) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFoodIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (f *Food) ID() kernel.UUID {
	return f.id
}

// Name returns the item's globally unique name.
func (f *Food) Name() string {
	return f.name
}

// Description returns the item's description, possibly empty.
func (f *Food) Description() string {
	return f.description
}

// Price returns the item's current price.
func (f *Food) Price() kernel.Price {
	return f.price
}

// Category returns the item's category.
func (f *Food) Category() string {
	return f.category
}

// IsAvailable reports whether the item can currently be ordered.
func (f *Food) IsAvailable() bool {
	return f.available
}

// CreatedAt returns the item's creation timestamp.
func (f *Food) CreatedAt() time.Time {
	return f.createdAt
}

// Rename changes the item's name. The new name must be non-empty; global
// uniqueness is enforced by the catalog store.
func (f *Food) Rename(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	f.name = name
	return nil
}

// ChangeDescription replaces the item's description.
func (f *Food) ChangeDescription(description string) {
	f.description = description
}

// ChangePrice sets a new price. Existing order lines keep their frozen
// prices; only future cart reads and placements see the change.
func (f *Food) ChangePrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	f.price = price
	return nil
}

// ChangeCategory moves the item to another category.
func (f *Food) ChangeCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	f.category = category
	return nil
}

// SetAvailability toggles whether the item can be ordered. Lines already
// in carts are kept; they surface as warnings on cart reads and block
// order placement until removed.
func (f *Food) SetAvailability(available bool) {
	f.available = available
}
