package cart

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory methods.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// Cart is the aggregate root for a user's open basket.
//
// Cart maintains these invariants:
//   - At most one line per food: adding an already-present food merges into
//     the existing line (existing quantity + added quantity), it never
//     inserts a duplicate.
//   - Every line has quantity >= 1.
//   - Lines belong to exactly one user and exist only until the user's
//     order is placed; placement empties the cart atomically.
type Cart struct {
	userID kernel.UUID
	lines  []*Line

	isConstructed bool
}

// NewCart creates an empty cart for the given user.
func NewCart(userID kernel.UUID) (*Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		userID:        userID,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart and its lines from persistence.
func RestoreCart(userID kernel.UUID, lines []*Line) (*Cart, error) {
	cart, err := NewCart(userID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	cart.lines = lines

	return cart, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// UserID returns the identifier of the cart's owner.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Lines returns the cart's lines. The slice is a copy; the lines themselves
// are the aggregate's entities.
func (c *Cart) Lines() []*Line {
	lines := make([]*Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem adds quantity of a food to the cart. When a line for the food
// already exists its quantity is increased; otherwise a new line with the
// given id is appended. Returns the affected line.
func (c *Cart) AddItem(lineID kernel.UUID, foodID kernel.UUID, quantity int) (*Line, error) {
	if err := foodID.Validate(); err != nil {
		return nil, err
	}

	if existing := c.findLineByFood(foodID); existing != nil {
		if err := existing.increment(quantity); err != nil {
			return nil, err
		}
		return existing, nil
	}

	line, err := NewLine(lineID, foodID, quantity)
	if err != nil {
		return nil, err
	}

	c.lines = append(c.lines, line)
	return line, nil
}

// RemoveLine deletes the line with the given id from the cart.
// Returns an ObjectNotFoundError when no such line exists.
func (c *Cart) RemoveLine(lineID kernel.UUID) error {
	for i, line := range c.lines {
		if line.ID().IsEqual(lineID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("cartLineId", lineID.String())
}

// Clear removes every line. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) findLineByFood(foodID kernel.UUID) *Line {
	for _, line := range c.lines {
		if line.FoodID().IsEqual(foodID) {
			return line
		}
	}
	return nil
}
