package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrRemoveCartItemCommandIsNotConstructed = errors.New(
		"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
	)
)

// RemoveCartItemCommand represents a request to remove a single line from a
// user's cart. The lookup is owner-scoped: another user's line is reported
// as not found.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
func NewRemoveCartItemCommand(userID, lineID kernel.UUID) (RemoveCartItemCommand, error) {
	cartCommand := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setUserID(userID),
		cartCommand.setLineID(lineID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c RemoveCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

// LineID returns the cart line to remove.
func (c RemoveCartItemCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *RemoveCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RemoveCartItemCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
