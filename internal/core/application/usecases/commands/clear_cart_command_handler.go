package commands

import (
	"context"
)

// ClearCartCommandHandler handles the business logic for emptying a cart.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart clearing command.
// The user must exist; clearing an empty cart is a no-op that succeeds.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := uow.CartRepository().Clear(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
