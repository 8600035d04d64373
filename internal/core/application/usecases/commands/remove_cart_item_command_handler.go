package commands

import (
	"context"
)

// RemoveCartItemCommandHandler handles the business logic for removing a
// single cart line.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart line removal command.
// The line must belong to the given user's cart.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err := userCart.RemoveLine(cmd.LineID()); err != nil {
		return err
	}

	if err := cartRepo.DeleteLine(ctx, cmd.UserID(), cmd.LineID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
