package commands

import (
	"context"
)

// CancelOrderCommandHandler handles the business logic for customer
// cancellation. Only pending orders can be cancelled, and only by their
// owner.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Loads the order scoped to its owner, cancels it if still pending, and
// persists the terminal state.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUser(ctx, cmd.OrderID(), cmd.UserID())
	if err != nil {
		return err
	}

	if err := aggregate.Cancel(); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
