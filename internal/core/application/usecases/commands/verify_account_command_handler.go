package commands

import (
	"context"
	"time"
)

// VerifyAccountCommandHandler handles the business logic for account
// verification. Verification is one-way: once an account is verified the
// code is cleared and a second attempt fails.
type VerifyAccountCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewVerifyAccountCommandHandler creates a handler for account verification.
func NewVerifyAccountCommandHandler(uowFactory UserUoWFactory) VerifyAccountCommandHandler {
	return VerifyAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command.
// Loads the account, checks the code against expiry and value, and persists
// the verified state.
func (h *VerifyAccountCommandHandler) Handle(ctx context.Context, cmd VerifyAccountCommand) error {
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

	userRepo := uow.UserRepository()
	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err := user.Verify(cmd.Code(), time.Now()); err != nil {
		return err
	}

	if err := userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
