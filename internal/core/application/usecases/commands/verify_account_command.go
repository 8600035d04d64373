package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrVerifyAccountCommandIsNotConstructed = errors.New(
		"VerifyAccountCommand must be created via NewVerifyAccountCommand constructor",
	)
)

// VerifyAccountCommand represents a request to verify an account with a
// one-time code.
type VerifyAccountCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	code   string

	guard guard.ConstructorGuard
}

// NewVerifyAccountCommand creates a command to verify an account.
func NewVerifyAccountCommand(userID kernel.UUID, code string) (VerifyAccountCommand, error) {
	verifyCommand := VerifyAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		verifyCommand.setUserID(userID),
		verifyCommand.setCode(code),
	); err != nil {
		return VerifyAccountCommand{}, err
	}

	return verifyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyAccountCommand) Validate() error {
	return c.guard.Validate(ErrVerifyAccountCommandIsNotConstructed)
}

// UserID returns the account to verify.
func (c VerifyAccountCommand) UserID() kernel.UUID {
	return c.userID
}

// Code returns the presented one-time code.
func (c VerifyAccountCommand) Code() string {
	return c.code
}

func (c *VerifyAccountCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *VerifyAccountCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
