package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrSignUpCommandIsNotConstructed = errors.New(
		"SignUpCommand must be created via NewSignUpCommand constructor",
	)
)

// SignUpCommand represents a request to register a new customer account.
// A name is mandatory; at least one of email or phone must be provided.
// The referral code, when present, is the referring user's ID.
//
// Example:
//
//	userID := kernel.NewUUID()
//	cmd, err := NewSignUpCommand(userID, "Ada", "ada@example.com", "", "")
//	if err != nil {
//	    return fmt.Errorf("invalid signup data: %w", err)
//	}
//
//	handler := NewSignUpCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to sign up: %w", err)
//	}
type SignUpCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	name         string
	email        string
	phone        string
	referralCode string

	guard guard.ConstructorGuard
}

// NewSignUpCommand creates a command to register a new account.
// Validates that the user ID is valid, the name is not empty, and at least
// one contact channel is given. Returns an error if any validation fails.
func NewSignUpCommand(userID kernel.UUID, name, email, phone, referralCode string) (SignUpCommand, error) {
	signUpCommand := SignUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		signUpCommand.setUserID(userID),
		signUpCommand.setName(name),
		signUpCommand.setContact(email, phone),
	); err != nil {
		return SignUpCommand{}, err
	}

	signUpCommand.referralCode = referralCode
	return signUpCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c SignUpCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the display name for the new account.
func (c SignUpCommand) Name() string {
	return c.name
}

// Email returns the email address, or "" when none was given.
func (c SignUpCommand) Email() string {
	return c.email
}

// Phone returns the phone number, or "" when none was given.
func (c SignUpCommand) Phone() string {
	return c.phone
}

// ReferralCode returns the referring user's ID, or "" when none was given.
func (c SignUpCommand) ReferralCode() string {
	return c.referralCode
}

func (c *SignUpCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *SignUpCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *SignUpCommand) setContact(email, phone string) error {
	if email == "" && phone == "" {
		return errs.NewValueIsRequiredError("email or phone")
	}

	c.email = email
	c.phone = phone
	return nil
}
