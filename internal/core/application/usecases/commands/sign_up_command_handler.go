package commands

import (
	"context"
	"errors"
	"time"

	"kitchen/internal/core/domain/model/account"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

var (
	// ErrEmailAlreadyRegistered is returned when an account with the given
	// email already exists.
	ErrEmailAlreadyRegistered = errors.New("an account with this email already exists")

	// ErrPhoneAlreadyRegistered is returned when an account with the given
	// phone number already exists.
	ErrPhoneAlreadyRegistered = errors.New("an account with this phone number already exists")

	// ErrInvalidReferralCode is returned when the referral code does not
	// reference an existing user.
	ErrInvalidReferralCode = errors.New("invalid referral code")
)

// SignUpCommandHandler handles the business logic for account registration.
// Creates an unverified account with a fresh one-time verification code.
type SignUpCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSignUpCommandHandler creates a handler for account registration.
func NewSignUpCommandHandler(uowFactory UserUoWFactory) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Rejects duplicate email or phone, validates the referral code against an
// existing user, then persists the account with a 6-digit code valid for
// ten minutes. The issued code is returned so the caller can deliver it.
func (h *SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	if cmd.Email() != "" {
		if err := ensureContactIsFree(ctx, userRepo.GetByEmail, cmd.Email(), ErrEmailAlreadyRegistered); err != nil {
			return "", err
		}
	}
	if cmd.Phone() != "" {
		if err := ensureContactIsFree(ctx, userRepo.GetByPhone, cmd.Phone(), ErrPhoneAlreadyRegistered); err != nil {
			return "", err
		}
	}

	user, err := account.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(), time.Now())
	if err != nil {
		return "", err
	}

	if cmd.ReferralCode() != "" {
		referrerID, err := kernel.UUIDFromString(cmd.ReferralCode())
		if err != nil {
			return "", ErrInvalidReferralCode
		}

		referrer, err := userRepo.Get(ctx, referrerID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return "", ErrInvalidReferralCode
			}
			return "", err
		}

		if err := user.SetReferredBy(referrer.ID()); err != nil {
			return "", err
		}
	}

	code, err := account.NewVerificationCode()
	if err != nil {
		return "", err
	}

	if err := user.IssueCode(code, time.Now().Add(account.CodeTTL)); err != nil {
		return "", err
	}

	if err := userRepo.Add(ctx, user); err != nil {
		return "", err
	}

	if err := uow.Commit(ctx); err != nil {
		return "", err
	}

	return code, nil
}

type contactLookup func(ctx context.Context, contact string) (*account.User, error)

func ensureContactIsFree(ctx context.Context, lookup contactLookup, contact string, taken error) error {
	_, err := lookup(ctx, contact)
	if err == nil {
		return taken
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	return err
}
