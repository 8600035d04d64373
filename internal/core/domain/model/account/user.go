package account

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrContactIsRequired is returned when neither an email nor a phone
	// number is provided. At least one contact channel is mandatory.
	ErrContactIsRequired = errs.NewValueIsRequiredError("email or phone")

	// ErrUserNotVerified is returned when an operation requires a verified
	// account and the user has not completed verification.
	ErrUserNotVerified = errors.New("account is not verified")

	// ErrUserAlreadyVerified is returned when verification is attempted on
	// an account that already completed it. Verification is one-way and
	// happens exactly once.
	ErrUserAlreadyVerified = errors.New("account is already verified")

	// ErrCodeExpired is returned when the one-time code's expiry has passed.
	ErrCodeExpired = errors.New("verification code has expired")

	// ErrCodeMismatch is returned when the presented code does not match
	// the outstanding one.
	ErrCodeMismatch = errors.New("verification code does not match")
)

// Role distinguishes customers from staff. Staff-only operations (catalog
// management, order status updates) are gated at the transport layer.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Validate checks that the role is one of the known roles.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleAdmin {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// User is the account entity. Identity is an opaque UUID; contact is an
// email and/or phone number, at least one required and each globally unique
// when present (uniqueness is enforced by the account store).
//
// Lifecycle: created unverified with an outstanding one-time code; becomes
// verified exactly once when a matching, unexpired code is presented, at
// which point the code is cleared. The verified flag never goes back.
type User struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	role       Role
	verified   bool
	code       string
	codeExp    time.Time
	referredBy kernel.UUID
	createdAt  time.Time

	isConstructed bool
}

// NewUser creates an unverified customer account. Either email or phone may
// be empty, but not both.
func NewUser(id kernel.UUID, name, email, phone string, createdAt time.Time) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email == "" && phone == "" {
		return nil, ErrContactIsRequired
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		role:          RoleCustomer,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(
	id kernel.UUID,
	name, email, phone string,
	role Role,
	verified bool,
	code string,
	codeExpiresAt time.Time,
	referredBy kernel.UUID,
	createdAt time.Time,
) (*User, error) {
	user, err := NewUser(id, name, email, phone, createdAt)
	if err != nil {
		return nil, err
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	user.role = role
	user.verified = verified
	user.code = code
	user.codeExp = codeExpiresAt
	user.referredBy = referredBy

	return user, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email, or "" when none was given.
func (u *User) Email() string {
	return u.email
}

// Phone returns the user's phone number, or "" when none was given.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsVerified reports whether the account completed verification.
func (u *User) IsVerified() bool {
	return u.verified
}

// Code returns the outstanding one-time code, or "" once verified.
func (u *User) Code() string {
	return u.code
}

// CodeExpiresAt returns the code's expiry; zero when no code is outstanding.
func (u *User) CodeExpiresAt() time.Time {
	return u.codeExp
}

// ReferredBy returns the referrer's user ID and whether one was recorded.
func (u *User) ReferredBy() (kernel.UUID, bool) {
	return u.referredBy, u.referredBy.Validate() == nil
}

// SetReferredBy records which existing user referred this account.
// Existence of the referrer is the caller's responsibility.
func (u *User) SetReferredBy(referrerID kernel.UUID) error {
	if err := referrerID.Validate(); err != nil {
		return err
	}

	u.referredBy = referrerID
	return nil
}

// CreatedAt returns the account's creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// IssueCode stores a fresh one-time code with its expiry.
// Verified accounts never receive codes.
func (u *User) IssueCode(code string, expiresAt time.Time) error {
	if u.verified {
		return ErrUserAlreadyVerified
	}
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	u.code = code
	u.codeExp = expiresAt
	return nil
}

// Verify flips the account to verified when the presented code matches the
// outstanding one and has not expired. On success the code and expiry are
// cleared. The transition is one-way: a second call returns
// ErrUserAlreadyVerified regardless of the code.
func (u *User) Verify(code string, now time.Time) error {
	if u.verified {
		return ErrUserAlreadyVerified
	}
	if now.After(u.codeExp) {
		return ErrCodeExpired
	}
	if u.code != code {
		return ErrCodeMismatch
	}

	u.verified = true
	u.code = ""
	u.codeExp = time.Time{}
	return nil
}
