package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetProfileQueryIsNotConstructed = errors.New(
		"GetProfileQuery must be created via NewGetProfileQuery constructor",
	)
)

// GetProfileQuery retrieves a user's public profile.
// The outstanding verification code is never part of the read model.
type GetProfileQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query to fetch a user profile.
func NewGetProfileQuery(userID kernel.UUID) (GetProfileQuery, error) {
	query := GetProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetProfileQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// UserID returns the user to fetch.
func (q GetProfileQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetProfileQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// ProfileResponse represents a user's public profile in the read model.
type ProfileResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	Role      string
	Verified  bool
	CreatedAt time.Time
}
