package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
)

// GetUserOrdersQuery retrieves a user's order history, newest first.
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query to fetch a user's orders.
func NewGetUserOrdersQuery(userID kernel.UUID) (GetUserOrdersQuery, error) {
	query := GetUserOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the user whose orders are fetched.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetUserOrdersQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}
