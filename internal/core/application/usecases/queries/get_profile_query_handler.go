package queries

import (
	"context"
	"database/sql"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileQueryHandler retrieves public user profiles from the database.
// Selects only public columns so the verification code can never leak into
// a response.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile queries.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query to fetch one user profile by ID.
func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (ProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return ProfileResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			role,
			is_verified,
			created_at
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row()

	var profile ProfileResponse
	var id uuid.UUID
	var email, phone sql.NullString
	err := row.Scan(
		&id,
		&profile.Name,
		&email,
		&phone,
		&profile.Role,
		&profile.Verified,
		&profile.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ProfileResponse{}, errs.NewObjectNotFoundError("userId", query.UserID())
	}
	if err != nil {
		return ProfileResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProfileResponse{}, err
	}
	profile.ID = userID
	profile.Email = email.String
	profile.Phone = phone.String

	return profile, nil
}
