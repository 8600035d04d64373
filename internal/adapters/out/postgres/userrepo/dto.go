// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user aggregate, handling
// the conversion between domain entities and database representations.
package userrepo

import (
	"time"

	"kitchen/internal/core/domain/model/account"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// Email and phone are nullable so the unique indexes only apply to accounts
// that actually carry the contact channel.
type UserDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Email         *string `gorm:"uniqueIndex"`
	Phone         *string `gorm:"uniqueIndex"`
	Role          string
	IsVerified    bool
	Code          string
	CodeExpiresAt time.Time
	ReferredBy    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *account.User) UserDTO {
	var email, phone *string
	if aggregate.Email() != "" {
		e := aggregate.Email()
		email = &e
	}
	if aggregate.Phone() != "" {
		p := aggregate.Phone()
		phone = &p
	}

	var referredBy *uuid.UUID
	if referrerID, ok := aggregate.ReferredBy(); ok {
		raw := referrerID.Bytes()
		referredBy = &raw
	}

	return UserDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Email:         email,
		Phone:         phone,
		Role:          string(aggregate.Role()),
		IsVerified:    aggregate.IsVerified(),
		Code:          aggregate.Code(),
		CodeExpiresAt: aggregate.CodeExpiresAt(),
		ReferredBy:    referredBy,
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var email, phone string
	if dto.Email != nil {
		email = *dto.Email
	}
	if dto.Phone != nil {
		phone = *dto.Phone
	}

	var referredBy kernel.UUID
	if dto.ReferredBy != nil {
		referredBy, err = kernel.UUIDFromBytes((*dto.ReferredBy)[:])
		if err != nil {
			return nil, err
		}
	}

	return account.RestoreUser(
		id,
		dto.Name,
		email,
		phone,
		account.Role(dto.Role),
		dto.IsVerified,
		dto.Code,
		dto.CodeExpiresAt,
		referredBy,
		dto.CreatedAt,
	)
}
