// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userapi/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserUpdate carries the fields of a partial update. Nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Email        *string
	Address      *string
	PasswordHash *string
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Address == nil && u.PasswordHash == nil
}

// UserRepository defines the persistence operations over user records.
type UserRepository interface {
	// Create persists a new user and fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by primary key.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByEmail retrieves a single user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll returns every user ordered by ID.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update applies a partial update and returns the stored record.
	Update(ctx context.Context, id uint64, update UserUpdate) (*entity.User, error)

	// Delete removes the user and returns the record as it was before deletion.
	Delete(ctx context.Context, id uint64) (*entity.User, error)
}
