package usecase

import (
	"context"

	"userapi/internal/domain/entity"
)

// CreateUserInput defines the data required to create a user through the CRUD routes.
type CreateUserInput struct {
	Name     string
	Email    string
	Address  string
	Password string
}

// UpdateUserInput carries a partial update. Nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Address  *string
	Password *string
}

// UserUsecase defines the CRUD operations over user records.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uint64) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uint64, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint64) (*entity.User, error)
}
