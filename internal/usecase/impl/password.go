package impl

import (
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"

	"github.com/pkg/errors"
)

// hashPassword returns the digest to store for a plaintext password.
func hashPassword(hasher service.PasswordHasher, password string) (*string, error) {
	digest, err := hasher.Hash(password)
	if errors.Is(err, service.ErrPasswordTooLong) {
		return nil, domainerrors.ErrValidationFailed.
			WithMessage("password is too long").
			WithDetails(err.Error())
	}
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "failed to hash password")
	}

	return &digest, nil
}

// newUserEntity builds an unsaved user with a hashed password.
func newUserEntity(hasher service.PasswordHasher, name, email, address, password string) (*entity.User, error) {
	digest, err := hashPassword(hasher, password)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		Name:         name,
		Email:        email,
		Address:      address,
		PasswordHash: digest,
	}, nil
}

// mapUserNotFound turns the repository sentinel into the 404 AppError.
func mapUserNotFound(err error, message string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, message)
	}

	return errors.Wrap(err, message)
}
