package impl

import (
	"context"
	"log/slog"

	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"
	"userapi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every stored user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns a single user.
func (srv *userService) GetUser(ctx context.Context, id uint64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserNotFound(err, "failed to get user")
	}

	return user, nil
}

// CreateUser stores a new user. The password is hashed like on registration.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	user, err := newUserEntity(srv.hasher, input.Name, input.Email, input.Address, input.Password)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Uint64("userID", user.ID))

	return user, nil
}

// UpdateUser applies the supplied fields and returns the stored record.
// A supplied password is hashed before it reaches the store.
func (srv *userService) UpdateUser(ctx context.Context, id uint64, input *usecase.UpdateUserInput) (*entity.User, error) {
	update := repository.UserUpdate{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
	}
	if input.Password != nil {
		digest, err := hashPassword(srv.hasher, *input.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = digest
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var updateErr error
		updated, updateErr = repoFactory.NewUserRepository().Update(ctx, id, update)

		return updateErr
	})
	if err != nil {
		return nil, mapUserNotFound(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Uint64("userID", id))

	return updated, nil
}

// DeleteUser removes the user and returns the deleted record.
func (srv *userService) DeleteUser(ctx context.Context, id uint64) (*entity.User, error) {
	var deleted *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var deleteErr error
		deleted, deleteErr = repoFactory.NewUserRepository().Delete(ctx, id)

		return deleteErr
	})
	if err != nil {
		return nil, mapUserNotFound(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Uint64("userID", id))

	return deleted, nil
}
