// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"
	"userapi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and stores the new user. Duplicate emails are
// rejected by the store's unique index.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	user, err := newUserEntity(srv.hasher, input.Name, input.Email, input.Address, input.Password)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Uint64("userID", user.ID))

	return user, nil
}

// Login checks credentials in order and stops at the first failure:
// unknown email, no stored password, password mismatch.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, mapUserNotFound(err, "login failed")
	}

	if !user.HasPassword() {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrPasswordNotSet))

		return nil, errors.Wrap(domainerrors.ErrPasswordNotSet, "login failed")
	}

	ok, err := srv.hasher.Check(input.Password, *user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored password hash is unusable", slog.Uint64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "login failed")
	}
	if !ok {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrPasswordNotValid))

		return nil, errors.Wrap(domainerrors.ErrPasswordNotValid, "login failed")
	}

	principal := user.Principal()
	token, err := srv.tokenService.Issue(principal)
	if err != nil {
		srv.log(ctx).Error("Token issue failed", slog.Uint64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed.WithDetails(err.Error()), "login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Uint64("userID", user.ID))

	return &usecase.LoginOutput{
		Token:     token,
		Principal: principal,
	}, nil
}
