package impl

import (
	"context"
	"testing"

	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"
	"userapi/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("$2a$10$digest", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "A",
		Email:    "a@x.com",
		Address:  "Y",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), user.ID)
	assert.Equal(t, "A", user.Name)
	require.NotNil(t, user.PasswordHash)
	assert.Equal(t, "$2a$10$digest", *user.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("$2a$10$digest", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("failed to create user"))

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "A", Email: "a@x.com", Address: "Y", Password: "secret"})
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("secret").Return("", errors.New("bcrypt failed"))

	user, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Name: "A", Email: "a@x.com", Password: "secret"})
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("too-long").Return("", errors.WithStack(service.ErrPasswordTooLong))

	user, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Name: "A", Email: "a@x.com", Password: "too-long"})
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.False(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := storedUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "$2a$10$stored").Return(true, nil)
	fx.tokenService.EXPECT().Issue(user.Principal()).Return("signed.token.value", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", out.Token)
	assert.Equal(t, entity.Principal{ID: 1, Name: "A", Email: "a@x.com", Address: "Y"}, out.Principal)
}

func TestAuthService_Login_UnknownEmailStopsImmediately(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@x.com", Password: "secret"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Login_PasswordNotSet(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	for _, digest := range []*string{nil, strPtr("")} {
		user := storedUser()
		user.PasswordHash = digest

		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(user, nil).Once()

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordNotSet))
	}

	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(storedUser(), nil)
	fx.hasher.EXPECT().Check("wrong", "$2a$10$stored").Return(false, nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordNotValid))

	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Login_MalformedHash(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(storedUser(), nil)
	fx.hasher.EXPECT().Check("secret", "$2a$10$stored").Return(false, service.ErrMalformedHash)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	assert.False(t, errors.Is(err, domainerrors.ErrPasswordNotValid))
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find user by email")

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, dbErr)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(storedUser(), nil)
	fx.hasher.EXPECT().Check("secret", "$2a$10$stored").Return(true, nil)
	fx.tokenService.EXPECT().Issue(mock.Anything).Return("", errors.New("sign failed"))

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}
