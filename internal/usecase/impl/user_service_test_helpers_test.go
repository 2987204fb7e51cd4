package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"userapi/internal/domain/entity"
	"userapi/internal/domain/repository"
	mockRepo "userapi/internal/mocks/repository"
	mockSvc "userapi/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

func storedUser() *entity.User {
	return &entity.User{
		ID:           1,
		Name:         "A",
		Email:        "a@x.com",
		Address:      "Y",
		PasswordHash: strPtr("$2a$10$stored"),
	}
}

// expectTx makes txManager run the callback against txRepo and return its error.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, txRepo repository.UserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewUserRepository().Return(txRepo)

			return fn(factory)
		})
}

type authServiceFixture struct {
	service      *authService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) *authServiceFixture {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	}).(*authService)

	return &authServiceFixture{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

type userServiceFixture struct {
	service   *userService
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) *userServiceFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	}).(*userService)

	return &userServiceFixture{
		service:   svc,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}
