package handler

import (
	"net/http"
	"testing"

	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	mockUsecase "userapi/internal/mocks/usecase"
	"userapi/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, rec := newTestContext(http.MethodPost, "/register", `{"name":"A","email":"a@x.com","address":"Y","password":"secret"}`)

	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Name: "A", Email: "a@x.com", Address: "Y", Password: "secret"}).
		Return(&entity.User{ID: 1, Name: "A", Email: "a@x.com", Address: "Y", PasswordHash: strPtr("$2a$10$digest")}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "success register", body["message"])
	assert.Equal(t, map[string]any{"id": float64(1), "name": "A", "email": "a@x.com", "address": "Y"}, body["data"])
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "empty body", body: "", wantMsg: "name is required"},
		{name: "bad email", body: `{"name":"A","email":"nope","address":"Y","password":"secret"}`, wantMsg: "email must be a valid email address"},
		{name: "missing password", body: `{"name":"A","email":"a@x.com","address":"Y"}`, wantMsg: "password is required"},
		{name: "malformed json", body: `{"name":`, wantMsg: "invalid request body"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := mockUsecase.NewMockAuthUsecase(t)
			h := NewAuthHandler(uc)
			c, _ := newTestContext(http.MethodPost, "/register", tc.body)

			err := h.Register(c)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
			assert.Equal(t, tc.wantMsg, appErr.Message())
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, rec := newTestContext(http.MethodPost, "/login", `{"email":"a@x.com","password":"secret"}`)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "secret"}).
		Return(&usecase.LoginOutput{
			Token:     "signed.token.value",
			Principal: entity.Principal{ID: 1, Name: "A", Email: "a@x.com", Address: "Y"},
		}, nil)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "welcome back A", body["message"])
	assert.Equal(t, "signed.token.value", body["token"])
	assert.Equal(t, map[string]any{"id": float64(1), "name": "A", "email": "a@x.com", "address": "Y"}, body["data"])
}

func TestAuthHandler_Login_PropagatesUsecaseError(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, _ := newTestContext(http.MethodPost, "/login", `{"email":"a@x.com","password":"wrong"}`)

	uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.Wrap(domainerrors.ErrPasswordNotValid, "login failed"))

	err := h.Login(c)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordNotValid))
}
