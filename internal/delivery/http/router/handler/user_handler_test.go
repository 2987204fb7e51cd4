package handler

import (
	"net/http"
	"testing"

	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	mockUsecase "userapi/internal/mocks/usecase"
	"userapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleUser() *entity.User {
	return &entity.User{ID: 1, Name: "A", Email: "a@x.com", Address: "Y", PasswordHash: strPtr("$2a$10$digest")}
}

func TestUserHandler_ListUsers(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)
	c, rec := newTestContext(http.MethodGet, "/users", "")

	uc.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{sampleUser()}, nil)

	require.NoError(t, h.ListUsers(c))
	body := decodeBody(t, rec)
	assert.Equal(t, "success get all users", body["message"])
	assert.Equal(t, []any{map[string]any{"name": "A", "email": "a@x.com", "address": "Y"}}, body["data"])
}

func TestUserHandler_ListUsers_Empty(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)
	c, rec := newTestContext(http.MethodGet, "/users", "")

	uc.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{}, nil)

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, []any{}, decodeBody(t, rec)["data"])
}

func TestUserHandler_GetUser(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)
	c, rec := newTestContext(http.MethodGet, "/users/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	uc.EXPECT().GetUser(mock.Anything, uint64(1)).Return(sampleUser(), nil)

	require.NoError(t, h.GetUser(c))
	body := decodeBody(t, rec)
	assert.Equal(t, "success get user by id", body["message"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	handlers := map[string]echo.HandlerFunc{
		"get":    h.GetUser,
		"update": h.UpdateUser,
		"delete": h.DeleteUser,
	}

	for name, fn := range handlers {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodGet, "/users/abc", `{"name":"C"}`)
			c.SetParamNames("id")
			c.SetParamValues("abc")

			err := fn(c)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidUserID))
		})
	}
}

func TestUserHandler_CreateUser(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)
	c, rec := newTestContext(http.MethodPost, "/users", `{"name":"B","email":"b@x.com","address":"Z","password":"secret"}`)

	uc.EXPECT().
		CreateUser(mock.Anything, &usecase.CreateUserInput{Name: "B", Email: "b@x.com", Address: "Z", Password: "secret"}).
		Return(&entity.User{ID: 2, Name: "B", Email: "b@x.com", Address: "Z", PasswordHash: strPtr("$2a$10$digest")}, nil)

	require.NoError(t, h.CreateUser(c))
	body := decodeBody(t, rec)
	assert.Equal(t, "success create user", body["message"])
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestUserHandler_UpdateUser_Partial(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)
	c, rec := newTestContext(http.MethodPatch, "/users/1", `{"name":"C"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	updated := sampleUser()
	updated.Name = "C"
	uc.EXPECT().
		UpdateUser(mock.Anything, uint64(1), &usecase.UpdateUserInput{Name: strPtr("C")}).
		Return(updated, nil)

	require.NoError(t, h.UpdateUser(c))
	body := decodeBody(t, rec)
	assert.Equal(t, "success update user", body["message"])
	assert.Equal(t, "C", body["data"].(map[string]any)["name"])
}

func TestUserHandler_UpdateUser_RejectsEmptyName(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)
	c, _ := newTestContext(http.MethodPatch, "/users/1", `{"name":""}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.UpdateUser(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserHandler_DeleteUser(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)
	c, rec := newTestContext(http.MethodDelete, "/users/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	uc.EXPECT().DeleteUser(mock.Anything, uint64(1)).Return(sampleUser(), nil)

	require.NoError(t, h.DeleteUser(c))
	assert.Equal(t, map[string]any{"message": "success delete A user"}, decodeBody(t, rec))
}

func TestUserHandler_DeleteUser_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)
	c, _ := newTestContext(http.MethodDelete, "/users/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	uc.EXPECT().DeleteUser(mock.Anything, uint64(9)).Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to delete user"))

	err := h.DeleteUser(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
