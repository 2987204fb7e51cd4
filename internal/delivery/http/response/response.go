// Package response writes the JSON envelopes returned by every route.
package response

import (
	"github.com/labstack/echo/v4"
)

// Response is the success envelope: {"data": ..., "message": "..."}.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// TokenResponse is the login envelope: {"data": claims, "token": "...", "message": "..."}.
type TokenResponse struct {
	Data    any    `json:"data"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// MessageResponse carries only a message. Errors use it too.
type MessageResponse struct {
	Message string `json:"message"`
}

// Success writes data with a message.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Data:    data,
		Message: message,
	})
}

// Token writes the login payload.
func Token(c echo.Context, statusCode int, data any, token, message string) error {
	return c.JSON(statusCode, TokenResponse{
		Data:    data,
		Token:   token,
		Message: message,
	})
}

// Message writes a body with only a message.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error writes an error body.
func Error(c echo.Context, statusCode int, message string) error {
	return Message(c, statusCode, message)
}
