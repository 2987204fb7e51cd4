package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/delivery/http/response"
	domainerrors "userapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every error body
// is {"message": "..."}; server-side failures never leak their cause.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := m.resolve(err)
	if status >= http.StatusInternalServerError {
		m.logFailure(c, err)
		message = domainerrors.ErrInternalError.Message()
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = response.Error(c, status, message)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) resolve(err error) (int, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode(), appErr.Message()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return httpErr.Code, message
	}

	return http.StatusInternalServerError, domainerrors.ErrInternalError.Message()
}

func (m *ErrorMiddleware) logFailure(c echo.Context, err error) {
	req := c.Request()
	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Any("error", err),
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		attrs = append(attrs,
			slog.String("code", appErr.ErrorCode()),
			slog.String("details", appErr.Details()),
		)
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), slog.LevelError, "Unhandled error", attrs...)
}
