// Package context carries request-scoped values (request id, logger, principal)
// between the HTTP delivery layer and the layers below it.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header used to propagate request ids.
const HeaderXRequestID = echo.HeaderXRequestID

const echoRequestIDKey = "request_id"

type contextKey struct {
	name string
}

var (
	requestIDCtxKey = &contextKey{"request_id"}
	loggerCtxKey    = &contextKey{"logger"}
)

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the request id stored on the echo context, or "".
func GetRequestID(c echo.Context) string {
	requestID, _ := c.Get(echoRequestIDKey).(string)

	return requestID
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, requestID)
}

// RequestIDFrom returns the request id carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDCtxKey).(string)

	return requestID
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger if present, otherwise fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}

	return fallback
}
