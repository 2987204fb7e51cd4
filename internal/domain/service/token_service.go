package service

import (
	"errors"

	"userapi/internal/domain/entity"
)

// ErrInvalidToken covers bad signatures, malformed tokens, expired tokens
// and payloads that are not a claims object.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies bearer tokens carrying a Principal.
type TokenService interface {
	// Issue signs a token for the principal with a fixed validity window.
	Issue(principal entity.Principal) (string, error)

	// Verify checks signature and expiry and returns the embedded principal.
	Verify(token string) (*entity.Principal, error)
}
