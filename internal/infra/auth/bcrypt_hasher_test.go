package auth

import (
	"strings"
	"testing"

	"userapi/config"
	"userapi/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "secret"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "digest should be self-describing")

	ok, err := hasher.Check(password, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret")
	require.NoError(t, err)
	second, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "correct password", password: password, want: true},
		{name: "wrong password", password: "WrongPassword123!", want: false},
		{name: "empty password", password: "", want: false},
		{name: "case differs", password: strings.ToLower(password), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := hasher.Check(tc.password, hash)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, digest := range []string{"invalid_hash", "", "$2a$99$abcdefghijklmnopqrstuuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0"} {
		ok, err := hasher.Check("secret", digest)
		assert.False(t, ok)
		require.Error(t, err, "digest %q", digest)
		assert.True(t, errors.Is(err, service.ErrMalformedHash))
	}
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
	assert.Equal(t, 10, cost)
}

func TestBcryptHasher_WithConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MaxCost + 1)

	impl, ok := hasher.(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, DefaultCost, impl.cost)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.True(t, errors.Is(err, service.ErrPasswordTooLong))

	// 30 runes but 90 bytes
	_, err = hasher.Hash(strings.Repeat("密", 30))
	assert.True(t, errors.Is(err, service.ErrPasswordTooLong))

	hash, err := hasher.Hash(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}
