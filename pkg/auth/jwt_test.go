// pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Minute)
	userID := uuid.New()

	token, err := manager.Generate("acme", userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "acme", claims.TenantID)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Generate("acme", uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	minter := NewTokenManager("secret-a", time.Minute)
	verifier := NewTokenManager("secret-b", time.Minute)

	token, err := minter.Generate("acme", uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Minute)

	_, err := manager.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
