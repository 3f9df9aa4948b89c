package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(testSecret, userID, "STORE_OWNER", 24)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := ParseToken(testSecret, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "STORE_OWNER", claims.Role)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	userID := uuid.New()

	// Negative expiry yields a token already past its exp claim
	token, _, err := GenerateToken(testSecret, userID, "USER", -1)
	assert.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := GenerateToken(testSecret, uuid.New(), "USER", 1)
	assert.NoError(t, err)

	claims, err := ParseToken("another-secret", token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Run("Not a JWT", func(t *testing.T) {
		claims, err := ParseToken(testSecret, "not.a.token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Empty string", func(t *testing.T) {
		claims, err := ParseToken(testSecret, "")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
