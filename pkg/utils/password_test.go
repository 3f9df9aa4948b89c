package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret@123", hash)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	assert.NoError(t, err)

	t.Run("Correct password", func(t *testing.T) {
		assert.True(t, CheckPasswordHash("Secret@123", hash))
	})

	t.Run("Wrong password", func(t *testing.T) {
		assert.False(t, CheckPasswordHash("Wrong@12345", hash))
	})

	t.Run("Invalid hash", func(t *testing.T) {
		assert.False(t, CheckPasswordHash("Secret@123", "not-a-bcrypt-hash"))
	})
}
