package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("secret1", 0)

	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CheckPassword("secret1", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("secret1", 0)
	require.NoError(t, err)

	second, err := HashPassword("secret1", 0)
	require.NoError(t, err)

	// fresh salt per call: different hashes, both verify
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret1", first))
	assert.True(t, CheckPassword("secret1", second))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("secret1", 0)
	require.NoError(t, err)

	assert.False(t, CheckPassword("secret2", hash))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-hash"))
}

func TestHashPassword_CustomCost(t *testing.T) {
	hash, err := HashPassword("secret1", 6)

	require.NoError(t, err)
	assert.True(t, CheckPassword("secret1", hash))
}

func TestHashPassword_TooLongPassword(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}

	_, err := HashPassword(string(long), 0)

	require.Error(t, err)
}
