package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("SenhaForte123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// hash nunca é a senha em claro
	assert.NotEqual(t, "SenhaForte123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "SenhaForte123"))
	assert.Error(t, CheckPasswordHash(hash, "senhaforte123"))
	assert.Error(t, CheckPasswordHash(hash, ""))
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	h1, err := HashPassword("mesma-senha")
	require.NoError(t, err)
	h2, err := HashPassword("mesma-senha")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
