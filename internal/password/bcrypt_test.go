package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("Secret1!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret1!", hash)

	assert.True(t, h.Verify("Secret1!", hash))
	assert.False(t, h.Verify("wrong", hash))
}

func TestBcrypt_HashesAreSalted(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	first, err := h.Hash("Secret1!")
	require.NoError(t, err)
	second, err := h.Hash("Secret1!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("Secret1!", first))
	assert.True(t, h.Verify("Secret1!", second))
}

func TestNewBcrypt_CostOutOfRange(t *testing.T) {
	h := NewBcrypt(1000)

	hash, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
