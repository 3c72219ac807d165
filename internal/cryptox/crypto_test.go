package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Passw0rd!", bcrypt.MinCost)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2a$"), "bcrypt hash prefix, got %q", hash)

	ok, err := VerifyPassword(hash, "Passw0rd!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "passw0rd!")
	require.NoError(t, err)
	assert.False(t, ok, "case-different password must not verify")
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("Passw0rd!", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("Passw0rd!", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "each hash must carry a fresh salt")
}

func TestHashPassword_CostOutOfRange(t *testing.T) {
	_, err := HashPassword("Passw0rd!", bcrypt.MaxCost+1)
	require.Error(t, err)

	_, err = HashPassword("Passw0rd!", 0)
	require.Error(t, err)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("not-a-bcrypt-hash", "whatever")
	require.Error(t, err)
}

func TestGenerateRandByteArray(t *testing.T) {
	size := 32
	data1 := GenerateRandByteArray(size)
	data2 := GenerateRandByteArray(size)
	assert.NotEqual(t, data1, data2)
	assert.Len(t, data1, size)
	assert.Len(t, data2, size)
}

func TestMakeRandHexString(t *testing.T) {
	s := MakeRandHexString(16)
	assert.Len(t, s, 32)
	assert.NotEqual(t, s, MakeRandHexString(16))
}
