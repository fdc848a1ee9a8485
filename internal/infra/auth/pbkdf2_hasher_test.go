package auth

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBKDF2Hasher_Hash(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	hash, salt, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEmpty(t, salt)

	// Salt is 16 random bytes stored as hex text.
	rawSalt, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, rawSalt, 16)

	// Hash is a 64-byte PBKDF2 key stored as base64 text.
	rawHash, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, rawHash, 64)
}

func TestPBKDF2Hasher_RoundTrip(t *testing.T) {
	hasher := NewPBKDF2Hasher()
	password := "correct horse battery staple"

	hash, salt, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, salt, hash))
	assert.False(t, hasher.Check("wrong password", salt, hash))
	assert.False(t, hasher.Check("", salt, hash))
}

func TestPBKDF2Hasher_HashWithSaltIsDeterministic(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	first := hasher.HashWithSalt("secret", "00112233445566778899aabbccddeeff")
	second := hasher.HashWithSalt("secret", "00112233445566778899aabbccddeeff")

	assert.Equal(t, first, second)
}

func TestPBKDF2Hasher_DistinctSaltsDiverge(t *testing.T) {
	hasher := NewPBKDF2Hasher()
	password := "same password twice"

	firstHash, firstSalt, err := hasher.Hash(password)
	require.NoError(t, err)
	secondHash, secondSalt, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.NotEqual(t, firstSalt, secondSalt)
	assert.NotEqual(t, firstHash, secondHash)

	// Each hash still verifies against its own salt.
	assert.True(t, hasher.Check(password, firstSalt, firstHash))
	assert.True(t, hasher.Check(password, secondSalt, secondHash))
}
