package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinHashing(t *testing.T) {
	hash, err := HashPin("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)
	assert.True(t, CheckPinHash("1234", hash))
	assert.False(t, CheckPinHash("4321", hash))
	assert.False(t, CheckPinHash("1234", ""))
}

func TestIsValidPin(t *testing.T) {
	valid := []string{"1234", "12345", "123456", "0000"}
	for _, pin := range valid {
		assert.True(t, IsValidPin(pin), "pin %q should be valid", pin)
	}

	invalid := []string{"", "123", "1234567", "12a4", "12.4", " 1234", "१२३४"}
	for _, pin := range invalid {
		assert.False(t, IsValidPin(pin), "pin %q should be invalid", pin)
	}
}

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("sess-1", "secret", 1)
	require.NoError(t, err)

	sessionID, err := ParseSessionJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sessionID)

	_, err = ParseSessionJWT(token, "other-secret")
	assert.Error(t, err)
}
