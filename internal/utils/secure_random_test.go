package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(32)
	require.NoError(t, err)
	b, err := GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 43)
	assert.False(t, strings.ContainsAny(a, ".|+/="))

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}

func TestSecretHash(t *testing.T) {
	hash, err := HashSecret("s3cret")
	require.NoError(t, err)

	assert.True(t, CheckSecretHash("s3cret", hash))
	assert.False(t, CheckSecretHash("other", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "tenant-1", "secret", time.Minute, "governance")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "governance")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "tenant-1", claims.TenantID)

	_, err = ParseAndValidateJWT(token, "wrong", "governance")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.Error(t, err)

	expired, err := GenerateJWT("user-1", "tenant-1", "secret", -time.Minute, "governance")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret", "")
	assert.Error(t, err)
}
