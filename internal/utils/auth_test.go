package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret-pass", ""))
}

func TestGenerateJWT_ParsesBack(t *testing.T) {
	token, expiresAt, err := GenerateJWT("user-1", "secret", time.Hour, "pma")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(token, "secret", "pma")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "pma", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "other-secret", "pma")
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	_, err = ParseAndValidateJWT(token, "secret", "")
	assert.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other-secret", "")
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestGenerateJWT_Expired(t *testing.T) {
	token, _, err := GenerateJWT("user-1", "secret", -time.Minute, "pma")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "pma")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestGenerateAccessCode_Format(t *testing.T) {
	code, err := GenerateAccessCode()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{16}$`), code)

	other, err := GenerateAccessCode()
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
}
