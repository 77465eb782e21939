package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pass", hash)
	assert.True(t, CheckPasswordHash("secret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))

	_, err = HashPassword("short")
	assert.Error(t, err)
}

func TestCompareDummyHash(t *testing.T) {
	assert.False(t, CompareDummyHash("comandas-timing-equalizer"))
}

func TestGenerateAndParseJWT(t *testing.T) {
	now := time.Now()
	token, claims, err := GenerateJWT("personal-1", testSecret, time.Hour, "comandas-backend", now)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.TokenID)

	parsed, err := ParseAndValidateJWT(token, testSecret, "comandas-backend")
	require.NoError(t, err)
	assert.Equal(t, "personal-1", parsed.Subject)
	assert.Equal(t, claims.TokenID, parsed.TokenID)
	assert.Equal(t, claims.ExpiresAt.Unix(), parsed.ExpiresAt.Unix())

	_, second, err := GenerateJWT("personal-1", testSecret, time.Hour, "comandas-backend", now)
	require.NoError(t, err)
	assert.NotEqual(t, claims.TokenID, second.TokenID)
}

func TestParseAndValidateJWT_Rejections(t *testing.T) {
	now := time.Now()
	valid, _, err := GenerateJWT("personal-1", testSecret, time.Hour, "comandas-backend", now)
	require.NoError(t, err)
	expired, _, err := GenerateJWT("personal-1", testSecret, time.Hour, "comandas-backend", now.Add(-2*time.Hour))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "personal-1"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "personal-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
		issuer string
	}{
		{"wrong secret", valid, "another-secret-another-secret-xx", "comandas-backend"},
		{"expired", expired, testSecret, "comandas-backend"},
		{"wrong issuer", valid, testSecret, "someone-else"},
		{"missing exp", noExp, testSecret, ""},
		{"missing sub", noSub, testSecret, ""},
		{"alg none", unsigned, testSecret, ""},
		{"garbage", "not.a.token", testSecret, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAndValidateJWT(tt.token, tt.secret, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestGenerateJWT_RequiresSecretAndSubject(t *testing.T) {
	_, _, err := GenerateJWT("personal-1", "", time.Hour, "", time.Now())
	assert.Error(t, err)
	_, _, err = GenerateJWT("", testSecret, time.Hour, "", time.Now())
	assert.Error(t, err)
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := GenerateSecureRandomString(32)
	require.NoError(t, err)
	b, err := GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}
