package security_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yogastudio/web/internal/security"
)

func sign(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	token := sign(t, jwt.RegisteredClaims{
		Subject:   "yoga@studio.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	got, err := security.TokenExpiry(token)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiryMissingClaim(t *testing.T) {
	token := sign(t, jwt.RegisteredClaims{Subject: "yoga@studio.com"})

	_, err := security.TokenExpiry(token)
	assert.ErrorIs(t, err, security.ErrNoExpiry)
}

func TestTokenExpired(t *testing.T) {
	exp := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	token := sign(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	assert.False(t, security.TokenExpired(token, exp.Add(-time.Second)))
	assert.True(t, security.TokenExpired(token, exp))
	assert.False(t, security.TokenExpired("not-a-jwt", exp))
	assert.False(t, security.TokenExpired("", exp))
}
