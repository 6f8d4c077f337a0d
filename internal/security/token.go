package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiry = errors.New("token has no expiry")

// TokenExpiry reads the exp claim of a backend-issued JWT. The signature is
// not verified: the backend owns the key, the front server only needs to
// know when the token stops being useful.
func TokenExpiry(tokenStr string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, &claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// TokenExpired reports whether tokenStr expired at or before now. Tokens
// that cannot be parsed or carry no expiry are treated as live.
func TokenExpired(tokenStr string, now time.Time) bool {
	exp, err := TokenExpiry(tokenStr)
	if err != nil {
		return false
	}
	return !now.Before(exp)
}
