// Package credential owns the bearer credential of the Meet-A-Vet client:
// a single-slot persistent store plus local validation of the token's
// embedded expiry, so invalid credentials are caught before any request
// leaves the client.
package credential

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/meetavet/meetavet/internal/common"
)

// Validate inspects a raw token locally, without verifying its signature
// (the server owns the key; the client only checks shape and expiry).
//
// Returns common.ErrInvalidToken when the token is not a well-formed JWT
// (wrong segment count, bad base64url, payload not JSON), and
// common.ErrTokenExpired when the exp claim, scaled to milliseconds, is
// strictly before now. A token without an exp claim passes.
func Validate(token string, now time.Time) error {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return common.ErrInvalidToken
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.UnixMilli() < now.UnixMilli() {
		return common.ErrTokenExpired
	}
	return nil
}

// Claims returns the token's payload claims without signature verification.
// Used for display-only data such as the session role.
func Claims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}
