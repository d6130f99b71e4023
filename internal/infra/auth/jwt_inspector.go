// Package auth provides token helpers for credentials issued by the marketplace.
package auth

import (
	"time"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads unverified claims. The console never holds the signing
// secret, so the result is informational only and never used for access decisions.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// ExpiresAt returns the "exp" claim of token.
func (i *jwtInspector) ExpiresAt(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
