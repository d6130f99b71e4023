package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("marketplace-secret"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_ExpiresAt(t *testing.T) {
	inspector := NewJWTInspector()
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)

	got, ok := inspector.ExpiresAt(signedToken(t, jwt.MapClaims{"sub": "u-1", "exp": exp.Unix()}))

	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestJWTInspector_ExpiredTokenStillReported(t *testing.T) {
	inspector := NewJWTInspector()
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)

	got, ok := inspector.ExpiresAt(signedToken(t, jwt.MapClaims{"exp": exp.Unix()}))

	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestJWTInspector_NoExpiry(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "opaque", token: "not-a-jwt"},
		{name: "no exp claim", token: signedToken(t, jwt.MapClaims{"sub": "u-1"})},
	}

	inspector := NewJWTInspector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := inspector.ExpiresAt(tt.token)
			assert.False(t, ok)
		})
	}
}
