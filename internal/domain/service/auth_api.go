// Package service defines the contracts of the collaborators the console consumes.
package service

import (
	"context"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
)

// LoginResponse is the raw answer of the marketplace sign-in endpoint.
// Tokens arrive either under "tokens" or under "session"; the latter may use
// camelCase or snake_case field names.
type LoginResponse struct {
	Tokens  *LoginTokens   `json:"tokens,omitempty"`
	Session *LoginSession  `json:"session,omitempty"`
	User    map[string]any `json:"user,omitempty"`
}

// LoginTokens is the "tokens" shape of a login response.
type LoginTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginSession is the "session" shape of a login response.
type LoginSession struct {
	AccessToken       string `json:"accessToken"`
	AccessTokenSnake  string `json:"access_token"`
	RefreshToken      string `json:"refreshToken"`
	RefreshTokenSnake string `json:"refresh_token"`
}

// AuthAPI signs users in against the marketplace.
type AuthAPI interface {
	// Login exchanges credentials for a login response. Transport and validation
	// failures are returned unchanged to the login caller.
	Login(ctx context.Context, credentials entity.Credentials) (*LoginResponse, error)
}
