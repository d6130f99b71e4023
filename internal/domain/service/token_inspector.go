package service

import "time"

// TokenInspector reads claims from tokens the console holds but cannot verify.
type TokenInspector interface {
	// ExpiresAt returns the expiry of token, and false when the token carries none
	// or cannot be parsed.
	ExpiresAt(token string) (time.Time, bool)
}
