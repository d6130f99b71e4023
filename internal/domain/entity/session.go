package entity

// Identity is the normalized marketplace account that owns a console session.
type Identity struct {
	ID              string `json:"id" validate:"required"`
	Type            Role   `json:"type"`
	AccountType     Role   `json:"accountType,omitempty"`
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	IsPhoneVerified *bool  `json:"isPhoneVerified,omitempty"`
	IsHasIdentity   *bool  `json:"isHasIdentity,omitempty"`
}

// Sanitized returns a copy whose roles went through ParseRole.
func (i *Identity) Sanitized() *Identity {
	c := i.Clone()
	if c != nil {
		c.Type = ParseRole(string(c.Type))
		c.AccountType = ParseRole(string(c.AccountType))
	}

	return c
}

// HasIdentityDocuments reports whether identity documents were verified.
// An absent flag counts as not verified.
func (i *Identity) HasIdentityDocuments() bool {
	return i.IsHasIdentity != nil && *i.IsHasIdentity
}

// PhoneExplicitlyUnverified reports whether the phone flag is present and false.
// An absent flag is not treated as unverified.
func (i *Identity) PhoneExplicitlyUnverified() bool {
	return i.IsPhoneVerified != nil && !*i.IsPhoneVerified
}

// Clone returns a deep copy of the identity.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	c.IsPhoneVerified = cloneBool(i.IsPhoneVerified)
	c.IsHasIdentity = cloneBool(i.IsHasIdentity)

	return &c
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b

	return &v
}

// TokenPair holds the credentials issued by the marketplace API.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// IsComplete reports whether both tokens are present. A nil pair is incomplete.
func (t *TokenPair) IsComplete() bool {
	return t != nil && t.AccessToken != "" && t.RefreshToken != ""
}

// Session is the authenticated identity and its token pair, stored as one unit.
// A session is either empty or complete; never partial.
type Session struct {
	User   *Identity  `json:"user,omitempty"`
	Tokens *TokenPair `json:"tokens,omitempty"`
}

// IsEmpty reports whether the session carries neither user nor tokens.
func (s Session) IsEmpty() bool {
	return s.User == nil && s.Tokens == nil
}

// IsComplete reports whether the session carries a user and a complete token pair.
func (s Session) IsComplete() bool {
	return s.User != nil && s.Tokens.IsComplete()
}

// Clone returns a deep copy so that callers never share state with the store.
func (s Session) Clone() Session {
	var tokens *TokenPair
	if s.Tokens != nil {
		t := *s.Tokens
		tokens = &t
	}

	return Session{User: s.User.Clone(), Tokens: tokens}
}

// Sanitized returns a deep copy with the identity roles sanitized.
func (s Session) Sanitized() Session {
	c := s.Clone()
	c.User = s.User.Sanitized()

	return c
}

// SessionSnapshot is a point-in-time copy of the store together with its generation.
// The generation increases on every replacement or clear of the session.
type SessionSnapshot struct {
	Session    Session
	Generation uint64
}

// AuthState is the state of the authentication lifecycle.
type AuthState string

const (
	AuthStateUninitialized      AuthState = "UNINITIALIZED"
	AuthStateInitializing       AuthState = "INITIALIZING"
	AuthStateReadyAnonymous     AuthState = "READY_ANONYMOUS"
	AuthStateReadyAuthenticated AuthState = "READY_AUTHENTICATED"
)

// AuthSnapshot is the state of the lifecycle controller observed at one instant.
type AuthSnapshot struct {
	State      AuthState
	Portal     Portal
	Session    Session
	Generation uint64
}

// IsReady reports whether initialization has completed.
func (s AuthSnapshot) IsReady() bool {
	return s.State == AuthStateReadyAnonymous || s.State == AuthStateReadyAuthenticated
}

// IsLogged reports whether a session is surfaced as authenticated.
func (s AuthSnapshot) IsLogged() bool {
	return s.State == AuthStateReadyAuthenticated
}
