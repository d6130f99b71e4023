// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
)

// SessionStore is the single source of truth for the session of this portal.
type SessionStore interface {
	// Hydrate loads the persisted session once; later calls return the in-memory state.
	// Unreadable data yields an empty session and is purged.
	Hydrate(ctx context.Context) entity.Session

	// Set replaces the session wholesale. An empty session clears the store.
	Set(ctx context.Context, session entity.Session) error

	// Clear removes the session from memory and storage. It always succeeds.
	Clear(ctx context.Context)

	// Current returns the in-memory session without touching storage.
	Current() entity.SessionSnapshot
}

// AuthUsecase is the authentication surface consulted by routing and layout code.
type AuthUsecase interface {
	// Initialize hydrates the session and resolves the lifecycle to a ready state.
	// Calls after the first are no-ops; concurrent calls share one hydration.
	Initialize(ctx context.Context) error

	// Login signs in against the marketplace and stores the resulting session.
	Login(ctx context.Context, credentials entity.Credentials) (entity.Session, error)

	// Logout clears the session.
	Logout(ctx context.Context)

	// Set stores a session obtained elsewhere, subject to the portal check.
	Set(ctx context.Context, session entity.Session) error

	// Clear drops the session.
	Clear(ctx context.Context)

	// Snapshot returns the current lifecycle state and session.
	Snapshot() entity.AuthSnapshot

	// IsCurrent reports whether generation is still the generation of the stored session.
	IsCurrent(generation uint64) bool

	// Subscribe registers fn to be called after every lifecycle transition.
	Subscribe(fn func(entity.AuthSnapshot)) (unsubscribe func())

	IsReady() bool
	IsLogged() bool
	Portal() entity.PortalContext
}
