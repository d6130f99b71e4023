package usecase

import (
	"context"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
)

// AccessUsecase decides whether a protected route may render for the current identity.
type AccessUsecase interface {
	// Evaluate runs the gate once against the current session. It returns
	// ErrEvaluationSuperseded when the session changed while a lookup was in flight.
	Evaluate(ctx context.Context, route string) (entity.Decision, error)

	// Watch evaluates route now and after every session change, delivering each
	// fresh decision to fn until ctx is done.
	Watch(ctx context.Context, route string, fn func(entity.Decision))
}
