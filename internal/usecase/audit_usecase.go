package usecase

import (
	"context"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"
)

// AuditUsecase keeps the trail of session events delivered by the message queue.
type AuditUsecase interface {
	// Record stores event once. A redelivered event reports false without writing again.
	// Malformed events fail with ErrValidationFailed and must not be retried.
	Record(ctx context.Context, event *service.SessionEvent) (bool, error)
}
