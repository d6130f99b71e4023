package service

import (
	"context"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
)

// SubscriptionAPI reports the subscription of the signed-in account.
type SubscriptionAPI interface {
	// GetMySubscription returns the subscription status of the account owning accessToken.
	GetMySubscription(ctx context.Context, accessToken string) (*entity.SubscriptionStatus, error)
}
