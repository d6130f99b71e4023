package marketplace

import (
	"context"
	"net/http"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"
)

const mySubscriptionPath = "/subscription/me"

type subscriptionClient struct {
	client *Client
}

// NewSubscriptionClient returns the marketplace subscription API.
func NewSubscriptionClient(client *Client) service.SubscriptionAPI {
	return &subscriptionClient{client: client}
}

type subscriptionResponse struct {
	HasActiveSubscription bool   `json:"hasActiveSubscription"`
	PlanName              string `json:"planName"`
	Plan                  *struct {
		Name string `json:"name"`
	} `json:"plan"`
}

func (s *subscriptionClient) GetMySubscription(ctx context.Context, accessToken string) (*entity.SubscriptionStatus, error) {
	var resp subscriptionResponse
	if err := s.client.do(ctx, http.MethodGet, mySubscriptionPath, accessToken, nil, &resp); err != nil {
		return nil, err
	}

	status := &entity.SubscriptionStatus{
		HasActiveSubscription: resp.HasActiveSubscription,
		PlanName:              resp.PlanName,
	}
	if status.PlanName == "" && resp.Plan != nil {
		status.PlanName = resp.Plan.Name
	}

	return status, nil
}
