package marketplace

import (
	"context"
	"net/http"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"

	"github.com/pkg/errors"
)

const signInPath = "/auth/signin"

type authClient struct {
	client *Client
}

// NewAuthClient returns the marketplace sign-in API.
func NewAuthClient(client *Client) service.AuthAPI {
	return &authClient{client: client}
}

type signInRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login posts the credentials. The response is returned as received; the caller
// normalizes its token shape.
func (a *authClient) Login(ctx context.Context, credentials entity.Credentials) (*service.LoginResponse, error) {
	var resp service.LoginResponse
	req := signInRequest{Login: credentials.Login, Password: credentials.Password}
	if err := a.client.do(ctx, http.MethodPost, signInPath, "", req, &resp); err != nil {
		var de *decodeError
		if errors.As(err, &de) {
			return nil, domainerrors.ErrInvalidLoginResponse.WithDetails(de.Error())
		}

		return nil, err
	}

	return &resp, nil
}
