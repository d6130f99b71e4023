package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http/response"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	Inspector service.TokenInspector
	Logger    *slog.Logger
}

// AuthHandler exposes the authentication lifecycle over HTTP.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	inspector service.TokenInspector
	logger    *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		inspector: params.Inspector,
		logger:    params.Logger,
	}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SetSessionRequest is the body of PUT /auth/session.
type SetSessionRequest struct {
	User   *entity.Identity  `json:"user"`
	Tokens *entity.TokenPair `json:"tokens"`
}

// SessionView is what the console front-end reads to render its layout.
type SessionView struct {
	IsReady              bool             `json:"isReady"`
	IsLogged             bool             `json:"isLogged"`
	State                entity.AuthState `json:"state"`
	Portal               entity.Portal    `json:"portal"`
	Auth                 *entity.Session  `json:"auth,omitempty"`
	AccessTokenExpiresAt *time.Time       `json:"accessTokenExpiresAt,omitempty"`
}

func (h *AuthHandler) view(snap entity.AuthSnapshot) SessionView {
	v := SessionView{
		IsReady:  snap.IsReady(),
		IsLogged: snap.IsLogged(),
		State:    snap.State,
		Portal:   snap.Portal,
	}
	if !snap.IsLogged() {
		return v
	}

	session := snap.Session
	v.Auth = &session
	if exp, ok := h.inspector.ExpiresAt(session.Tokens.AccessToken); ok {
		v.AccessTokenExpiresAt = &exp
	}

	return v
}

// GetSession returns the current lifecycle state.
func (h *AuthHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.view(h.authUC.Snapshot()), "")
}

// Initialize hydrates the session. Repeated calls return the settled state.
func (h *AuthHandler) Initialize(c echo.Context) error {
	if err := h.authUC.Initialize(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.view(h.authUC.Snapshot()), "Authentication initialized")
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	_, err := h.authUC.Login(c.Request().Context(), entity.Credentials{Login: req.Login, Password: req.Password})
	if err != nil {
		return response.HandleAppError(c, errors.WithStack(err))
	}

	return response.Success(c, http.StatusOK, h.view(h.authUC.Snapshot()), "Login successful")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.authUC.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, h.view(h.authUC.Snapshot()), "Logout successful")
}

// SetSession stores a session obtained outside the login flow.
func (h *AuthHandler) SetSession(c echo.Context) error {
	var req SetSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid session input")
	}

	if err := h.authUC.Set(c.Request().Context(), entity.Session{User: req.User, Tokens: req.Tokens}); err != nil {
		return response.HandleAppError(c, errors.WithStack(err))
	}

	return response.Success(c, http.StatusOK, h.view(h.authUC.Snapshot()), "Session stored")
}

func (h *AuthHandler) ClearSession(c echo.Context) error {
	h.authUC.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, h.view(h.authUC.Snapshot()), "Session cleared")
}
