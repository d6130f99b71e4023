package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	deliverycontext "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/context"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/usecase"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// MaxEvaluationAttempts bounds re-evaluation when the session changes mid-evaluation.
const MaxEvaluationAttempts = 3

// AppPathPrefix is the mount point of the gated console pages. Routes are
// evaluated without it and redirect targets are served under it.
const AppPathPrefix = "/app"

// loadingRetryAfter is sent while authentication is still initializing.
const loadingRetryAfter = 1

// GateMiddleware mounts the route access gate in front of protected routes.
type GateMiddleware struct {
	access usecase.AccessUsecase
}

func NewGateMiddleware(access usecase.AccessUsecase) *GateMiddleware {
	return &GateMiddleware{access: access}
}

// Protect evaluates the request path relative to AppPathPrefix. ALLOW continues
// the chain, REDIRECT answers 303 with the prefixed target, LOADING answers 503
// with Retry-After.
func (m *GateMiddleware) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		decision, err := EvaluateCurrent(c.Request().Context(), m.access, appRoute(c.Request().URL.Path))
		if err != nil {
			return err
		}
		slogecho.AddCustomAttributes(c, slog.String("gate_decision", string(decision.Kind)))

		switch decision.Kind {
		case entity.DecisionAllow:
			deliverycontext.SetDecision(c, decision)

			return next(c)
		case entity.DecisionRedirect:
			return c.Redirect(http.StatusSeeOther, AppPathPrefix+decision.Redirect)
		default:
			c.Response().Header().Set("Retry-After", strconv.Itoa(loadingRetryAfter))

			return c.JSON(http.StatusServiceUnavailable, decision)
		}
	}
}

func appRoute(requestPath string) string {
	route := strings.TrimPrefix(requestPath, AppPathPrefix)
	if route == "" {
		return "/"
	}

	return route
}

// EvaluateCurrent evaluates route, re-running the evaluation when it was computed
// against a session that has since been replaced.
func EvaluateCurrent(ctx context.Context, access usecase.AccessUsecase, route string) (entity.Decision, error) {
	var err error
	for range MaxEvaluationAttempts {
		var decision entity.Decision
		decision, err = access.Evaluate(ctx, route)
		if err == nil {
			return decision, nil
		}
		if !errors.Is(err, domainerrors.ErrEvaluationSuperseded) {
			return entity.Decision{}, err
		}
	}

	return entity.Decision{}, err
}
