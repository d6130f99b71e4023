package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	deliverycontext "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/context"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/metrics"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/usecase"

	"go.uber.org/fx"
)

// AccessGateParams holds dependencies for the route gate, injected by Fx.
type AccessGateParams struct {
	fx.In

	Auth          usecase.AuthUsecase
	Subscriptions service.SubscriptionAPI
	Config        *config.Config
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
}

// accessGate implements the AccessUsecase interface. It keeps no state between evaluations.
type accessGate struct {
	auth          usecase.AuthUsecase
	subscriptions service.SubscriptionAPI
	lookupTimeout time.Duration
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// NewAccessGate is the constructor for accessGate.
func NewAccessGate(params AccessGateParams) usecase.AccessUsecase {
	var timeout time.Duration
	if params.Config != nil && params.Config.Upstream != nil {
		timeout = params.Config.Upstream.SubscriptionTimeout
	}

	return &accessGate{
		auth:          params.Auth,
		subscriptions: params.Subscriptions,
		lookupTimeout: timeout,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}
}

func (g *accessGate) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Evaluate runs the verification ladder for route against the current session.
func (g *accessGate) Evaluate(ctx context.Context, route string) (entity.Decision, error) {
	start := time.Now()
	route = normalizeRoute(route)

	decision, err := g.decide(ctx, route, g.auth.Snapshot())
	if err != nil {
		return entity.Decision{}, err
	}

	// The verification pages are themselves reachable while the ladder is incomplete.
	if decision.Kind == entity.DecisionRedirect && decision.Redirect == route {
		decision = entity.Allow(route)
	}

	g.metrics.RecordDecision(decision, time.Since(start).Seconds())
	g.log(ctx).Debug("Route evaluated",
		slog.String("route", route),
		slog.String("decision", string(decision.Kind)),
		slog.String("redirect", decision.Redirect))

	return decision, nil
}

// decide applies the ordered rules; the first match wins.
func (g *accessGate) decide(ctx context.Context, route string, snap entity.AuthSnapshot) (entity.Decision, error) {
	if !snap.IsReady() {
		return entity.Loading(route), nil
	}

	user := snap.Session.User
	if !snap.IsLogged() || user == nil {
		return entity.RedirectTo(route, entity.PathLogin), nil
	}

	if entity.HasAdminPrivileges(user.Type) {
		return entity.Allow(route), nil
	}

	if user.Type == entity.RoleProfessional {
		if !user.HasIdentityDocuments() {
			return entity.RedirectTo(route, entity.PathIdentityVerification), nil
		}

		active := g.hasActiveSubscription(ctx, snap)
		if !g.auth.IsCurrent(snap.Generation) {
			return entity.Decision{}, errors.WithStack(domainerrors.ErrEvaluationSuperseded)
		}
		if !active {
			return entity.RedirectTo(route, entity.PathSubscriptionPlans), nil
		}
	}

	if user.PhoneExplicitlyUnverified() {
		return entity.RedirectTo(route, entity.PathPhoneVerification), nil
	}

	return entity.Allow(route), nil
}

// hasActiveSubscription performs exactly one lookup. Anything but a definite
// true within the deadline counts as inactive.
func (g *accessGate) hasActiveSubscription(ctx context.Context, snap entity.AuthSnapshot) bool {
	lookupCtx := ctx
	if g.lookupTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, g.lookupTimeout)
		defer cancel()
	}

	status, err := g.subscriptions.GetMySubscription(lookupCtx, snap.Session.Tokens.AccessToken)
	if err != nil {
		g.metrics.RecordSubscriptionCheckFailure()
		g.log(ctx).Warn("Subscription check failed, treating as inactive",
			slog.String("user_id", snap.Session.User.ID),
			slog.Any("error", domainerrors.ErrSubscriptionCheckFailed.WithDetails(err.Error())))

		return false
	}

	return status != nil && status.HasActiveSubscription
}

// Watch re-evaluates route after every session change until ctx is done.
// Decisions computed against a superseded session are dropped.
func (g *accessGate) Watch(ctx context.Context, route string, fn func(entity.Decision)) {
	changes := make(chan struct{}, 1)
	unsubscribe := g.auth.Subscribe(func(entity.AuthSnapshot) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	for {
		decision, err := g.Evaluate(ctx, route)
		if ctx.Err() != nil {
			return
		}
		switch {
		case err == nil:
			fn(decision)
		case errors.Is(err, domainerrors.ErrEvaluationSuperseded):
			// the transition that superseded it has queued a change
		default:
			g.log(ctx).Error("Route evaluation failed", slog.String("route", route), slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return
		case <-changes:
		}
	}
}

func normalizeRoute(route string) string {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}

	return path.Clean(route)
}
