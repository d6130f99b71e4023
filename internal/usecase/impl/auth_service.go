package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/context"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/metrics"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const initializeKey = "initialize"

// AuthServiceParams holds dependencies for the auth lifecycle, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Store     usecase.SessionStore
	AuthAPI   service.AuthAPI
	Portal    entity.PortalContext
	Publisher service.SessionEventPublisher
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// authService implements the AuthUsecase interface.
type authService struct {
	store     usecase.SessionStore
	authAPI   service.AuthAPI
	portal    entity.PortalContext
	publisher service.SessionEventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	validate  *validator.Validate

	initGroup singleflight.Group

	// transition serializes every change of state and session; it may be held across storage I/O.
	transition sync.Mutex

	// mu guards state and snapshot, which are only ever replaced together.
	mu       sync.RWMutex
	state    entity.AuthState
	snapshot entity.AuthSnapshot

	listenersMu  sync.Mutex
	listeners    map[uint64]func(entity.AuthSnapshot)
	nextListener uint64
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		store:     params.Store,
		authAPI:   params.AuthAPI,
		portal:    params.Portal,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		state:     entity.AuthStateUninitialized,
		listeners: make(map[uint64]func(entity.AuthSnapshot)),
	}
	srv.snapshot = entity.AuthSnapshot{State: srv.state, Portal: srv.portal.Portal}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initialize hydrates the session once and applies the portal check to it.
func (srv *authService) Initialize(ctx context.Context) error {
	_, err, _ := srv.initGroup.Do(initializeKey, func() (any, error) {
		snap, ran := srv.hydrate(ctx)
		if ran {
			srv.log(ctx).Info("Authentication initialized",
				slog.String("portal", srv.portal.Portal.String()),
				slog.String("state", string(snap.State)))
			srv.afterTransition(ctx, snap, service.SessionEventInitialized, snap.Session.User)
		}

		return nil, nil
	})

	return errors.WithStack(err)
}

// hydrate performs the UNINITIALIZED -> READY_* transition. It reports false when
// the controller had already left UNINITIALIZED.
func (srv *authService) hydrate(ctx context.Context) (entity.AuthSnapshot, bool) {
	srv.transition.Lock()
	defer srv.transition.Unlock()

	if srv.currentState() != entity.AuthStateUninitialized {
		return entity.AuthSnapshot{}, false
	}
	srv.setState(entity.AuthStateInitializing)

	session := srv.store.Hydrate(ctx)
	next := entity.AuthStateReadyAnonymous
	if !session.IsEmpty() {
		if srv.portal.Admits(session.User) {
			next = entity.AuthStateReadyAuthenticated
		} else {
			srv.log(ctx).Warn("Discarding persisted session not admitted on this portal",
				slog.String("portal", srv.portal.Portal.String()),
				slog.String("user_id", session.User.ID),
				slog.String("type", session.User.Type.String()))
			srv.store.Clear(ctx)
		}
	}

	return srv.setState(next), true
}

// Login signs in against the marketplace. Upstream errors are returned unchanged.
func (srv *authService) Login(ctx context.Context, credentials entity.Credentials) (entity.Session, error) {
	if err := srv.validate.Struct(credentials); err != nil {
		srv.metrics.RecordLogin(metrics.LoginInvalidInput)

		return entity.Session{}, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if err := srv.Initialize(ctx); err != nil {
		return entity.Session{}, err
	}

	srv.log(ctx).Debug("Signing in", slog.String("login", credentials.Login))

	resp, err := srv.authAPI.Login(ctx, credentials)
	if err != nil {
		srv.metrics.RecordLogin(metrics.LoginUpstreamError)
		srv.log(ctx).Info("Login rejected upstream", slog.String("login", credentials.Login), slog.Any("error", err))

		return entity.Session{}, err
	}

	tokens, err := NormalizeTokens(resp)
	if err != nil {
		srv.metrics.RecordLogin(metrics.LoginInvalidResponse)

		return entity.Session{}, err
	}
	user, err := NormalizeIdentity(resp.User)
	if err != nil {
		srv.metrics.RecordLogin(metrics.LoginInvalidResponse)

		return entity.Session{}, err
	}
	session := entity.Session{User: user, Tokens: &tokens}

	srv.transition.Lock()

	if !srv.portal.Admits(user) {
		srv.store.Clear(ctx)
		snap := srv.setState(srv.readyAnonymous())
		srv.transition.Unlock()

		srv.metrics.RecordLogin(metrics.LoginPortalDenied)
		srv.log(ctx).Warn("Login denied on portal",
			slog.String("portal", srv.portal.Portal.String()),
			slog.String("user_id", user.ID),
			slog.String("type", user.Type.String()))
		srv.afterTransition(ctx, snap, service.SessionEventLoginDenied, user)

		return entity.Session{}, domainerrors.ErrPortalAccessDenied.WithDetails(
			"account type " + user.Type.String() + " on " + srv.portal.Portal.String() + " portal")
	}

	if err := srv.store.Set(ctx, session); err != nil {
		srv.transition.Unlock()
		srv.metrics.RecordLogin(metrics.LoginStorageError)

		return entity.Session{}, errors.Wrap(err, "failed to store session")
	}
	snap := srv.setState(entity.AuthStateReadyAuthenticated)
	srv.transition.Unlock()

	srv.metrics.RecordLogin(metrics.LoginSuccess)
	srv.log(ctx).Info("Login succeeded", slog.String("user_id", user.ID), slog.String("type", user.Type.String()))
	srv.afterTransition(ctx, snap, service.SessionEventLogin, user)

	return session.Clone(), nil
}

// Logout clears the session.
func (srv *authService) Logout(ctx context.Context) {
	srv.drop(ctx, service.SessionEventLogout)
}

// Clear drops the session.
func (srv *authService) Clear(ctx context.Context) {
	srv.drop(ctx, service.SessionEventCleared)
}

func (srv *authService) drop(ctx context.Context, eventType service.SessionEventType) {
	srv.transition.Lock()
	user := srv.store.Current().Session.User
	srv.store.Clear(ctx)
	snap := srv.setState(srv.readyAnonymous())
	srv.transition.Unlock()

	srv.log(ctx).Info("Session cleared", slog.String("reason", string(eventType)))
	srv.afterTransition(ctx, snap, eventType, user)
}

// Set stores a session obtained elsewhere. A session the portal does not admit is
// rejected and the prior session is kept.
func (srv *authService) Set(ctx context.Context, session entity.Session) error {
	if session.IsEmpty() {
		srv.Clear(ctx)

		return nil
	}

	session = session.Sanitized()
	srv.transition.Lock()

	if session.IsComplete() && !srv.portal.Admits(session.User) {
		srv.transition.Unlock()
		srv.afterTransition(ctx, srv.Snapshot(), service.SessionEventLoginDenied, session.User)

		return domainerrors.ErrPortalAccessDenied.WithDetails(
			"account type " + session.User.Type.String() + " on " + srv.portal.Portal.String() + " portal")
	}
	if err := srv.store.Set(ctx, session); err != nil {
		srv.transition.Unlock()

		return err
	}
	snap := srv.setState(entity.AuthStateReadyAuthenticated)
	srv.transition.Unlock()

	srv.afterTransition(ctx, snap, service.SessionEventLogin, session.User)

	return nil
}

// Snapshot returns the state and session as of the last transition.
func (srv *authService) Snapshot() entity.AuthSnapshot {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	snap := srv.snapshot
	snap.Session = snap.Session.Clone()

	return snap
}

// IsCurrent reports whether the stored session still has the given generation.
func (srv *authService) IsCurrent(generation uint64) bool {
	return srv.store.Current().Generation == generation
}

// Subscribe registers fn for every transition. The returned func removes it.
func (srv *authService) Subscribe(fn func(entity.AuthSnapshot)) func() {
	srv.listenersMu.Lock()
	defer srv.listenersMu.Unlock()

	id := srv.nextListener
	srv.nextListener++
	srv.listeners[id] = fn

	var once sync.Once

	return func() {
		once.Do(func() {
			srv.listenersMu.Lock()
			defer srv.listenersMu.Unlock()
			delete(srv.listeners, id)
		})
	}
}

func (srv *authService) IsReady() bool {
	return srv.Snapshot().IsReady()
}

func (srv *authService) IsLogged() bool {
	return srv.Snapshot().IsLogged()
}

func (srv *authService) Portal() entity.PortalContext {
	return srv.portal
}

func (srv *authService) currentState() entity.AuthState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state
}

// readyAnonymous keeps an uninitialized controller uninitialized, so that a clear
// before initialization does not skip hydration.
func (srv *authService) readyAnonymous() entity.AuthState {
	switch srv.currentState() {
	case entity.AuthStateUninitialized, entity.AuthStateInitializing:
		return srv.currentState()
	default:
		return entity.AuthStateReadyAnonymous
	}
}

// setState must be called with transition held.
func (srv *authService) setState(state entity.AuthState) entity.AuthSnapshot {
	current := srv.store.Current()

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.state = state
	srv.snapshot = entity.AuthSnapshot{
		State:      state,
		Portal:     srv.portal.Portal,
		Session:    current.Session,
		Generation: current.Generation,
	}

	return srv.snapshot
}

// afterTransition notifies listeners and publishes the event. Must be called without transition held.
func (srv *authService) afterTransition(ctx context.Context, snap entity.AuthSnapshot, eventType service.SessionEventType, user *entity.Identity) {
	srv.listenersMu.Lock()
	listeners := make([]func(entity.AuthSnapshot), 0, len(srv.listeners))
	for _, fn := range srv.listeners {
		listeners = append(listeners, fn)
	}
	srv.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}

	srv.publish(ctx, eventType, user)
}

func (srv *authService) publish(ctx context.Context, eventType service.SessionEventType, user *entity.Identity) {
	if srv.publisher == nil {
		return
	}

	event := &service.SessionEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		Portal:     srv.portal.Portal.String(),
		OccurredAt: time.Now().UTC(),
	}
	if user != nil {
		event.UserID = user.ID
		event.Role = user.Type.String()
	}

	if err := srv.publisher.PublishSessionEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish session event",
			slog.String("type", string(eventType)), slog.Any("error", err))
	}
}
