package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	deliverycontext "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/context"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/usecase"
)

// sessionStore implements the SessionStore interface over the portal's storage key.
type sessionStore struct {
	storage service.SessionStorage
	key     string
	logger  *slog.Logger

	mu         sync.RWMutex
	session    entity.Session
	generation uint64
	hydrated   bool
}

// NewSessionStore is the constructor for sessionStore. The store only ever touches
// the storage key of the given portal.
func NewSessionStore(storage service.SessionStorage, portal entity.PortalContext, logger *slog.Logger) usecase.SessionStore {
	return &sessionStore{
		storage: storage,
		key:     portal.StorageKey,
		logger:  logger,
	}
}

func (s *sessionStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Hydrate reads the persisted session on its first call only.
func (s *sessionStore) Hydrate(ctx context.Context) entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return s.session.Clone()
	}
	s.hydrated = true

	data, err := s.storage.Read(ctx, s.key)
	if err != nil {
		if !errors.Is(err, service.ErrStorageKeyNotFound) {
			s.log(ctx).Warn("Failed to read persisted session, starting anonymous",
				slog.String("key", s.key), slog.Any("error", err))
		}

		return entity.Session{}
	}

	session, err := decodeSession(data)
	if err != nil {
		s.log(ctx).Warn("Purging unreadable persisted session",
			slog.String("key", s.key),
			slog.Any("error", domainerrors.ErrCorruptPersistedSession.WithDetails(err.Error())))
		if err := s.storage.Delete(ctx, s.key); err != nil {
			s.log(ctx).Warn("Failed to purge persisted session", slog.String("key", s.key), slog.Any("error", err))
		}

		return entity.Session{}
	}

	s.session = session
	s.generation++
	s.log(ctx).Debug("Hydrated persisted session", slog.String("key", s.key), slog.String("user_id", session.User.ID))

	return session.Clone()
}

// Set validates and persists the session, then replaces the in-memory state.
func (s *sessionStore) Set(ctx context.Context, session entity.Session) error {
	if session.IsEmpty() {
		s.Clear(ctx)

		return nil
	}
	session = session.Sanitized()
	if err := validateSession(session); err != nil {
		return err
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Write(ctx, s.key, data); err != nil {
		return errors.Wrap(err, "failed to persist session")
	}

	s.session = session
	s.generation++
	s.hydrated = true

	return nil
}

// Clear drops the session from memory and storage. Storage failures are logged only.
func (s *sessionStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.IsEmpty() {
		s.session = entity.Session{}
		s.generation++
	}
	s.hydrated = true

	if err := s.storage.Delete(ctx, s.key); err != nil {
		s.log(ctx).Warn("Failed to delete persisted session", slog.String("key", s.key), slog.Any("error", err))
	}
}

// Current returns a copy of the in-memory session.
func (s *sessionStore) Current() entity.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entity.SessionSnapshot{
		Session:    s.session.Clone(),
		Generation: s.generation,
	}
}

func decodeSession(data []byte) (entity.Session, error) {
	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return entity.Session{}, errors.Wrap(err, "invalid session encoding")
	}
	session = session.Sanitized()
	if err := validateSession(session); err != nil {
		return entity.Session{}, err
	}

	return session, nil
}

func validateSession(session entity.Session) error {
	if !session.IsComplete() {
		return domainerrors.ErrInvalidSessionShape
	}
	if err := identityValidator.Struct(session.User); err != nil {
		return domainerrors.ErrInvalidSessionShape.WithDetails(err.Error())
	}

	return nil
}
