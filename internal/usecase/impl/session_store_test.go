package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/entity"
	domainerrors "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/errors"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/storage"
	mockSvc "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemStorage(t *testing.T) service.SessionStorage {
	t.Helper()
	s := storage.NewBlobStorage(memblob.OpenBucket(nil), testLogger())
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func boolPtr(b bool) *bool { return &b }

func newSession(id string, role entity.Role) entity.Session {
	return entity.Session{
		User:   &entity.Identity{ID: id, Type: role, Email: id + "@example.com"},
		Tokens: &entity.TokenPair{AccessToken: "access-" + id, RefreshToken: "refresh-" + id},
	}
}

func TestSessionStore_SetAndHydrate(t *testing.T) {
	ctx := context.Background()
	backing := newMemStorage(t)
	portal := entity.NewPortalContext(entity.AdminPortalPort)
	session := newSession("u1", entity.RoleAdmin)

	store := NewSessionStore(backing, portal, testLogger())
	require.NoError(t, store.Set(ctx, session))

	snap := store.Current()
	assert.Equal(t, session, snap.Session)
	assert.Equal(t, uint64(1), snap.Generation)

	// a fresh process reads what the previous one wrote
	restarted := NewSessionStore(backing, portal, testLogger())
	assert.True(t, restarted.Current().Session.IsEmpty())
	assert.Equal(t, session, restarted.Hydrate(ctx))
	assert.Equal(t, session, restarted.Current().Session)
}

func TestSessionStore_HydrateReadsOnce(t *testing.T) {
	ctx := context.Background()
	storageMock := mockSvc.NewMockSessionStorage(t)
	storageMock.EXPECT().Read(ctx, entity.StorageKeySeller).Return(nil, service.ErrStorageKeyNotFound).Once()

	store := NewSessionStore(storageMock, entity.NewPortalContext(entity.SellerPortalPort), testLogger())

	assert.True(t, store.Hydrate(ctx).IsEmpty())
	assert.True(t, store.Hydrate(ctx).IsEmpty())
	assert.Equal(t, uint64(0), store.Current().Generation)
}

func TestSessionStore_HydrateReadFailureStartsEmpty(t *testing.T) {
	ctx := context.Background()
	storageMock := mockSvc.NewMockSessionStorage(t)
	storageMock.EXPECT().Read(ctx, entity.StorageKeyPublic).Return(nil, errors.New("disk unavailable")).Once()

	store := NewSessionStore(storageMock, entity.NewPortalContext(3000), testLogger())

	assert.True(t, store.Hydrate(ctx).IsEmpty())
}

func TestSessionStore_HydratePurgesCorruptData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{not-json"},
		{name: "missing tokens", data: `{"user":{"id":"u1","type":"ADMIN"}}`},
		{name: "missing refresh token", data: `{"user":{"id":"u1"},"tokens":{"accessToken":"a"}}`},
		{name: "missing user id", data: `{"user":{"type":"ADMIN"},"tokens":{"accessToken":"a","refreshToken":"r"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backing := newMemStorage(t)
			require.NoError(t, backing.Write(ctx, entity.StorageKeyAdmin, []byte(tt.data)))

			store := NewSessionStore(backing, entity.NewPortalContext(entity.AdminPortalPort), testLogger())

			assert.True(t, store.Hydrate(ctx).IsEmpty())
			_, err := backing.Read(ctx, entity.StorageKeyAdmin)
			require.ErrorIs(t, err, service.ErrStorageKeyNotFound)
		})
	}
}

func TestSessionStore_PortalNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	backing := newMemStorage(t)

	seller := NewSessionStore(backing, entity.NewPortalContext(entity.SellerPortalPort), testLogger())
	admin := NewSessionStore(backing, entity.NewPortalContext(entity.AdminPortalPort), testLogger())

	require.NoError(t, seller.Set(ctx, newSession("seller", entity.RoleSousAdmin)))
	require.NoError(t, admin.Set(ctx, newSession("admin", entity.RoleAdmin)))

	admin.Clear(ctx)

	data, err := backing.Read(ctx, entity.StorageKeySeller)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seller"`)

	_, err = backing.Read(ctx, entity.StorageKeyAdmin)
	require.ErrorIs(t, err, service.ErrStorageKeyNotFound)

	assert.Equal(t, "seller", seller.Current().Session.User.ID)
}

func TestSessionStore_SetRejectsPartialSession(t *testing.T) {
	ctx := context.Background()
	storageMock := mockSvc.NewMockSessionStorage(t)
	store := NewSessionStore(storageMock, entity.NewPortalContext(3000), testLogger())

	partial := entity.Session{User: &entity.Identity{ID: "u1"}, Tokens: &entity.TokenPair{AccessToken: "a"}}
	err := store.Set(ctx, partial)
	require.ErrorIs(t, err, domainerrors.ErrInvalidSessionShape)

	noID := entity.Session{User: &entity.Identity{}, Tokens: &entity.TokenPair{AccessToken: "a", RefreshToken: "r"}}
	err = store.Set(ctx, noID)
	require.ErrorIs(t, err, domainerrors.ErrInvalidSessionShape)

	assert.True(t, store.Current().Session.IsEmpty())
}

func TestSessionStore_SetWriteFailureKeepsPrior(t *testing.T) {
	ctx := context.Background()
	storageMock := mockSvc.NewMockSessionStorage(t)
	store := NewSessionStore(storageMock, entity.NewPortalContext(3000), testLogger())

	storageMock.EXPECT().Write(ctx, entity.StorageKeyPublic, mock.Anything).Return(nil).Once()
	require.NoError(t, store.Set(ctx, newSession("u1", entity.RoleClient)))

	storageMock.EXPECT().Write(ctx, entity.StorageKeyPublic, mock.Anything).Return(errors.New("quota exceeded")).Once()
	err := store.Set(ctx, newSession("u2", entity.RoleClient))
	require.Error(t, err)

	snap := store.Current()
	assert.Equal(t, "u1", snap.Session.User.ID)
	assert.Equal(t, uint64(1), snap.Generation)
}

func TestSessionStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(newMemStorage(t), entity.NewPortalContext(3000), testLogger())

	store.Clear(ctx)
	assert.Equal(t, uint64(0), store.Current().Generation)

	require.NoError(t, store.Set(ctx, newSession("u1", entity.RoleClient)))
	store.Clear(ctx)
	store.Clear(ctx)

	snap := store.Current()
	assert.True(t, snap.Session.IsEmpty())
	assert.Equal(t, uint64(2), snap.Generation)

	// clearing marks the store hydrated, a later hydrate does not resurrect anything
	assert.True(t, store.Hydrate(ctx).IsEmpty())
}

func TestSessionStore_ClearToleratesStorageFailure(t *testing.T) {
	ctx := context.Background()
	storageMock := mockSvc.NewMockSessionStorage(t)
	storageMock.EXPECT().Delete(ctx, entity.StorageKeyPublic).Return(errors.New("read-only filesystem"))

	store := NewSessionStore(storageMock, entity.NewPortalContext(3000), testLogger())

	assert.NotPanics(t, func() { store.Clear(ctx) })
	assert.True(t, store.Current().Session.IsEmpty())
}

func TestSessionStore_SetEmptyClears(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(newMemStorage(t), entity.NewPortalContext(3000), testLogger())

	require.NoError(t, store.Set(ctx, newSession("u1", entity.RoleClient)))
	require.NoError(t, store.Set(ctx, entity.Session{}))

	assert.True(t, store.Current().Session.IsEmpty())
}

func TestSessionStore_CurrentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(newMemStorage(t), entity.NewPortalContext(3000), testLogger())
	require.NoError(t, store.Set(ctx, newSession("u1", entity.RoleClient)))

	snap := store.Current()
	snap.Session.User.ID = "tampered"
	snap.Session.Tokens.AccessToken = "tampered"

	again := store.Current()
	assert.Equal(t, "u1", again.Session.User.ID)
	assert.Equal(t, "access-u1", again.Session.Tokens.AccessToken)
}

func TestSessionStore_SetSanitizesRoles(t *testing.T) {
	ctx := context.Background()
	backing := newMemStorage(t)
	portal := entity.NewPortalContext(3000)
	store := NewSessionStore(backing, portal, testLogger())

	session := newSession("u1", entity.Role("professional"))
	session.User.AccountType = entity.Role("superuser")
	require.NoError(t, store.Set(ctx, session))

	stored := store.Current().Session.User
	assert.Equal(t, entity.RoleProfessional, stored.Type)
	assert.Equal(t, entity.RoleUnknown, stored.AccountType)

	data, err := backing.Read(ctx, entity.StorageKeyPublic)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"PROFESSIONAL"`)
	assert.NotContains(t, string(data), "superuser")
}

func TestSessionStore_HydrateSanitizesStoredRoles(t *testing.T) {
	ctx := context.Background()
	backing := newMemStorage(t)
	portal := entity.NewPortalContext(entity.AdminPortalPort)
	require.NoError(t, backing.Write(ctx, entity.StorageKeyAdmin, []byte(
		`{"user":{"id":"a1","type":"admin","accountType":"root"},"tokens":{"accessToken":"a","refreshToken":"r"}}`)))

	store := NewSessionStore(backing, portal, testLogger())
	session := store.Hydrate(ctx)

	require.True(t, session.IsComplete())
	assert.Equal(t, entity.RoleAdmin, session.User.Type)
	assert.Equal(t, entity.RoleUnknown, session.User.AccountType)
	assert.True(t, entity.HasAdminPrivileges(session.User.Type))
}
