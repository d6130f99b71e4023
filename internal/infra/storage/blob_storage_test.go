package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobStorage_ReadWriteDelete(t *testing.T) {
	ctx := context.Background()
	storage := NewBlobStorage(memblob.OpenBucket(nil), testLogger())
	defer storage.Close()

	_, err := storage.Read(ctx, "auth_admin")
	require.ErrorIs(t, err, service.ErrStorageKeyNotFound)

	require.NoError(t, storage.Write(ctx, "auth_admin", []byte(`{"user":{"_id":"1"}}`)))
	data, err := storage.Read(ctx, "auth_admin")
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":{"_id":"1"}}`, string(data))

	require.NoError(t, storage.Write(ctx, "auth_admin", []byte(`{}`)))
	data, err = storage.Read(ctx, "auth_admin")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	require.NoError(t, storage.Delete(ctx, "auth_admin"))
	_, err = storage.Read(ctx, "auth_admin")
	require.ErrorIs(t, err, service.ErrStorageKeyNotFound)
}

func TestBlobStorage_DeleteMissingKey(t *testing.T) {
	storage := NewBlobStorage(memblob.OpenBucket(nil), testLogger())
	defer storage.Close()

	assert.NoError(t, storage.Delete(context.Background(), "auth_seller"))
}

func TestBlobStorage_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	storage := NewBlobStorage(memblob.OpenBucket(nil), testLogger())
	defer storage.Close()

	require.NoError(t, storage.Write(ctx, "auth_seller", []byte("seller")))
	require.NoError(t, storage.Write(ctx, "auth_admin", []byte("admin")))
	require.NoError(t, storage.Delete(ctx, "auth_admin"))

	data, err := storage.Read(ctx, "auth_seller")
	require.NoError(t, err)
	assert.Equal(t, "seller", string(data))
}

func TestNew_FileBucketWithPrefix(t *testing.T) {
	dir := t.TempDir()
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Storage: &config.StorageConfig{
		URL:    (&url.URL{Scheme: "file", Path: filepath.ToSlash(dir)}).String(),
		Prefix: "sessions/",
	}}

	storage, err := New(Params{Lc: lc, Ctx: context.Background(), Config: cfg, Logger: testLogger()})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, storage.Write(context.Background(), "auth", []byte("public")))
	assert.FileExists(t, filepath.Join(dir, "sessions", "auth"))
	lc.RequireStop()
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.StorageConfig
	}{
		{name: "missing config", cfg: nil},
		{name: "empty url", cfg: &config.StorageConfig{}},
		{name: "unknown scheme", cfg: &config.StorageConfig{URL: "nosuch://bucket"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Params{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{Storage: tt.cfg},
				Logger: testLogger(),
			})
			assert.Error(t, err)
		})
	}
}
