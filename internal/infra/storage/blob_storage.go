// Package storage persists sessions in any gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const contentTypeJSON = "application/json"

// Params holds dependencies for the session storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.SessionStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("storage url is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.URL)
	}
	if cfg.Prefix != "" {
		bucket = blob.PrefixedBucket(bucket, cfg.Prefix)
	}

	params.Logger.Info("Session storage opened",
		slog.String("url", cfg.URL),
		slog.String("prefix", cfg.Prefix),
	)

	storage := NewBlobStorage(bucket, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing session storage")

			return storage.Close()
		},
	})

	return storage, nil
}

type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBlobStorage wraps an open bucket. The storage owns the bucket from then on.
func NewBlobStorage(bucket *blob.Bucket, logger *slog.Logger) service.SessionStorage {
	return &blobStorage{bucket: bucket, logger: logger}
}

func (s *blobStorage) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrStorageKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

func (s *blobStorage) Write(ctx context.Context, key string, data []byte) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentTypeJSON})

	return errors.Wrapf(err, "failed to write %s", key)
}

// Delete is idempotent; a missing key is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// Module provides the session storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
