package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrStorageKeyNotFound is returned by SessionStorage.Read when nothing is stored under the key.
var ErrStorageKeyNotFound = errors.New("storage key not found")

// SessionStorage is a namespaced key/value text store shared by all portals.
// Sessions live under the portal keys and audit records under the audit prefix.
type SessionStorage interface {
	// Read returns the value stored under key, or ErrStorageKeyNotFound.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write replaces the value stored under key.
	Write(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the storage
	Close() error
}
