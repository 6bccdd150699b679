// Package repository declares the storage ports of the storefront.
package repository

import (
	"context"

	"storefront/internal/errors"
)

// ErrEntryNotFound is returned by KeyValueStore.Get for a key that was never written.
var ErrEntryNotFound = errors.New("storage entry not found")

// KeyValueStore is durable storage for small named documents.
type KeyValueStore interface {
	// Get returns the stored bytes, or ErrEntryNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases the underlying connection or bucket.
	Close() error
}
