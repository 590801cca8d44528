// Package kvstore is the persistent string-key / JSON-document store every
// collection of the ERP is saved into. Backends: in-memory, PostgreSQL (gorm)
// and SQLite (sqlx).
package kvstore

import (
	"context"
	"errors"
)

var (
	// ErrClosed is returned by operations on a store that has been closed.
	ErrClosed = errors.New("kvstore: store closed")
)

// Bucket is the read/write view shared by a Store and an in-progress Update.
type Bucket interface {
	// Get returns the raw value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Store is a key-value store scoped to one application.
type Store interface {
	Bucket

	// Keys lists every stored key in ascending order.
	Keys(ctx context.Context) ([]string, error)

	// Clear erases every key.
	Clear(ctx context.Context) error

	// Update runs fn as one serialized read-modify-write unit. Writes made through
	// the Bucket passed to fn become visible only if fn returns nil.
	Update(ctx context.Context, fn func(b Bucket) error) error

	Close() error
}
