// Package metadata is the key/value table that backs durable client state
// (the serialized session and the last known role).
package metadata

import (
	"context"
)

// Entry is one key/value row.
type Entry struct {
	Key   string
	Value []byte
}

// Store keeps opaque values by key. Get returns (nil, nil) for a missing key.
// Put and Remove act on all their keys in one statement.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, entries ...Entry) error
	Remove(ctx context.Context, keys ...string) error
}
