// Package store provides the keyed durable store used as the system of
// record for cart and order aggregates. Values are whole-record blobs;
// writes overwrite, last write wins.
package store

import "context"

// Store is a named key/value store. Get returns (nil, nil) when the key is
// absent — absence is a normal outcome, not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
