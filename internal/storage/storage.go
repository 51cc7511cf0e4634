package storage

import (
	"context"
)

// Store is a key-value persistence backend for serialized task lists.
//
// Get returns model.ErrNotFound when the key has never been written.
// Set overwrites the whole value of the key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
