// Package kvstore is the durability layer of the storefront: a string-keyed
// store of JSON blobs, one blob per collection. All application state lives
// under three keys.
package kvstore

import (
	"context"
	"errors"
)

const (
	KeyUser   = "user"
	KeyCart   = "cart"
	KeyOrders = "orders"
)

// ErrNotFound is returned by Get when the key has never been written or has
// been deleted.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a last-write-wins blob store. Implementations must make each
// single Get/Set/Delete atomic; read-modify-write cycles are serialized by
// the callers.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
