// Package storage is the client-local key-value store backing session
// persistence. It lives in a small SQLite database next to the binary, so a
// session survives restarts of the program.
package storage

import (
	"context"
)

// Repository is a byte-valued key-value store. Get returns (nil, nil) for a
// missing key; callers decide whether absence is an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
