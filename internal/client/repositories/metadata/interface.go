// Package metadata stores small key/value pairs in the local SQLite file.
// The session gate keeps its token slots and the selected role here.
package metadata

import (
	"context"
)

// Repository is a persistent string-keyed byte store. Get returns (nil, nil)
// for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
