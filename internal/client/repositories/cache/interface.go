package cache

import (
	"context"
	"time"
)

type Envelope struct {
	Key        string
	Payload    []byte
	CapturedAt time.Time
}

// Repository returns (nil, nil) from Get when no envelope exists for key.
type Repository interface {
	Get(ctx context.Context, key string) (*Envelope, error)
	Put(ctx context.Context, env Envelope) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
