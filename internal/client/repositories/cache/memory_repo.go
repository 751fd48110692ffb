package cache

import (
	"context"
	"sync"
)

type MemoryRepository struct {
	mu    sync.Mutex
	items map[string]Envelope
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]Envelope)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) (*Envelope, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	env, ok := r.items[key]
	if !ok {
		return nil, nil
	}
	env.Payload = append([]byte(nil), env.Payload...)
	return &env, nil
}

func (r *MemoryRepository) Put(_ context.Context, env Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	env.Payload = append([]byte(nil), env.Payload...)
	r.items[env.Key] = env
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, key)
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]Envelope)
	return nil
}
