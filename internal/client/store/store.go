package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/client/models"
	"github.com/dmitrijs2005/spinadmin/internal/client/repositories/cache"
	"github.com/dmitrijs2005/spinadmin/internal/logging"
)

// DefaultMaxAge is how long a cache envelope stays fresh unless configured.
const DefaultMaxAge = 10 * time.Minute

// FetchFunc returns the already normalized collection.
type FetchFunc[T models.Record] func(ctx context.Context) ([]T, error)

// Status is a point-in-time view of the store flags.
type Status struct {
	Loading    bool
	Err        error
	CapturedAt time.Time
	Count      int
}

type Store[T models.Record] struct {
	name     string
	fetch    FetchFunc[T]
	cache    cache.Repository
	cacheKey string
	maxAge   time.Duration
	validate func([]T) bool
	log      logging.Logger
	now      func() time.Time

	mu         sync.RWMutex
	items      []T
	loading    bool
	err        error
	capturedAt time.Time
}

type Option[T models.Record] func(*Store[T])

// WithCache persists every successful load under key. An empty key leaves the
// default "spinadmin:<name>".
func WithCache[T models.Record](repo cache.Repository, key string) Option[T] {
	return func(s *Store[T]) {
		s.cache = repo
		if key != "" {
			s.cacheKey = key
		}
	}
}

func WithMaxAge[T models.Record](d time.Duration) Option[T] {
	return func(s *Store[T]) {
		if d > 0 {
			s.maxAge = d
		}
	}
}

// WithValidator rejects cached payloads for which fn returns false.
func WithValidator[T models.Record](fn func([]T) bool) Option[T] {
	return func(s *Store[T]) { s.validate = fn }
}

func WithLogger[T models.Record](l logging.Logger) Option[T] {
	return func(s *Store[T]) { s.log = l }
}

func WithClock[T models.Record](now func() time.Time) Option[T] {
	return func(s *Store[T]) { s.now = now }
}

func New[T models.Record](name string, fetch FetchFunc[T], opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		name:     name,
		fetch:    fetch,
		cacheKey: "spinadmin:" + name,
		maxAge:   DefaultMaxAge,
		log:      logging.Discard(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("store", name)
	return s
}

func (s *Store[T]) Name() string { return s.name }

// Load performs exactly one fetch. On failure the collection is emptied and
// the error is both recorded and returned.
func (s *Store[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	items, err := s.safeFetch(ctx)
	if err != nil {
		s.log.Error(ctx, "load failed", "error", err)
		s.mu.Lock()
		s.items = nil
		s.err = err
		s.mu.Unlock()
		return err
	}

	now := s.now()
	s.mu.Lock()
	s.items = items
	s.err = nil
	s.capturedAt = now
	s.mu.Unlock()

	s.persist(ctx, items, now)
	return nil
}

func (s *Store[T]) safeFetch(ctx context.Context) (items []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetch %s: %v", s.name, r)
		}
	}()
	items, err = s.fetch(ctx)
	if items == nil {
		items = []T{}
	}
	return items, err
}

func (s *Store[T]) persist(ctx context.Context, items []T, at time.Time) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(items)
	if err != nil {
		s.log.Warn(ctx, "encode cache payload", "error", err)
		return
	}
	if err := s.cache.Put(ctx, cache.Envelope{Key: s.cacheKey, Payload: payload, CapturedAt: at}); err != nil {
		s.log.Warn(ctx, "write cache envelope", "error", err)
	}
}

// LoadFromCacheOrFetch keeps the in-memory collection while it is fresh, so
// local patches survive. Otherwise it hydrates from the cache envelope when
// that is younger than the max age and decodes cleanly, and calls Load as a
// last resort.
func (s *Store[T]) LoadFromCacheOrFetch(ctx context.Context, now time.Time) error {
	s.mu.RLock()
	warm := s.err == nil && Fresh(s.capturedAt, now, s.maxAge)
	s.mu.RUnlock()
	if warm {
		return nil
	}

	if items, at, ok := s.readCache(ctx, now); ok {
		s.mu.Lock()
		s.items = items
		s.err = nil
		s.capturedAt = at
		s.mu.Unlock()
		s.log.Debug(ctx, "hydrated from cache", "count", len(items))
		return nil
	}
	return s.Load(ctx)
}

func (s *Store[T]) readCache(ctx context.Context, now time.Time) ([]T, time.Time, bool) {
	if s.cache == nil {
		return nil, time.Time{}, false
	}

	env, err := s.cache.Get(ctx, s.cacheKey)
	if err != nil {
		s.log.Warn(ctx, "read cache envelope", "error", err)
		return nil, time.Time{}, false
	}
	if env == nil || !Fresh(env.CapturedAt, now, s.maxAge) {
		return nil, time.Time{}, false
	}

	var items []T
	if err := json.Unmarshal(env.Payload, &items); err != nil || items == nil {
		s.log.Warn(ctx, "discarding malformed cache envelope", "error", err)
		return nil, time.Time{}, false
	}
	if s.validate != nil && !s.validate(items) {
		return nil, time.Time{}, false
	}
	return items, env.CapturedAt, true
}

// Fresh reports whether data captured at capturedAt may still be served at now.
func Fresh(capturedAt, now time.Time, maxAge time.Duration) bool {
	return !capturedAt.IsZero() && now.Sub(capturedAt) < maxAge
}

func (s *Store[T]) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// ApplyLocalPatch replaces the record whose id matches. It returns false and
// logs a warning when no such record is loaded.
func (s *Store[T]) ApplyLocalPatch(id string, patch func(T) T) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i >= 0 {
		next := slices.Clone(s.items)
		next[i] = patch(next[i])
		s.items = next
	}
	s.mu.Unlock()

	if i < 0 {
		s.log.Warn(context.Background(), "patch target missing", "id", id)
		return false
	}
	return true
}

func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i >= 0 {
		s.items = slices.Delete(slices.Clone(s.items), i, i+1)
	}
	s.mu.Unlock()

	if i < 0 {
		s.log.Warn(context.Background(), "remove target missing", "id", id)
		return false
	}
	return true
}

func (s *Store[T]) Prepend(rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]T, 0, len(s.items)+1)
	next = append(next, rec)
	s.items = append(next, s.items...)
}

// indexOf must be called with mu held.
func (s *Store[T]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(r T) bool { return r.RecordID() == id })
}

func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Get returns the record with the given id, if loaded.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{
		Loading:    s.loading,
		Err:        s.err,
		CapturedAt: s.capturedAt,
		Count:      len(s.items),
	}
}

// Invalidate empties the collection and drops the cache envelope so the
// next LoadFromCacheOrFetch goes to the backend.
func (s *Store[T]) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	s.items = nil
	s.err = nil
	s.capturedAt = time.Time{}
	s.mu.Unlock()

	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, s.cacheKey)
}
