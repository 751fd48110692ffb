package commands

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/client/client"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
	"github.com/dmitrijs2005/spinadmin/internal/client/store"
	"github.com/dmitrijs2005/spinadmin/internal/logging"
)

const DefaultTimeout = 15 * time.Second

// Runner executes commands against one store, refusing a second command for
// a row that still has one pending.
type Runner[T models.Record] struct {
	store   *store.Store[T]
	api     client.Client
	timeout time.Duration
	log     logging.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewRunner[T models.Record](s *store.Store[T], api client.Client, timeout time.Duration, log logging.Logger) *Runner[T] {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Runner[T]{
		store:    s,
		api:      api,
		timeout:  timeout,
		log:      log.With("store", s.Name()),
		inFlight: make(map[string]struct{}),
	}
}

func (r *Runner[T]) acquire(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.inFlight[id]; busy {
		return false
	}
	r.inFlight[id] = struct{}{}
	return true
}

func (r *Runner[T]) release(id string) {
	r.mu.Lock()
	delete(r.inFlight, id)
	r.mu.Unlock()
}

// InFlight reports whether a command for id is still pending.
func (r *Runner[T]) InFlight(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.inFlight[id]
	return ok
}

// Run validates cmd, sends it and applies its outcome. The store is left
// untouched when validation or the call fails.
func (r *Runner[T]) Run(ctx context.Context, cmd Command[T]) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	target := cmd.Target()
	if !r.acquire(target) {
		return fmt.Errorf("%s %s: %w", cmd.Name(), target, client.ErrInFlight)
	}
	defer r.release(target)

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := cmd.Execute(callCtx, r.api)
	if err != nil {
		r.log.Error(ctx, "command failed", "command", cmd.Name(), "target", target, "error", err)
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}

	r.log.Info(ctx, "command applied", "command", cmd.Name(), "target", target)
	return r.apply(ctx, target, out)
}

func (r *Runner[T]) apply(ctx context.Context, target string, out Outcome[T]) error {
	switch out.Kind {
	case OutcomePatch:
		r.store.ApplyLocalPatch(target, out.Patch)
	case OutcomeRemove:
		r.store.Remove(target)
	case OutcomePrepend:
		r.store.Prepend(out.Record)
	case OutcomeReload:
		return r.store.Refresh(ctx)
	}
	return nil
}
