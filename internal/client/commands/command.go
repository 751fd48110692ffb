package commands

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrijs2005/spinadmin/internal/client/client"
	"github.com/dmitrijs2005/spinadmin/internal/client/models"
)

type Command[T models.Record] interface {
	Name() string
	// Target is the row id; at most one command per target runs at a time.
	Target() string
	Validate() error
	Execute(ctx context.Context, api client.Client) (Outcome[T], error)
}

type OutcomeKind int

const (
	OutcomePatch OutcomeKind = iota
	OutcomeRemove
	OutcomePrepend
	OutcomeReload
)

// Outcome is the local change a successful command asks for.
type Outcome[T models.Record] struct {
	Kind   OutcomeKind
	Patch  func(T) T
	Record T
}

func patch[T models.Record](fn func(T) T) Outcome[T] {
	return Outcome[T]{Kind: OutcomePatch, Patch: fn}
}

// ValidationError maps field names to human readable problems.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return client.ErrValidation }

type validator struct {
	fields map[string]string
}

func (v *validator) check(ok bool, field, msg string) {
	if ok {
		return
	}
	if v.fields == nil {
		v.fields = make(map[string]string)
	}
	if _, seen := v.fields[field]; !seen {
		v.fields[field] = msg
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
