package query

import (
	"context"
	"sync"
)

// Mutation wraps a server write and tracks whether one is in flight. Writes are
// never retried.
type Mutation[V, R any] struct {
	fn        func(ctx context.Context, vars V) (R, error)
	onSuccess func(ctx context.Context, vars V, result R)

	mu      sync.Mutex
	pending int
	err     error
}

func NewMutation[V, R any](fn func(ctx context.Context, vars V) (R, error), onSuccess func(ctx context.Context, vars V, result R)) *Mutation[V, R] {
	return &Mutation[V, R]{
		fn:        fn,
		onSuccess: onSuccess,
	}
}

func (m *Mutation[V, R]) Run(ctx context.Context, vars V) (R, error) {
	m.mu.Lock()
	m.pending++
	m.mu.Unlock()

	result, err := m.fn(ctx, vars)

	m.mu.Lock()
	m.pending--
	m.err = err
	m.mu.Unlock()

	if err != nil {
		var zero R
		return zero, err
	}

	if m.onSuccess != nil {
		m.onSuccess(ctx, vars, result)
	}
	return result, nil
}

func (m *Mutation[V, R]) IsPending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending > 0
}

// Err returns the error of the last completed run.
func (m *Mutation[V, R]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}
