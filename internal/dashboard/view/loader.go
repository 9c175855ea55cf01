package view

import (
	"context"
	"sync"

	"casedesk/internal/platform/metrics"
)

// LoadState is the lifecycle of a fetch-on-mount component.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

// Loader runs one fetch per mount and applies its result only if no newer
// mount or unmount happened in between.
type Loader[T any] struct {
	component string
	env       Env

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	done    chan struct{}
	state   LoadState
	value   T
	err     error
	applied func(T, error)
}

func newLoader[T any](component string, env Env) *Loader[T] {
	done := make(chan struct{})
	close(done)
	return &Loader[T]{component: component, env: env, done: done}
}

// OnApply registers fn to run after a result has been applied. It runs on the
// fetch goroutine before Wait returns.
func (l *Loader[T]) OnApply(fn func(T, error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.applied = fn
}

// Mount cancels any fetch in flight, enters StateLoading and starts fetch.
func (l *Loader[T]) Mount(parent context.Context, fetch func(context.Context) (T, error)) {
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.done = done
	l.state = StateLoading
	var zero T
	l.value, l.err = zero, nil
	l.mu.Unlock()

	go func() {
		defer close(done)
		value, err := fetch(ctx)
		l.settle(ctx, gen, value, err)
	}()
}

// Unmount cancels the fetch in flight. Its result, if it still arrives, is
// discarded and the current state is left untouched.
func (l *Loader[T]) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}

// Wait blocks until the current fetch has settled or ctx is done.
func (l *Loader[T]) Wait(ctx context.Context) error {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the applied state.
func (l *Loader[T]) Snapshot() (LoadState, T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state, l.value, l.err
}

func (l *Loader[T]) settle(ctx context.Context, gen uint64, value T, err error) {
	l.mu.Lock()
	if gen != l.gen || ctx.Err() != nil {
		l.mu.Unlock()
		l.env.logger().DebugContext(ctx, "discarded stale response", "component", l.component)
		l.env.record(l.component, metrics.OutcomeDiscarded)
		return
	}
	l.value, l.err = value, err
	if err != nil {
		l.state = StateFailed
	} else {
		l.state = StateLoaded
	}
	applied := l.applied
	l.mu.Unlock()

	if applied != nil {
		applied(value, err)
	}
}
