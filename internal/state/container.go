// Package state holds the per-screen state machinery: a snapshot container
// bound to a screen's lifetime, a one-shot action emitter, and the fetch
// pipeline that folds async results back into the container.
package state

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Container owns the current snapshot of one screen. Snapshots are values;
// Update replaces the snapshot wholesale and publishes it to observers.
//
// The container is the single writer of its snapshot. Update calls are
// serialized, and each publish completes before the next transform runs.
// Observers must not call Update from inside their callback.
type Container[S any] struct {
	id string

	writeMu sync.Mutex // serializes transform + publish

	mu        sync.Mutex
	current   S
	observers map[uint64]func(S)
	nextObs   uint64
	closed    bool

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// New creates a container holding initial. The container's scope is
// derived from parent and ends when Close is called or parent is done.
func New[S any](parent context.Context, initial S) *Container[S] {
	ctx, cancel := context.WithCancel(parent)
	return &Container[S]{
		id:        uuid.NewString(),
		current:   initial,
		observers: map[uint64]func(S){},
		ctx:       ctx,
		cancel:    cancel,
	}
}

// ID identifies this screen scope in logs.
func (c *Container[S]) ID() string { return c.id }

// Current returns the latest published snapshot.
func (c *Container[S]) Current() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Update applies fn to the current snapshot and publishes the result.
// Once the container is closed Update does nothing.
func (c *Container[S]) Update(fn func(S) S) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	if c.closed || c.ctx.Err() != nil {
		c.mu.Unlock()
		return
	}
	next := fn(c.current)
	c.current = next
	obs := make([]func(S), 0, len(c.observers))
	for _, id := range c.sortedObserverIDs() {
		obs = append(obs, c.observers[id])
	}
	c.mu.Unlock()

	for _, fn := range obs {
		fn(next)
	}
}

// Observe registers fn for every snapshot published after this call.
// The returned func deregisters it and is safe to call more than once.
func (c *Container[S]) Observe(fn func(S)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

// Close ends the screen scope: the close signal fires, observers are
// dropped and later Updates are ignored. Only the first call has effect.
func (c *Container[S]) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.observers = map[uint64]func(S){}
		c.mu.Unlock()
		c.cancel()
	})
}

// Done is the close signal. It is closed exactly once, by Close or by the
// parent context ending.
func (c *Container[S]) Done() <-chan struct{} { return c.ctx.Done() }

// Context is cancelled together with the close signal. Fetches run under it.
func (c *Container[S]) Context() context.Context { return c.ctx }

// Closed reports whether the close signal has fired.
func (c *Container[S]) Closed() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// sortedObserverIDs returns observer ids in registration order. Callers
// hold c.mu.
func (c *Container[S]) sortedObserverIDs() []uint64 {
	ids := make([]uint64, 0, len(c.observers))
	for id := range c.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
