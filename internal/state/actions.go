package state

import "sync"

// Actions delivers fire-once UI intents to whichever observer is attached
// at emission time. There is a single observer slot and no buffer: an
// action emitted while nothing is attached is dropped and never replayed.
type Actions[A any] struct {
	mu       sync.Mutex
	observer func(A)
	gen      uint64
}

// Attach installs fn as the observer, replacing any previous one. The
// returned detach func only clears the slot while fn is still installed.
func (a *Actions[A]) Attach(fn func(A)) (detach func()) {
	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.observer = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.gen == gen {
			a.observer = nil
		}
	}
}

// Attached reports whether an observer is currently installed.
func (a *Actions[A]) Attached() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.observer != nil
}

// Emit hands action to the attached observer and reports whether it was
// delivered.
func (a *Actions[A]) Emit(action A) bool {
	a.mu.Lock()
	fn := a.observer
	a.mu.Unlock()
	if fn == nil {
		return false
	}
	fn(action)
	return true
}
