package state

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Completion is the message a fetch command produces. It must be applied
// on the bubbletea Update goroutine, which keeps every snapshot publish and
// action emission on one goroutine.
type Completion struct {
	// Scope is the ID of the container the fetch belongs to.
	Scope string
	apply func() bool
}

// Apply delivers the fetch outcome. It reports false when the owning
// scope closed before the outcome arrived; the outcome is then discarded.
func (c Completion) Apply() bool {
	if c.apply == nil {
		return false
	}
	return c.apply()
}

// Fetch returns a command that runs fetch under the container's scope
// context and reports back with a Completion. done runs from
// Completion.Apply, and only while the scope is still open.
func Fetch[S, T any](c *Container[S], fetch func(ctx context.Context) (T, error), done func(T, error)) tea.Cmd {
	ctx := c.Context()
	return func() tea.Msg {
		v, err := fetch(ctx)
		return Completion{
			Scope: c.ID(),
			apply: func() bool {
				if c.Closed() {
					return false
				}
				done(v, err)
				return true
			},
		}
	}
}

// Fold adapts a pair of snapshot transforms into a Fetch completion
// handler: success or failure becomes one Update on c.
func Fold[S, T any](c *Container[S], success func(S, T) S, failure func(S, error) S) func(T, error) {
	return func(v T, err error) {
		if err != nil {
			c.Update(func(s S) S { return failure(s, err) })
			return
		}
		c.Update(func(s S) S { return success(s, v) })
	}
}
