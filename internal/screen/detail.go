package screen

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ghbrowse/internal/resource"
	"github.com/jask/ghbrowse/internal/state"
)

// DetailState is the snapshot of a screen that shows a single fetched value.
type DetailState[T any] struct {
	Resource resource.Resource[T]
}

func (s DetailState[T]) WithResource(r resource.Resource[T]) DetailState[T] {
	s.Resource = r
	return s
}

// detail drives a fetch-then-display cycle for one identity key.
type detail[T any] struct {
	name    string
	state   *state.Container[DetailState[T]]
	actions state.Actions[Action]
	load    func(ctx context.Context) (T, error)
}

func newDetail[T any](ctx context.Context, name string, load func(context.Context) (T, error)) *detail[T] {
	d := &detail[T]{
		name:  name,
		state: state.New(ctx, DetailState[T]{}),
		load:  load,
	}
	log.Printf("screen %s open (scope %s)", name, d.state.ID())
	return d
}

// Reload publishes Loading and returns the command that fetches. There is
// no single-flight guard: overlapping reloads race and the last completion
// applied wins.
func (d *detail[T]) Reload() tea.Cmd {
	d.state.Update(func(s DetailState[T]) DetailState[T] {
		return s.WithResource(resource.Loading[T]())
	})
	return state.Fetch(d.state, d.load, state.Fold(d.state,
		func(s DetailState[T], v T) DetailState[T] { return s.WithResource(resource.Success(v)) },
		func(s DetailState[T], err error) DetailState[T] {
			log.Printf("screen %s: load failed: %v", d.name, err)
			return s.WithResource(resource.Error[T](err))
		},
	))
}

func (d *detail[T]) State() *state.Container[DetailState[T]] { return d.state }

func (d *detail[T]) Actions() *state.Actions[Action] { return &d.actions }

func (d *detail[T]) Close() {
	if d.state.Closed() {
		return
	}
	d.state.Close()
	log.Printf("screen %s closed (scope %s)", d.name, d.state.ID())
}
