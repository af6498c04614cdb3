// Package screen holds the logic behind each browser screen. A screen owns
// a state.Container with its snapshot, turns fetches into snapshot
// transforms, and emits one-shot navigation actions.
package screen

import "github.com/jask/ghbrowse/internal/github"

// Action is a one-shot UI intent emitted by a screen.
type Action interface {
	action()
}

type NavigateToRepo struct {
	ID github.RepoID
}

type NavigateToUser struct {
	Login string
}

// ShowError asks for a transient error message.
type ShowError struct {
	Message string
}

func (NavigateToRepo) action() {}
func (NavigateToUser) action() {}
func (ShowError) action()      {}

// Navigator performs navigation requests. Calls are fire-and-forget.
type Navigator interface {
	NavigateToUser(login string)
	NavigateToRepo(id github.RepoID)
	ShowError(message string)
}

// Dispatch forwards a to the matching Navigator method.
func Dispatch(n Navigator, a Action) {
	switch a := a.(type) {
	case NavigateToRepo:
		n.NavigateToRepo(a.ID)
	case NavigateToUser:
		n.NavigateToUser(a.Login)
	case ShowError:
		n.ShowError(a.Message)
	}
}
