package screen

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ghbrowse/internal/github"
)

// UserLoader fetches a profile with its repositories.
type UserLoader interface {
	LoadUser(ctx context.Context, login string) (github.UserDetail, error)
}

type UserState = DetailState[github.UserDetail]

// UserScreen shows a user and their public repositories.
type UserScreen struct {
	*detail[github.UserDetail]
	login string
}

func NewUserScreen(ctx context.Context, login string, users UserLoader) *UserScreen {
	load := func(ctx context.Context) (github.UserDetail, error) {
		return users.LoadUser(ctx, login)
	}
	return &UserScreen{detail: newDetail(ctx, "user "+login, load), login: login}
}

func (s *UserScreen) Login() string { return s.login }

func (s *UserScreen) Init() tea.Cmd { return s.Reload() }

func (s *UserScreen) Retry() tea.Cmd { return s.Reload() }

func (s *UserScreen) OpenRepo(id github.RepoID) bool {
	return s.actions.Emit(NavigateToRepo{ID: id})
}
