package screen

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/ghbrowse/internal/github"
)

// RepoLoader fetches a repository with its contributors.
type RepoLoader interface {
	LoadRepo(ctx context.Context, owner, name string) (github.RepoDetail, error)
}

type RepoState = DetailState[github.RepoDetail]

// RepoScreen is the repository detail screen.
type RepoScreen struct {
	*detail[github.RepoDetail]
	id github.RepoID
}

// NewRepoScreen opens a detail screen for id. Nothing is fetched until
// Init is called.
func NewRepoScreen(ctx context.Context, id github.RepoID, repos RepoLoader) *RepoScreen {
	load := func(ctx context.Context) (github.RepoDetail, error) {
		return repos.LoadRepo(ctx, id.Owner, id.Name)
	}
	return &RepoScreen{detail: newDetail(ctx, "repo "+id.String(), load), id: id}
}

func (s *RepoScreen) ID() github.RepoID { return s.id }

func (s *RepoScreen) Init() tea.Cmd { return s.Reload() }

func (s *RepoScreen) Retry() tea.Cmd { return s.Reload() }

// OpenUser requests navigation to a contributor's profile.
func (s *RepoScreen) OpenUser(login string) bool {
	return s.actions.Emit(NavigateToUser{Login: login})
}
