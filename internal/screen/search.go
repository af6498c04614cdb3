package screen

import (
	"context"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jask/ghbrowse/internal/github"
	"github.com/jask/ghbrowse/internal/resource"
	"github.com/jask/ghbrowse/internal/state"
)

// SearchSource runs paged repository searches.
type SearchSource interface {
	Search(ctx context.Context, query string) (github.SearchPage, error)
	SearchNextPage(ctx context.Context, query string, cursor github.Cursor) (github.SearchPage, error)
}

// SearchState is the snapshot of the search screen. Resource accumulates
// every page loaded for Query; Next is the cursor of the following page,
// zero when there is none.
type SearchState struct {
	Query       string
	Resource    resource.Resource[[]github.Repo]
	Next        github.Cursor
	LoadingMore bool
}

// Repos returns the accumulated items, or nil when no page has loaded.
func (s SearchState) Repos() []github.Repo {
	return s.Resource.ValueOr(nil)
}

// CanLoadMore reports whether LoadNextPage would issue a fetch.
func (s SearchState) CanLoadMore() bool {
	return s.Query != "" && !s.Next.IsZero() && !s.LoadingMore
}

// SearchScreen is the paged repository search screen.
type SearchScreen struct {
	source  SearchSource
	lang    language.Tag
	state   *state.Container[SearchState]
	actions state.Actions[Action]

	searches int // bumped by every fresh search, UI goroutine only
}

type SearchOption func(*SearchScreen)

// WithLocale sets the language used to case-fold queries.
func WithLocale(tag language.Tag) SearchOption {
	return func(s *SearchScreen) { s.lang = tag }
}

func NewSearchScreen(ctx context.Context, source SearchSource, opts ...SearchOption) *SearchScreen {
	s := &SearchScreen{
		source: source,
		lang:   language.Und,
		state:  state.New(ctx, SearchState{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	log.Printf("screen search open (scope %s)", s.state.ID())
	return s
}

func (s *SearchScreen) State() *state.Container[SearchState] { return s.state }

func (s *SearchScreen) Actions() *state.Actions[Action] { return &s.actions }

// Normalize lower-cases input for the screen's locale and trims it.
func (s *SearchScreen) Normalize(input string) string {
	return strings.TrimSpace(cases.Lower(s.lang).String(input))
}

// SetQuery starts a fresh search when the normalized input differs from
// the current query. It returns nil when nothing changed.
func (s *SearchScreen) SetQuery(input string) tea.Cmd {
	query := s.Normalize(input)
	if query == s.state.Current().Query {
		return nil
	}
	return s.reload(query)
}

// Refresh re-runs the current query. It returns nil for an empty query.
func (s *SearchScreen) Refresh() tea.Cmd {
	query := s.state.Current().Query
	if query == "" {
		return nil
	}
	return s.reload(query)
}

func (s *SearchScreen) reload(query string) tea.Cmd {
	s.searches++
	s.state.Update(func(st SearchState) SearchState {
		return SearchState{Query: query, Resource: resource.Loading[[]github.Repo]()}
	})
	load := func(ctx context.Context) (github.SearchPage, error) {
		return s.source.Search(ctx, query)
	}
	return state.Fetch(s.state, load, state.Fold(s.state,
		func(st SearchState, page github.SearchPage) SearchState {
			st.Resource = resource.Success(page.Items)
			st.Next = page.Next
			return st
		},
		func(st SearchState, err error) SearchState {
			log.Printf("screen search: query %q failed: %v", query, err)
			st.Resource = resource.Error[[]github.Repo](err)
			return st
		},
	))
}

// LoadNextPage fetches the page after the accumulated results. At most one
// page load is in flight; the call returns nil without touching state
// when the query is empty, there is no next page, or a load is running.
//
// A failed page keeps the accumulated results, clears LoadingMore and
// emits a ShowError action instead of replacing the resource. A page that
// completes after a newer search started is dropped, failure included.
func (s *SearchScreen) LoadNextPage() tea.Cmd {
	cur := s.state.Current()
	if !cur.CanLoadMore() {
		return nil
	}
	query, cursor, search := cur.Query, cur.Next, s.searches
	s.state.Update(func(st SearchState) SearchState {
		st.LoadingMore = true
		return st
	})
	load := func(ctx context.Context) (github.SearchPage, error) {
		return s.source.SearchNextPage(ctx, query, cursor)
	}
	return state.Fetch(s.state, load, func(page github.SearchPage, err error) {
		if s.searches != search {
			// a new search replaced the results this page belongs to
			log.Printf("screen search: dropped stale next page of %q (err=%v)", query, err)
			return
		}
		if err != nil {
			log.Printf("screen search: next page of %q failed: %v", query, err)
			s.state.Update(func(st SearchState) SearchState {
				st.LoadingMore = false
				return st
			})
			s.actions.Emit(ShowError{Message: err.Error()})
			return
		}
		s.state.Update(func(st SearchState) SearchState {
			prior := st.Resource.ValueOr(nil)
			merged := make([]github.Repo, 0, len(prior)+len(page.Items))
			merged = append(merged, prior...)
			merged = append(merged, page.Items...)
			st.Resource = resource.Success(merged)
			st.Next = page.Next
			st.LoadingMore = false
			return st
		})
	})
}

// OpenRepo requests navigation to a repository's detail screen.
func (s *SearchScreen) OpenRepo(id github.RepoID) bool {
	return s.actions.Emit(NavigateToRepo{ID: id})
}

func (s *SearchScreen) Close() {
	if s.state.Closed() {
		return
	}
	s.state.Close()
	log.Printf("screen search closed (scope %s)", s.state.ID())
}
