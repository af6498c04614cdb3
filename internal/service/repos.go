package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jask/ghbrowse/internal/github"
)

// RepoAPI is the slice of the GitHub client the repo service needs.
type RepoAPI interface {
	Repo(ctx context.Context, owner, name string) (github.Repo, error)
	Contributors(ctx context.Context, owner, name string) ([]github.Contributor, error)
	SearchRepos(ctx context.Context, query string, cursor github.Cursor) (github.SearchPage, error)
}

// RepoService loads repositories for the detail and search screens.
type RepoService struct {
	API RepoAPI
}

// LoadRepo fetches a repository and its contributors concurrently. Either
// failure fails the whole load.
func (s *RepoService) LoadRepo(ctx context.Context, owner, name string) (github.RepoDetail, error) {
	var detail github.RepoDetail
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		repo, err := s.API.Repo(ctx, owner, name)
		if err != nil {
			return err
		}
		detail.Repo = repo
		return nil
	})
	g.Go(func() error {
		contribs, err := s.API.Contributors(ctx, owner, name)
		if err != nil {
			return err
		}
		detail.Contributors = contribs
		return nil
	})
	if err := g.Wait(); err != nil {
		return github.RepoDetail{}, fmt.Errorf("load repo: %w", err)
	}
	return detail, nil
}

// Search returns the first page of results for query.
func (s *RepoService) Search(ctx context.Context, query string) (github.SearchPage, error) {
	return s.API.SearchRepos(ctx, query, "")
}

// SearchNextPage continues a search from cursor.
func (s *RepoService) SearchNextPage(ctx context.Context, query string, cursor github.Cursor) (github.SearchPage, error) {
	if cursor.IsZero() {
		return github.SearchPage{}, fmt.Errorf("search %q: no next page", query)
	}
	return s.API.SearchRepos(ctx, query, cursor)
}
