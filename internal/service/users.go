package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jask/ghbrowse/internal/github"
)

// UserAPI is the slice of the GitHub client the user service needs.
type UserAPI interface {
	User(ctx context.Context, login string) (github.User, error)
	UserRepos(ctx context.Context, login string) ([]github.Repo, error)
}

// UserService loads a profile and its repositories.
type UserService struct {
	API UserAPI
}

func (s *UserService) LoadUser(ctx context.Context, login string) (github.UserDetail, error) {
	var detail github.UserDetail
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.API.User(ctx, login)
		if err != nil {
			return err
		}
		detail.User = u
		return nil
	})
	g.Go(func() error {
		repos, err := s.API.UserRepos(ctx, login)
		if err != nil {
			return err
		}
		detail.Repos = repos
		return nil
	})
	if err := g.Wait(); err != nil {
		return github.UserDetail{}, fmt.Errorf("load user: %w", err)
	}
	return detail, nil
}
