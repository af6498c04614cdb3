package github_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/ghbrowse/internal/fixtures"
	"github.com/jask/ghbrowse/internal/github"
)

func TestRepoAndContributors(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	srv := fixtures.NewServer(t)
	srv.Repos["login/name"] = fixtures.Repo1
	srv.Contributors["login/name"] = []github.Contributor{fixtures.Contributor1, fixtures.Contributor2}
	c := srv.Client(t, github.WithToken("secret"))

	repo, err := c.Repo(ctx, "login", "name")
	require.NoError(t, err)
	require.Equal(t, fixtures.Repo1, repo)
	require.Equal(t, github.RepoID{Owner: "login", Name: "name"}, repo.Key())

	contribs, err := c.Contributors(ctx, "login", "name")
	require.NoError(t, err)
	require.Equal(t, fixtures.RepoDetail.Contributors, contribs)

	require.Equal(t, []string{"/repos/login/name", "/repos/login/name/contributors"}, srv.Paths())
	require.Equal(t, []string{"Bearer secret", "Bearer secret"}, srv.Tokens())
}

func TestUserAndRepos(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv := fixtures.NewServer(t)
	srv.Users["login"] = fixtures.User
	srv.UserRepos["login"] = []github.Repo{fixtures.Repo1, fixtures.Repo2}
	c := srv.Client(t)

	u, err := c.User(ctx, "login")
	require.NoError(t, err)
	require.Equal(t, fixtures.User, u)

	repos, err := c.UserRepos(ctx, "login")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	require.Equal(t, []string{"", ""}, srv.Tokens(), "no token configured")
}

func TestNotFoundIsTypedAndSentinel(t *testing.T) {
	t.Parallel()
	srv := fixtures.NewServer(t)
	c := srv.Client(t)

	_, err := c.Repo(context.Background(), "nobody", "nothing")
	require.Error(t, err)
	require.ErrorIs(t, err, github.ErrNotFound)

	var apiErr *github.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "Not Found", apiErr.Message)
	require.Contains(t, err.Error(), "get repo nobody/nothing")
}

func TestServerErrorIsNotNotFound(t *testing.T) {
	t.Parallel()
	srv := fixtures.NewServer(t)
	srv.Fail["/users/login"] = http.StatusInternalServerError
	c := srv.Client(t)

	_, err := c.User(context.Background(), "login")
	var apiErr *github.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.NotErrorIs(t, err, github.ErrNotFound)
}

func TestSearchFollowsLinkCursor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := fixtures.NewServer(t)
	srv.Search["foo"] = [][]github.Repo{
		{fixtures.Repo1, fixtures.Repo2},
		{fixtures.Repo3},
	}
	c := srv.Client(t, github.WithPerPage(2))

	first, err := c.SearchRepos(ctx, "foo", "")
	require.NoError(t, err)
	require.Equal(t, []github.Repo{fixtures.Repo1, fixtures.Repo2}, first.Items)
	require.Equal(t, 3, first.Total)
	require.Equal(t, github.Cursor("2"), first.Next)

	second, err := c.SearchRepos(ctx, "foo", first.Next)
	require.NoError(t, err)
	require.Equal(t, []github.Repo{fixtures.Repo3}, second.Items)
	require.True(t, second.Next.IsZero())
}

func TestCancelledContextAbortsRequest(t *testing.T) {
	t.Parallel()
	srv := fixtures.NewServer(t)
	srv.Users["login"] = fixtures.User
	c := srv.Client(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.User(ctx, "login")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNamesCannotLeaveTheirPathSegment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := fixtures.NewServer(t)
	srv.Search["x"] = [][]github.Repo{{fixtures.Repo1}}
	c := srv.Client(t)

	_, err := c.User(ctx, "../search/repositories")
	require.ErrorIs(t, err, github.ErrInvalidName)
	_, err = c.UserRepos(ctx, "..")
	require.ErrorIs(t, err, github.ErrInvalidName)
	_, err = c.Repo(ctx, "..", "users")
	require.ErrorIs(t, err, github.ErrInvalidName)
	_, err = c.Contributors(ctx, "login", "a/b")
	require.ErrorIs(t, err, github.ErrInvalidName)
	_, err = c.User(ctx, "")
	require.ErrorIs(t, err, github.ErrInvalidName)

	require.Empty(t, srv.Paths(), "no request leaves the client")
}

func TestUnusualNamesStayInOneSegment(t *testing.T) {
	t.Parallel()
	srv := fixtures.NewServer(t)
	c := srv.Client(t)

	_, err := c.User(context.Background(), "a?b#c")
	require.ErrorIs(t, err, github.ErrNotFound)
	require.Equal(t, []string{"/users/a?b#c"}, srv.Paths())
}

func TestParseRepoID(t *testing.T) {
	tests := []struct {
		in      string
		want    github.RepoID
		wantErr bool
	}{
		{in: "golang/go", want: github.RepoID{Owner: "golang", Name: "go"}},
		{in: "  a/b ", want: github.RepoID{Owner: "a", Name: "b"}},
		{in: "golang", wantErr: true},
		{in: "/go", wantErr: true},
		{in: "golang/", wantErr: true},
		{in: "a/b/c", wantErr: true},
		{in: "../users", wantErr: true},
		{in: "golang/..", wantErr: true},
		{in: "./go", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := github.ParseRepoID(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want.Owner+"/"+tt.want.Name, got.String())
		})
	}
}
