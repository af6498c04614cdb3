package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/ghbrowse/internal/fixtures"
	"github.com/jask/ghbrowse/internal/github"
)

func TestLoadRepo(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	srv := fixtures.NewServer(t)
	srv.Repos["login/name"] = fixtures.Repo1
	srv.Contributors["login/name"] = fixtures.RepoDetail.Contributors
	svc := &RepoService{API: srv.Client(t)}

	detail, err := svc.LoadRepo(ctx, "login", "name")
	require.NoError(t, err)
	require.Equal(t, fixtures.RepoDetail, detail)
	require.ElementsMatch(t, []string{"/repos/login/name", "/repos/login/name/contributors"}, srv.Paths())
}

func TestLoadRepoFailsWhenContributorsFail(t *testing.T) {
	t.Parallel()
	srv := fixtures.NewServer(t)
	srv.Repos["login/name"] = fixtures.Repo1
	srv.Fail["/repos/login/name/contributors"] = http.StatusBadGateway
	svc := &RepoService{API: srv.Client(t)}

	_, err := svc.LoadRepo(context.Background(), "login", "name")
	var apiErr *github.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestSearchPaging(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	srv := fixtures.NewServer(t)
	srv.Search["foo"] = [][]github.Repo{{fixtures.Repo1}, {fixtures.Repo2}}
	svc := &RepoService{API: srv.Client(t)}

	first, err := svc.Search(ctx, "foo")
	require.NoError(t, err)
	require.Equal(t, []github.Repo{fixtures.Repo1}, first.Items)

	second, err := svc.SearchNextPage(ctx, "foo", first.Next)
	require.NoError(t, err)
	require.Equal(t, []github.Repo{fixtures.Repo2}, second.Items)
	require.True(t, second.Next.IsZero())

	_, err = svc.SearchNextPage(ctx, "foo", second.Next)
	require.Error(t, err)
	require.Len(t, srv.Paths(), 2, "a zero cursor must not hit the API")
}

func TestLoadUser(t *testing.T) {
	t.Parallel()
	srv := fixtures.NewServer(t)
	srv.Users["login"] = fixtures.User
	srv.UserRepos["login"] = []github.Repo{fixtures.Repo1, fixtures.Repo2}
	svc := &UserService{API: srv.Client(t)}

	detail, err := svc.LoadUser(context.Background(), "login")
	require.NoError(t, err)
	require.Equal(t, fixtures.User, detail.User)
	require.Equal(t, []github.Repo{fixtures.Repo1, fixtures.Repo2}, detail.Repos)
}

func TestLoadUserNotFound(t *testing.T) {
	t.Parallel()
	srv := fixtures.NewServer(t)
	svc := &UserService{API: srv.Client(t)}

	_, err := svc.LoadUser(context.Background(), "ghost")
	require.ErrorIs(t, err, github.ErrNotFound)
}
