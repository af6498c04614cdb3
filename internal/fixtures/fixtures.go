// Package fixtures provides canned GitHub data and a fake API server for
// tests.
package fixtures

import (
	"fmt"

	"github.com/jask/ghbrowse/internal/github"
)

var (
	Owner = github.Owner{Login: "login", URL: "url"}

	Repo1 = Repo(1, "name", "fullName", "desc", Owner, 10000)
	Repo2 = Repo(2, "name", "fullName", "desc", Owner, 10000)
	Repo3 = Repo(3, "name", "fullName", "desc", Owner, 10000)
	Repo4 = Repo(4, "name", "fullName", "desc", Owner, 10000)

	Contributor1 = github.Contributor{Login: "login1", Contributions: 10, AvatarURL: "url1"}
	Contributor2 = github.Contributor{Login: "login2", Contributions: 20, AvatarURL: "url2"}

	RepoDetail = github.RepoDetail{Repo: Repo1, Contributors: []github.Contributor{Contributor1, Contributor2}}

	User = github.User{Login: "login", AvatarURL: "avatar", Name: "name", Company: "company", ReposURL: "repos", Blog: "blog"}
)

func Repo(id int64, name, fullName, desc string, owner github.Owner, stars int) github.Repo {
	return github.Repo{ID: id, Name: name, FullName: fullName, Description: desc, Owner: owner, Stars: stars}
}

// Repos generates n distinct repositories owned by owner.
func Repos(owner string, n int) []github.Repo {
	out := make([]github.Repo, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("repo-%02d", i+1)
		out = append(out, Repo(int64(i+1), name, owner+"/"+name, "generated", github.Owner{Login: owner}, i*10))
	}
	return out
}
