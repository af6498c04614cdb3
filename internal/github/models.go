package github

import (
	"fmt"
	"strings"
)

// Owner is the account that owns a repository.
type Owner struct {
	Login string `json:"login"`
	URL   string `json:"url"`
}

// Repo is a repository as returned by the repos and search endpoints.
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Owner       Owner  `json:"owner"`
	Stars       int    `json:"stargazers_count"`
}

// Key returns the owner/name pair identifying r.
func (r Repo) Key() RepoID {
	return RepoID{Owner: r.Owner.Login, Name: r.Name}
}

// RepoID identifies a repository by owner login and name.
type RepoID struct {
	Owner string
	Name  string
}

func (id RepoID) String() string { return id.Owner + "/" + id.Name }

// ParseRepoID parses "owner/name".
func ParseRepoID(s string) (RepoID, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return RepoID{}, fmt.Errorf("invalid repository %q: want owner/name", s)
	}
	if err := checkRepo(owner, name); err != nil {
		return RepoID{}, err
	}
	return RepoID{Owner: owner, Name: name}, nil
}

// Contributor is one entry of a repository's contributor list.
type Contributor struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
	AvatarURL     string `json:"avatar_url"`
}

// RepoDetail is a repository together with its contributors.
type RepoDetail struct {
	Repo         Repo
	Contributors []Contributor
}

// User is a GitHub account profile.
type User struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	ReposURL  string `json:"repos_url"`
	Blog      string `json:"blog"`
}

// UserDetail is a profile together with the user's public repositories.
type UserDetail struct {
	User  User
	Repos []Repo
}

// Cursor is an opaque continuation token for paged searches. The zero
// Cursor means there is no further page.
type Cursor string

func (c Cursor) IsZero() bool { return c == "" }

// SearchPage is one page of repository search results.
type SearchPage struct {
	Items []Repo
	Total int
	Next  Cursor
}
