// Package github is a small REST client for the parts of the GitHub API the
// browser screens need: repositories, contributors, users and repository
// search.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultBaseURL = "https://api.github.com/"
	DefaultPerPage = 30
	userAgent      = "ghbrowse"
)

// Client talks to the GitHub REST API.
type Client struct {
	baseURL *url.URL
	token   string
	perPage int
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithPerPage(n int) Option {
	return func(c *Client) {
		if n > 0 && n <= 100 {
			c.perPage = n
		}
	}
}

// NewClient builds a client rooted at baseURL, or the public API when
// baseURL is empty.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("github: parse base url: %w", err)
	}
	c := &Client{baseURL: u, perPage: DefaultPerPage, http: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Repo(ctx context.Context, owner, name string) (Repo, error) {
	if err := checkRepo(owner, name); err != nil {
		return Repo{}, err
	}
	var out Repo
	_, err := c.get(ctx, "repos/"+owner+"/"+name, nil, &out)
	if err != nil {
		return Repo{}, fmt.Errorf("get repo %s/%s: %w", owner, name, err)
	}
	return out, nil
}

func (c *Client) Contributors(ctx context.Context, owner, name string) ([]Contributor, error) {
	if err := checkRepo(owner, name); err != nil {
		return nil, err
	}
	var out []Contributor
	q := url.Values{"per_page": {strconv.Itoa(c.perPage)}}
	_, err := c.get(ctx, "repos/"+owner+"/"+name+"/contributors", q, &out)
	if err != nil {
		return nil, fmt.Errorf("list contributors %s/%s: %w", owner, name, err)
	}
	return out, nil
}

func (c *Client) User(ctx context.Context, login string) (User, error) {
	if err := checkName("login", login); err != nil {
		return User{}, err
	}
	var out User
	if _, err := c.get(ctx, "users/"+login, nil, &out); err != nil {
		return User{}, fmt.Errorf("get user %s: %w", login, err)
	}
	return out, nil
}

func (c *Client) UserRepos(ctx context.Context, login string) ([]Repo, error) {
	if err := checkName("login", login); err != nil {
		return nil, err
	}
	var out []Repo
	q := url.Values{"per_page": {strconv.Itoa(c.perPage)}}
	if _, err := c.get(ctx, "users/"+login+"/repos", q, &out); err != nil {
		return nil, fmt.Errorf("list repos of %s: %w", login, err)
	}
	return out, nil
}

// SearchRepos runs a repository search. A zero cursor requests the first
// page; otherwise cursor must come from a previous SearchPage.Next.
func (c *Client) SearchRepos(ctx context.Context, query string, cursor Cursor) (SearchPage, error) {
	q := url.Values{
		"q":        {query},
		"per_page": {strconv.Itoa(c.perPage)},
	}
	if !cursor.IsZero() {
		q.Set("page", string(cursor))
	}
	var body struct {
		TotalCount int    `json:"total_count"`
		Items      []Repo `json:"items"`
	}
	header, err := c.get(ctx, "search/repositories", q, &body)
	if err != nil {
		return SearchPage{}, fmt.Errorf("search %q: %w", query, err)
	}
	return SearchPage{
		Items: body.Items,
		Total: body.TotalCount,
		Next:  nextPage(header.Get("Link")),
	}, nil
}

// checkName rejects values that would escape their path segment, such as
// "..", or that contain a separator.
func checkName(kind, v string) error {
	if v == "" || v == "." || v == ".." || strings.ContainsAny(v, `/\`) {
		return fmt.Errorf("%w: %s %q", ErrInvalidName, kind, v)
	}
	return nil
}

func checkRepo(owner, name string) error {
	if err := checkName("owner", owner); err != nil {
		return err
	}
	return checkName("repository name", name)
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) (http.Header, error) {
	u := c.baseURL.ResolveReference(&url.URL{Path: path})
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		_ = json.Unmarshal(data, apiErr)
		return resp.Header, apiErr
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.Header, fmt.Errorf("decode response: %w", err)
	}
	return resp.Header, nil
}

// nextPage extracts the page number of the rel="next" entry of a Link
// header, e.g. `<https://api.github.com/search/repositories?q=go&page=2>; rel="next"`.
func nextPage(link string) Cursor {
	for _, part := range strings.Split(link, ",") {
		segs := strings.Split(part, ";")
		if len(segs) < 2 {
			continue
		}
		isNext := false
		for _, attr := range segs[1:] {
			if strings.TrimSpace(attr) == `rel="next"` {
				isNext = true
				break
			}
		}
		if !isNext {
			continue
		}
		raw := strings.Trim(strings.TrimSpace(segs[0]), "<>")
		u, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		return Cursor(u.Query().Get("page"))
	}
	return ""
}
