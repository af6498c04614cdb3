package fixtures

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/jask/ghbrowse/internal/github"
)

// Server is an in-process fake of the GitHub REST endpoints the client uses.
// Populate the maps before issuing requests; Fail forces a status code for
// an exact request path.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	Repos        map[string]github.Repo
	Contributors map[string][]github.Contributor
	Users        map[string]github.User
	UserRepos    map[string][]github.Repo
	Search       map[string][][]github.Repo // query -> pages
	Fail         map[string]int
	paths        []string
	tokens       []string
}

// NewServer starts a fake API that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	s := &Server{
		Repos:        map[string]github.Repo{},
		Contributors: map[string][]github.Contributor{},
		Users:        map[string]github.User{},
		UserRepos:    map[string][]github.Repo{},
		Search:       map[string][][]github.Repo{},
		Fail:         map[string]int{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/{owner}/{name}", s.repo)
	mux.HandleFunc("GET /repos/{owner}/{name}/contributors", s.contributors)
	mux.HandleFunc("GET /users/{login}", s.user)
	mux.HandleFunc("GET /users/{login}/repos", s.userRepos)
	mux.HandleFunc("GET /search/repositories", s.search)
	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// Client returns a github client pointed at the fake.
func (s *Server) Client(t testing.TB, opts ...github.Option) *github.Client {
	c, err := github.NewClient(s.URL, opts...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

// Paths lists request paths in arrival order.
func (s *Server) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

// Tokens lists the Authorization header of each request.
func (s *Server) Tokens() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tokens...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.paths = append(s.paths, r.URL.Path)
		s.tokens = append(s.tokens, r.Header.Get("Authorization"))
		status, fail := s.Fail[r.URL.Path]
		s.mu.Unlock()
		if fail {
			writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) repo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	repo, ok := s.Repos[r.PathValue("owner")+"/"+r.PathValue("name")]
	s.mu.Unlock()
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, repo)
}

func (s *Server) contributors(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := s.Contributors[r.PathValue("owner")+"/"+r.PathValue("name")]
	s.mu.Unlock()
	if list == nil {
		list = []github.Contributor{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) user(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	u, ok := s.Users[r.PathValue("login")]
	s.mu.Unlock()
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) userRepos(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := s.UserRepos[r.PathValue("login")]
	s.mu.Unlock()
	if list == nil {
		list = []github.Repo{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "bad page"})
			return
		}
		page = n
	}

	s.mu.Lock()
	pages := s.Search[query]
	s.mu.Unlock()

	var items []github.Repo
	total := 0
	for _, p := range pages {
		total += len(p)
	}
	if page <= len(pages) {
		items = pages[page-1]
	}
	if items == nil {
		items = []github.Repo{}
	}
	if page < len(pages) {
		next := url.Values{"q": {query}, "page": {strconv.Itoa(page + 1)}}
		last := url.Values{"q": {query}, "page": {strconv.Itoa(len(pages))}}
		w.Header().Set("Link", fmt.Sprintf(`<%s/search/repositories?%s>; rel="next", <%s/search/repositories?%s>; rel="last"`,
			s.URL, next.Encode(), s.URL, last.Encode()))
	}
	writeJSON(w, http.StatusOK, map[string]any{"total_count": total, "items": items})
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
