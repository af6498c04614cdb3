package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/ghbrowse/internal/github"
	"github.com/jask/ghbrowse/internal/resource"
	"github.com/jask/ghbrowse/internal/screen"
	"github.com/jask/ghbrowse/internal/state"
)

// loadMoreThreshold is how close to the end of the result list the cursor
// has to get before the next page is requested.
const loadMoreThreshold = 3

// page is one entry of the navigation stack: a screen plus its view state.
type page interface {
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	// Capturing reports whether a text input owns the keyboard.
	Capturing() bool
	View(width, height int, spin string) string
	Help() bindings
	Actions() *state.Actions[screen.Action]
	Close()
}

func clamp(pos, n int) int {
	if n <= 0 || pos < 0 {
		return 0
	}
	if pos >= n {
		return n - 1
	}
	return pos
}

// window returns the [start, end) slice of n rows that keeps cursor visible
// in rows lines.
func window(n, cursor, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start := cursor - rows/2
	start = max(0, min(start, n-rows))
	return start, start + rows
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

func repoLine(r github.Repo, selected bool, width int) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}
	name := ownerStyle.Render(r.Owner.Login) + "/" + r.Name
	line := fmt.Sprintf("%s%s %s", prefix, name, starStyle.Render(fmt.Sprintf("★ %d", r.Stars)))
	if r.Description != "" {
		line += "  " + statusStyle.Render(r.Description)
	}
	return truncate(line, width)
}

// renderResource renders the loading, error and empty states shared by
// every page, and defers to success for loaded values.
func renderResource[T any](r resource.Resource[T], spin, loading string, success func(T) string) string {
	switch r.Kind() {
	case resource.KindLoading:
		return spin + " " + statusStyle.Render(loading)
	case resource.KindError:
		return errorStyle.Render(errorText(r.Err())) + "\n" + statusStyle.Render("press r to retry")
	case resource.KindSuccess:
		v, _ := r.Value()
		return success(v)
	}
	return ""
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, github.ErrNotFound) {
		return "not found"
	}
	return err.Error()
}

// searchPage wraps the repository search screen.
type searchPage struct {
	screen *screen.SearchScreen
	keys   keyMap
	input  textinput.Model
	cursor int
	query  string
}

func newSearchPage(s *screen.SearchScreen, keys keyMap, query string) *searchPage {
	inp := textinput.New()
	inp.Placeholder = "search repositories"
	inp.Prompt = "> "
	inp.SetValue(query)
	p := &searchPage{screen: s, keys: keys, input: inp, query: query}
	s.State().Observe(func(st screen.SearchState) {
		p.cursor = clamp(p.cursor, len(st.Repos()))
	})
	return p
}

func (p *searchPage) Title() string { return "search" }

func (p *searchPage) Init() tea.Cmd {
	if strings.TrimSpace(p.query) != "" {
		return p.screen.SetQuery(p.query)
	}
	p.input.Focus()
	return textinput.Blink
}

func (p *searchPage) Capturing() bool { return p.input.Focused() }

func (p *searchPage) Actions() *state.Actions[screen.Action] { return p.screen.Actions() }

func (p *searchPage) Close() { p.screen.Close() }

func (p *searchPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if p.input.Focused() {
		if ok && key.Matches(km, p.keys.Submit) {
			p.input.Blur()
			p.cursor = 0
			return p.screen.SetQuery(p.input.Value())
		}
		if ok && key.Matches(km, p.keys.Cancel) {
			p.input.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}
	if !ok {
		return nil
	}
	st := p.screen.State().Current()
	repos := st.Repos()
	switch {
	case key.Matches(km, p.keys.Search):
		return p.input.Focus()
	case key.Matches(km, p.keys.Up):
		p.cursor = clamp(p.cursor-1, len(repos))
	case key.Matches(km, p.keys.Down):
		p.cursor = clamp(p.cursor+1, len(repos))
		if p.cursor >= len(repos)-loadMoreThreshold {
			return p.screen.LoadNextPage()
		}
	case key.Matches(km, p.keys.Open):
		if len(repos) > 0 {
			p.screen.OpenRepo(repos[p.cursor].Key())
		}
	case key.Matches(km, p.keys.Reload):
		return p.screen.Refresh()
	}
	return nil
}

func (p *searchPage) View(width, height int, spin string) string {
	st := p.screen.State().Current()
	box := listBoxStyle
	if p.input.Focused() {
		box = focusBoxStyle
	}
	input := box.Width(max(width-4, 0)).Render(p.input.View())
	if st.Resource.IsEmpty() {
		return input + "\n" + statusStyle.Render("type a query and press enter")
	}
	rows := height - lipgloss.Height(input) - 2
	body := renderResource(st.Resource, spin, fmt.Sprintf("searching %q…", st.Query), func(repos []github.Repo) string {
		if len(repos) == 0 {
			return statusStyle.Render("no repositories match " + fmt.Sprintf("%q", st.Query))
		}
		start, end := window(len(repos), p.cursor, rows)
		lines := make([]string, 0, end-start+1)
		for i := start; i < end; i++ {
			lines = append(lines, repoLine(repos[i], i == p.cursor, width))
		}
		tail := countStyle.Render(fmt.Sprintf("%d loaded", len(repos)))
		switch {
		case st.LoadingMore:
			tail += " " + spin + " " + moreStyle.Render("loading more…")
		case !st.Next.IsZero():
			tail += " " + scrollStyle.Render("more below")
		default:
			tail += " " + loadedStyle.Render("all results")
		}
		return strings.Join(append(lines, tail), "\n")
	})
	return input + "\n" + body
}

func (p *searchPage) Help() bindings {
	if p.input.Focused() {
		return bindings{p.keys.Submit, p.keys.Cancel}
	}
	return bindings{p.keys.Search, p.keys.Up, p.keys.Down, p.keys.Open, p.keys.Reload}
}

// repoPage wraps the repository detail screen.
type repoPage struct {
	screen *screen.RepoScreen
	keys   keyMap
	cursor int
}

func newRepoPage(s *screen.RepoScreen, keys keyMap) *repoPage {
	p := &repoPage{screen: s, keys: keys}
	s.State().Observe(func(st screen.RepoState) {
		p.cursor = clamp(p.cursor, len(st.Resource.ValueOr(github.RepoDetail{}).Contributors))
	})
	return p
}

func (p *repoPage) Title() string { return p.screen.ID().String() }

func (p *repoPage) Init() tea.Cmd { return p.screen.Init() }

func (p *repoPage) Capturing() bool { return false }

func (p *repoPage) Actions() *state.Actions[screen.Action] { return p.screen.Actions() }

func (p *repoPage) Close() { p.screen.Close() }

func (p *repoPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	contributors := p.screen.State().Current().Resource.ValueOr(github.RepoDetail{}).Contributors
	switch {
	case key.Matches(km, p.keys.Up):
		p.cursor = clamp(p.cursor-1, len(contributors))
	case key.Matches(km, p.keys.Down):
		p.cursor = clamp(p.cursor+1, len(contributors))
	case key.Matches(km, p.keys.Open):
		if len(contributors) > 0 {
			p.screen.OpenUser(contributors[p.cursor].Login)
		}
	case key.Matches(km, p.keys.Reload):
		return p.screen.Retry()
	}
	return nil
}

func (p *repoPage) View(width, height int, spin string) string {
	st := p.screen.State().Current()
	return renderResource(st.Resource, spin, "loading "+p.screen.ID().String()+"…", func(d github.RepoDetail) string {
		var b strings.Builder
		b.WriteString(titleStyle.Render(d.Repo.FullName))
		b.WriteString(" " + starStyle.Render(fmt.Sprintf("★ %d", d.Repo.Stars)) + "\n")
		if d.Repo.Description != "" {
			b.WriteString(statusStyle.Render(truncate(d.Repo.Description, width)) + "\n")
		}
		b.WriteString("\n" + labelStyle.Render("Contributors") + "\n")
		if len(d.Contributors) == 0 {
			b.WriteString(statusStyle.Render("none"))
			return b.String()
		}
		start, end := window(len(d.Contributors), p.cursor, height-5)
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			c := d.Contributors[i]
			prefix := "  "
			if i == p.cursor {
				prefix = cursorStyle.Render("> ")
			}
			lines = append(lines, prefix+ownerStyle.Render(c.Login)+" "+countStyle.Render(fmt.Sprintf("%d contributions", c.Contributions)))
		}
		b.WriteString(strings.Join(lines, "\n"))
		return b.String()
	})
}

func (p *repoPage) Help() bindings {
	return bindings{p.keys.Up, p.keys.Down, p.keys.Open, p.keys.Reload}
}

// userPage wraps the user screen and filters the user's repositories
// locally.
type userPage struct {
	screen *screen.UserScreen
	keys   keyMap
	filter textinput.Model
	cursor int
}

func newUserPage(s *screen.UserScreen, keys keyMap) *userPage {
	inp := textinput.New()
	inp.Placeholder = "filter repositories"
	inp.Prompt = "/ "
	p := &userPage{screen: s, keys: keys, filter: inp}
	s.State().Observe(func(screen.UserState) {
		p.cursor = clamp(p.cursor, len(p.visible()))
	})
	return p
}

func (p *userPage) visible() []github.Repo {
	repos := p.screen.State().Current().Resource.ValueOr(github.UserDetail{}).Repos
	return filterRepos(repos, p.filter.Value())
}

func (p *userPage) Title() string { return p.screen.Login() }

func (p *userPage) Init() tea.Cmd { return p.screen.Init() }

func (p *userPage) Capturing() bool { return p.filter.Focused() }

func (p *userPage) Actions() *state.Actions[screen.Action] { return p.screen.Actions() }

func (p *userPage) Close() { p.screen.Close() }

func (p *userPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if p.filter.Focused() {
		if ok && key.Matches(km, p.keys.Submit) {
			p.filter.Blur()
			return nil
		}
		if ok && key.Matches(km, p.keys.Cancel) {
			p.filter.Blur()
			p.filter.SetValue("")
			p.cursor = 0
			return nil
		}
		var cmd tea.Cmd
		p.filter, cmd = p.filter.Update(msg)
		p.cursor = 0
		return cmd
	}
	if !ok {
		return nil
	}
	repos := p.visible()
	switch {
	case key.Matches(km, p.keys.Filter):
		return p.filter.Focus()
	case key.Matches(km, p.keys.Up):
		p.cursor = clamp(p.cursor-1, len(repos))
	case key.Matches(km, p.keys.Down):
		p.cursor = clamp(p.cursor+1, len(repos))
	case key.Matches(km, p.keys.Open):
		if len(repos) > 0 {
			p.screen.OpenRepo(repos[p.cursor].Key())
		}
	case key.Matches(km, p.keys.Reload):
		return p.screen.Retry()
	}
	return nil
}

func (p *userPage) View(width, height int, spin string) string {
	st := p.screen.State().Current()
	return renderResource(st.Resource, spin, "loading "+p.screen.Login()+"…", func(d github.UserDetail) string {
		var b strings.Builder
		b.WriteString(titleStyle.Render(d.User.Login))
		if d.User.Name != "" {
			b.WriteString(" " + valueStyle.Render(d.User.Name))
		}
		b.WriteString("\n")
		if d.User.Company != "" {
			b.WriteString(labelStyle.Render("company ") + valueStyle.Render(d.User.Company) + "\n")
		}
		if d.User.Blog != "" {
			b.WriteString(labelStyle.Render("blog    ") + valueStyle.Render(d.User.Blog) + "\n")
		}
		if p.filter.Focused() || p.filter.Value() != "" {
			b.WriteString(p.filter.View() + "\n")
		}
		b.WriteString("\n")
		repos := filterRepos(d.Repos, p.filter.Value())
		if len(repos) == 0 {
			b.WriteString(statusStyle.Render("no repositories"))
			return b.String()
		}
		rows := height - lipgloss.Height(b.String())
		start, end := window(len(repos), p.cursor, rows)
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			lines = append(lines, repoLine(repos[i], i == p.cursor, width))
		}
		b.WriteString(strings.Join(lines, "\n"))
		return b.String()
	})
}

func (p *userPage) Help() bindings {
	if p.filter.Focused() {
		return bindings{p.keys.Submit, p.keys.Cancel}
	}
	return bindings{p.keys.Filter, p.keys.Up, p.keys.Down, p.keys.Open, p.keys.Reload}
}
