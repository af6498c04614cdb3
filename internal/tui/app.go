// Package tui is the bubbletea front end. It keeps a navigation stack of
// screens, applies fetch completions on the Update goroutine and turns
// screen actions into navigation.
package tui

import (
	"context"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/jask/ghbrowse/internal/github"
	"github.com/jask/ghbrowse/internal/screen"
	"github.com/jask/ghbrowse/internal/state"
)

// Services are the fetch collaborators screens are built with.
type Services struct {
	Search screen.SearchSource
	Repos  screen.RepoLoader
	Users  screen.UserLoader
}

// Start picks the screen shown first. The search screen is always at the
// bottom of the stack; Repo or User, when set, open on top of it.
type Start struct {
	Query  string
	Repo   github.RepoID
	User   string
	Locale language.Tag
}

// App ties together the screens.
type App struct {
	ctx      context.Context
	services Services
	keys     keyMap
	help     help.Model
	spinner  spinner.Model

	stack   []page
	detach  func()
	pending []screen.Action
	cmds    []tea.Cmd

	status string // transient error, cleared by the next key
	width  int
	height int
	closed bool
}

var _ screen.Navigator = (*App)(nil)

func New(ctx context.Context, services Services, start Start) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinStyle
	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpDescStyle

	a := &App{
		ctx:      ctx,
		services: services,
		keys:     newKeyMap(),
		help:     h,
		spinner:  sp,
	}
	search := screen.NewSearchScreen(ctx, services.Search, screen.WithLocale(start.Locale))
	a.push(newSearchPage(search, a.keys, start.Query))
	switch {
	case start.Repo.Owner != "":
		a.NavigateToRepo(start.Repo)
	case start.User != "":
		a.NavigateToUser(start.User)
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.flush(nil))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.closed {
		return a, nil
	}
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	case state.Completion:
		if !m.Apply() {
			log.Printf("tui: dropped completion for closed scope %s", m.Scope)
		}
		return a, a.flush(nil)
	case tea.KeyMsg:
		return a, a.flush(a.handleKey(m))
	}
	return a, a.flush(a.top().Update(msg))
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	a.status = ""
	top := a.top()
	if m.String() == "ctrl+c" {
		return a.quit()
	}
	if top.Capturing() {
		return top.Update(m)
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		return a.quit()
	case key.Matches(m, a.keys.Back):
		a.pop()
		return nil
	}
	return top.Update(m)
}

// flush dispatches the actions collected from the active screen and
// batches the commands that navigation queued with cmd.
func (a *App) flush(cmd tea.Cmd) tea.Cmd {
	for len(a.pending) > 0 {
		act := a.pending[0]
		a.pending = a.pending[1:]
		screen.Dispatch(a, act)
	}
	cmds := append(a.cmds, cmd)
	a.cmds = nil
	return tea.Batch(cmds...)
}

func (a *App) top() page { return a.stack[len(a.stack)-1] }

// push opens p over the current page. Only the top page has its actions
// attached; a covered screen's emissions are lost.
func (a *App) push(p page) {
	a.stack = append(a.stack, p)
	a.attachTop()
	a.cmds = append(a.cmds, p.Init())
}

func (a *App) pop() {
	if len(a.stack) <= 1 {
		return
	}
	top := a.top()
	a.stack = a.stack[:len(a.stack)-1]
	a.attachTop()
	top.Close()
}

func (a *App) attachTop() {
	if a.detach != nil {
		a.detach()
	}
	a.detach = a.top().Actions().Attach(func(act screen.Action) {
		a.pending = append(a.pending, act)
	})
}

func (a *App) quit() tea.Cmd {
	a.Close()
	return tea.Quit
}

// Close closes every open screen, top first. In-flight fetches are
// cancelled and their completions dropped.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if a.detach != nil {
		a.detach()
		a.detach = nil
	}
	for i := len(a.stack) - 1; i >= 0; i-- {
		a.stack[i].Close()
	}
	log.Printf("tui closed %d screens", len(a.stack))
}

func (a *App) NavigateToRepo(id github.RepoID) {
	a.push(newRepoPage(screen.NewRepoScreen(a.ctx, id, a.services.Repos), a.keys))
}

func (a *App) NavigateToUser(login string) {
	a.push(newUserPage(screen.NewUserScreen(a.ctx, login, a.services.Users), a.keys))
}

func (a *App) ShowError(message string) {
	a.status = message
}

func (a *App) View() string {
	if a.closed {
		return ""
	}
	top := a.top()
	header := a.renderHeader()

	helpKeys := top.Help()
	if !top.Capturing() {
		if len(a.stack) > 1 {
			helpKeys = append(helpKeys, a.keys.Back)
		}
		helpKeys = append(helpKeys, a.keys.Quit)
	}
	footer := footerStyle.Width(a.width).Render(a.help.View(helpKeys))

	var status string
	if a.status != "" {
		status = errorBarStyle.Width(a.width).Render(a.status)
	} else {
		status = statusBarStyle.Width(a.width).Render(top.Title())
	}

	bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer) - 2
	body := lipgloss.NewStyle().Padding(1, 2).Render(top.View(max(a.width-4, 0), bodyHeight, a.spinner.View()))
	if a.height > 0 {
		body = lipgloss.PlaceVertical(max(a.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer), 0), lipgloss.Top, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, footer)
}

func (a *App) renderHeader() string {
	crumbs := make([]string, len(a.stack))
	for i, p := range a.stack {
		crumbs[i] = p.Title()
	}
	line := headerAppStyle.Render("ghbrowse") + crumbStyle.Render("  "+strings.Join(crumbs, " › "))
	return headerBarStyle.Width(a.width).Render(line)
}
