package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/ghbrowse/internal/fixtures"
	"github.com/jask/ghbrowse/internal/github"
)

func names(repos []github.Repo) []string {
	out := make([]string, len(repos))
	for i, r := range repos {
		out[i] = r.Name
	}
	return out
}

func TestFilterRepos(t *testing.T) {
	owner := github.Owner{Login: "o"}
	repos := []github.Repo{
		fixtures.Repo(1, "lipgloss", "", "", owner, 0),
		fixtures.Repo(2, "bubbles", "", "", owner, 0),
		fixtures.Repo(3, "bubbletea", "", "", owner, 0),
		fixtures.Repo(4, "bubble", "", "", owner, 0),
	}

	cases := []struct {
		query string
		want  []string
	}{
		{"", []string{"lipgloss", "bubbles", "bubbletea", "bubble"}},
		{"  ", []string{"lipgloss", "bubbles", "bubbletea", "bubble"}},
		{"BUBBLE", []string{"bubbles", "bubbletea", "bubble"}},
		{"lipglos", []string{"lipgloss"}},
		{"bubblez", []string{"bubbles", "bubble", "bubbletea"}},
		{"zzz", []string{}},
	}
	for _, c := range cases {
		t.Run(c.query, func(t *testing.T) {
			require.Equal(t, c.want, names(filterRepos(repos, c.query)))
		})
	}
}

func TestFilterReposCountsRunes(t *testing.T) {
	owner := github.Owner{Login: "o"}
	repos := []github.Repo{
		fixtures.Repo(1, "日本", "", "", owner, 0),
		fixtures.Repo(2, "café", "", "", owner, 0),
	}
	require.Empty(t, filterRepos(repos, "x"))
	require.Equal(t, []string{"café"}, names(filterRepos(repos, "cafx")))
}

func TestSimilarity(t *testing.T) {
	require.Equal(t, 1.0, similarity("", ""))
	require.Equal(t, 1.0, similarity("abc", "abc"))
	require.InDelta(t, 0.8, similarity("viper", "vipr"), 1e-9)
	require.Equal(t, 0.0, similarity("abc", "xyz"))
	require.InDelta(t, 0.75, similarity("café", "cafx"), 1e-9)
	require.InDelta(t, 2.0/3, similarity("日本語", "日本x"), 1e-9)
	require.Equal(t, 0.0, similarity("日本", "x"))
}

func TestWindow(t *testing.T) {
	start, end := window(5, 4, 10)
	require.Equal(t, 0, start)
	require.Equal(t, 5, end)

	start, end = window(20, 0, 5)
	require.Equal(t, [2]int{0, 5}, [2]int{start, end})

	start, end = window(20, 10, 5)
	require.Equal(t, [2]int{8, 13}, [2]int{start, end})

	start, end = window(20, 19, 5)
	require.Equal(t, [2]int{15, 20}, [2]int{start, end})
}
