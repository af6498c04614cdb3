package tui

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/ghbrowse/internal/github"
)

// minSimilarity is the lowest name similarity a repo needs to survive a
// filter that it does not contain as a substring.
const minSimilarity = 0.5

type ranked struct {
	repo  github.Repo
	score float64
}

// filterRepos ranks repos against query by name. Substring matches score
// 1 and keep their relative order; the rest are scored by edit distance
// and dropped below minSimilarity. An empty query returns repos as-is.
func filterRepos(repos []github.Repo, query string) []github.Repo {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return repos
	}
	hits := make([]ranked, 0, len(repos))
	for _, r := range repos {
		name := strings.ToLower(r.Name)
		score := 1.0
		if !strings.Contains(name, q) {
			score = similarity(name, q)
		}
		if score >= minSimilarity {
			hits = append(hits, ranked{repo: r, score: score})
		}
	}
	slices.SortStableFunc(hits, func(a, b ranked) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})
	out := make([]github.Repo, len(hits))
	for i, h := range hits {
		out[i] = h.repo
	}
	return out
}

func similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
