// Package prompt suggests registered names for misspelled queries using
// bounded edit distance.
//
// A candidate name is a hint when its Levenshtein distance to the query is at
// most (len(query)+2)/3, the cutoff clang uses for typo correction. Hints are
// ordered by increasing distance, ties broken by the order the names were
// enumerated in, and capped at MaxHints per query.
package prompt

import "sort"

// DefaultMaxHints is the default cap on hints returned per query.
const DefaultMaxHints = 2

// Prompter ranks candidate names against a query by edit distance.
// The zero value is not usable; use New.
type Prompter struct {
	maxHints int
}

// New creates a Prompter returning at most maxHints names per query.
// Values <= 0 fall back to DefaultMaxHints.
func New(maxHints int) *Prompter {
	if maxHints <= 0 {
		maxHints = DefaultMaxHints
	}
	return &Prompter{maxHints: maxHints}
}

// MaxHints returns the per-query hint cap.
func (p *Prompter) MaxHints() int {
	return p.maxHints
}

// MaxDistance returns the edit-distance cutoff for a query.
func MaxDistance(query string) int {
	return (len(query) + 2) / 3
}

// Hints returns the names whose edit distance to query is within
// MaxDistance(query), nearest first, capped at MaxHints. Ties keep the
// order of the names slice.
func (p *Prompter) Hints(query string, names []string) []string {
	limit := MaxDistance(query)

	type candidate struct {
		name string
		dist int
	}
	candidates := make([]candidate, 0, p.maxHints)
	for _, name := range names {
		// Distance is at least the length difference; skip the DP when the
		// candidate can't possibly qualify.
		if diff := len(name) - len(query); diff > limit || -diff > limit {
			continue
		}
		if d := Distance(query, name); d <= limit {
			candidates = append(candidates, candidate{name: name, dist: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	if len(candidates) > p.maxHints {
		candidates = candidates[:p.maxHints]
	}

	hints := make([]string, len(candidates))
	for i, c := range candidates {
		hints[i] = c.name
	}
	return hints
}

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of byte insertions, deletions, and substitutions turning
// one into the other.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
