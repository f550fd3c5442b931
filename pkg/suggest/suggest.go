// Package suggest finds names that look like a mistyped input.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score required for a candidate to be suggested.
const threshold = 0.5

type match struct {
	name  string
	score float64
}

// Closest returns up to n candidates similar to target, best first. Ties are ordered by name.
// Duplicate candidates are reported once.
func Closest(target string, candidates []string, n int) []string {
	if target == "" || n <= 0 {
		return []string{}
	}
	target = strings.TrimLeft(target, "-")

	var matches []match
	for _, name := range candidates {
		if slices.ContainsFunc(matches, func(m match) bool { return m.name == name }) {
			continue
		}
		if score := similarity(target, strings.TrimLeft(name, "-")); score > threshold {
			matches = append(matches, match{name: name, score: score})
		}
	}
	slices.SortFunc(matches, func(a, b match) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(n, len(matches)))
	for _, m := range matches[:min(n, len(matches))] {
		result = append(result, m.name)
	}
	return result
}

// similarity scores a against b between 0 and 1, case-insensitively. A prefix scores 0.9.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	switch {
	case a == b:
		return 1
	case a == "" || b == "":
		return 0
	case strings.HasPrefix(b, a):
		return 0.9
	}
	ra, rb := []rune(a), []rune(b)
	return 1 - float64(distance(ra, rb))/float64(max(len(ra), len(rb)))
}

// distance is the Levenshtein edit distance, computed with two rows.
func distance(a, b []rune) int {
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
