// Package search implements matching and disambiguation over registry
// projects.
//
// Two modes exist on purpose. The search command uses an unranked,
// order-preserving substring filter over all searchable fields; the
// interactive picker uses a ranked subsequence match over names that is safe
// to re-run on every keystroke. Both are pure functions of the query and the
// candidate pool.
package search

import (
	"sort"
	"strings"

	"github.com/prjtool/prj/internal/registry"
)

// FilterCompany restricts the candidate pool to projects tagged with the
// given company. An empty company keeps the pool unchanged.
func FilterCompany(projects []registry.Project, company string) []registry.Project {
	if company == "" {
		return projects
	}
	var out []registry.Project
	for _, p := range projects {
		if p.Company == company {
			out = append(out, p)
		}
	}
	return out
}

// FilterSubstring returns the projects whose name, path, or company contains
// the query, case-insensitively. The result preserves registry order and is
// deliberately unranked.
func FilterSubstring(projects []registry.Project, query string) []registry.Project {
	q := strings.ToLower(query)
	var out []registry.Project
	for _, p := range projects {
		if substringMatch(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func substringMatch(p registry.Project, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Path), q) {
		return true
	}
	return p.Company != "" && strings.Contains(strings.ToLower(p.Company), q)
}

// FilterFuzzy returns the projects whose name contains the query as a
// case-insensitive subsequence, best match first. An empty query matches
// everything in registry order.
//
// Ranking: longest contiguous run of matched characters, then earliest match
// start, then shortest name. Remaining ties keep registry order, so typing an
// extra character only ever narrows or reorders the previous result set.
func FilterFuzzy(projects []registry.Project, query string) []registry.Project {
	if query == "" {
		// Nothing typed yet; no score exists to rank by.
		out := make([]registry.Project, len(projects))
		copy(out, projects)
		return out
	}

	type scored struct {
		project registry.Project
		score   fuzzyScore
	}

	var matches []scored
	for _, p := range projects {
		if score, ok := fuzzyMatch(p.Name, query); ok {
			matches = append(matches, scored{project: p, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i].score, matches[j].score
		if a.run != b.run {
			return a.run > b.run
		}
		if a.start != b.start {
			return a.start < b.start
		}
		return a.nameLen < b.nameLen
	})

	out := make([]registry.Project, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.project)
	}
	return out
}

type fuzzyScore struct {
	run     int // longest contiguous run of matched characters
	start   int // position of the first matched character
	nameLen int
}

// fuzzyMatch reports whether query is a subsequence of name. It greedily
// aligns the query from every feasible starting position and keeps the best
// score: longest run first, then earliest start. Candidate sets are small
// (human-entered names), so the quadratic scan is fine.
func fuzzyMatch(name, query string) (fuzzyScore, bool) {
	n := []rune(strings.ToLower(name))
	q := []rune(strings.ToLower(query))

	if len(q) == 0 {
		return fuzzyScore{nameLen: len(n)}, true
	}
	if len(q) > len(n) {
		return fuzzyScore{}, false
	}

	best := fuzzyScore{run: -1}
	for start := 0; start <= len(n)-len(q); start++ {
		if n[start] != q[0] {
			continue
		}
		run, ok := greedyAlign(n, q, start)
		if !ok {
			continue
		}
		if run > best.run {
			best = fuzzyScore{run: run, start: start, nameLen: len(n)}
		}
		// Later starts can only tie or lose on the start criterion.
	}

	if best.run < 0 {
		return fuzzyScore{}, false
	}
	return best, true
}

// greedyAlign matches query against name[start:] left to right and returns
// the longest contiguous run within that alignment.
func greedyAlign(name, query []rune, start int) (int, bool) {
	qi := 0
	run, maxRun := 0, 0
	prev := -2
	for i := start; i < len(name) && qi < len(query); i++ {
		if name[i] != query[qi] {
			continue
		}
		if i == prev+1 {
			run++
		} else {
			run = 1
		}
		if run > maxRun {
			maxRun = run
		}
		prev = i
		qi++
	}
	if qi < len(query) {
		return 0, false
	}
	return maxRun, true
}
