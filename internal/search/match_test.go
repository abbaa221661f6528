package search

import (
	"reflect"
	"testing"

	"github.com/prjtool/prj/internal/registry"
)

// names stays nil for an empty input so it compares equal to nil wants.
func names(projects []registry.Project) []string {
	var out []string
	for _, p := range projects {
		out = append(out, p.Name)
	}
	return out
}

func projectsFromNames(ns ...string) []registry.Project {
	out := make([]registry.Project, 0, len(ns))
	for _, n := range ns {
		out = append(out, registry.Project{Name: n, Path: "/" + n})
	}
	return out
}

func TestFilterSubstring(t *testing.T) {
	pool := []registry.Project{
		{Name: "alpha", Path: "/a", Company: "acme"},
		{Name: "beta", Path: "/b", Company: "acme"},
		{Name: "gamma", Path: "/g"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"alpha", []string{"alpha"}},
		{"ALPHA", []string{"alpha"}},
		// "a" appears in every name, path, or company.
		{"a", []string{"alpha", "beta", "gamma"}},
		// path match
		{"/g", []string{"gamma"}},
		// company match; gamma has no company and never matches on it
		{"acme", []string{"alpha", "beta"}},
		{"zzz", nil},
		{"", []string{"alpha", "beta", "gamma"}},
	}
	for _, tc := range tests {
		got := names(FilterSubstring(pool, tc.query))
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("FilterSubstring(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

// Substring results must be exactly the matching subsequence of registry
// order, never re-ranked.
func TestFilterSubstringPreservesOrder(t *testing.T) {
	pool := projectsFromNames("xya", "a", "za")
	got := names(FilterSubstring(pool, "a"))
	want := []string{"xya", "a", "za"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilterCompany(t *testing.T) {
	pool := []registry.Project{
		{Name: "alpha", Company: "acme"},
		{Name: "beta", Company: "initech"},
		{Name: "gamma", Company: "acme"},
	}

	got := names(FilterCompany(pool, "acme"))
	if !reflect.DeepEqual(got, []string{"alpha", "gamma"}) {
		t.Errorf("FilterCompany(acme) = %v", got)
	}
	if got := FilterCompany(pool, ""); len(got) != 3 {
		t.Errorf("empty company should keep the pool, got %d", len(got))
	}
}

func TestFilterFuzzySubsequence(t *testing.T) {
	pool := projectsFromNames("alpha", "beta", "gamma")

	tests := []struct {
		query string
		want  []string
	}{
		{"bt", []string{"beta"}},
		{"BT", []string{"beta"}},
		{"aa", []string{"alpha", "gamma"}}, // equal runs; alpha's match starts earlier
		{"q", nil},
		{"", []string{"alpha", "beta", "gamma"}},
		{"alphax", nil},
	}
	for _, tc := range tests {
		got := names(FilterFuzzy(pool, tc.query))
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("FilterFuzzy(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestFilterFuzzyRanking(t *testing.T) {
	tests := []struct {
		name  string
		pool  []string
		query string
		want  []string
	}{
		{
			name:  "longer contiguous run wins over earlier start",
			pool:  []string{"axxb", "zab"},
			query: "ab",
			want:  []string{"zab", "axxb"},
		},
		{
			name:  "earlier start breaks run ties",
			pool:  []string{"xaby", "abxx"},
			query: "ab",
			want:  []string{"abxx", "xaby"},
		},
		{
			name:  "shorter name breaks start ties",
			pool:  []string{"abcd", "abc"},
			query: "ab",
			want:  []string{"abc", "abcd"},
		},
		{
			name:  "full ties keep registry order",
			pool:  []string{"abx", "aby"},
			query: "ab",
			want:  []string{"abx", "aby"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := names(FilterFuzzy(projectsFromNames(tc.pool...), tc.query))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("FilterFuzzy(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

// The empty query keeps registry order exactly; name length must not leak
// into the ordering before anything is typed.
func TestFilterFuzzyEmptyQueryKeepsRegistryOrder(t *testing.T) {
	pool := projectsFromNames("dashboard", "ox", "billing", "ab")
	got := names(FilterFuzzy(pool, ""))
	want := []string{"dashboard", "ox", "billing", "ab"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterFuzzy(\"\") = %v, want %v", got, want)
	}

	// The result is a copy, not the pool itself.
	out := FilterFuzzy(pool, "")
	out[0], out[1] = out[1], out[0]
	if pool[0].Name != "dashboard" {
		t.Error("empty-query result aliases the candidate pool")
	}
}

// Typing one more character can only narrow the match set, never grow it.
func TestFilterFuzzyMonotonic(t *testing.T) {
	pool := projectsFromNames(
		"alpha", "alphabet", "beta", "gamma", "api-gateway",
		"dashboard", "data-pipeline", "backend", "billing",
	)

	queries := []string{"a", "al", "alp", "b", "ba", "bac", "dp", "dpl", "ag", "agw"}
	for _, q := range queries {
		for i := 1; i < len(q); i++ {
			shorter := matchSet(pool, q[:i])
			longer := matchSet(pool, q[:i+1])
			for name := range longer {
				if _, ok := shorter[name]; !ok {
					t.Errorf("query %q matched %q but prefix %q did not", q[:i+1], name, q[:i])
				}
			}
		}
	}
}

func matchSet(pool []registry.Project, query string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, p := range FilterFuzzy(pool, query) {
		out[p.Name] = struct{}{}
	}
	return out
}

func TestFuzzyMatchScores(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		ok      bool
		run     int
		start   int
	}{
		{"beta", "bt", true, 1, 0},
		{"beta", "bet", true, 3, 0},
		{"beta", "eta", true, 3, 1},
		{"beta", "beta", true, 4, 0},
		{"beta", "tb", false, 0, 0},
		{"api-gateway", "agw", true, 1, 0},
		// the "bc" run inside the alignment is what counts
		{"xaxbcy", "abc", true, 2, 1},
	}
	for _, tc := range tests {
		score, ok := fuzzyMatch(tc.name, tc.query)
		if ok != tc.ok {
			t.Errorf("fuzzyMatch(%q, %q) ok = %v, want %v", tc.name, tc.query, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if score.run != tc.run || score.start != tc.start {
			t.Errorf("fuzzyMatch(%q, %q) = run %d start %d, want run %d start %d",
				tc.name, tc.query, score.run, score.start, tc.run, tc.start)
		}
	}
}
