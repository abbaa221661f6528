package search

import "github.com/prjtool/prj/internal/registry"

// OutcomeKind classifies a match list by size.
type OutcomeKind int

const (
	// NoMatch means nothing matched (or the user abandoned a selection).
	NoMatch OutcomeKind = iota

	// SingleMatch means exactly one project matched. Whether to act on it
	// directly or confirm first is the caller's policy.
	SingleMatch

	// MultipleMatches means the caller must get an explicit choice from the
	// user. Picking a default silently is never acceptable here; it would
	// open the wrong project.
	MultipleMatches
)

// Outcome is the result of the zero/one/many decision.
type Outcome struct {
	Kind       OutcomeKind
	Project    registry.Project   // set when Kind == SingleMatch
	Candidates []registry.Project // set when Kind == MultipleMatches
}

// Select classifies an ordered match list. It is total and has no side
// effects: len 0 maps to NoMatch, len 1 to SingleMatch, anything more to
// MultipleMatches with the order preserved.
func Select(matches []registry.Project) Outcome {
	switch len(matches) {
	case 0:
		return Outcome{Kind: NoMatch}
	case 1:
		return Outcome{Kind: SingleMatch, Project: matches[0]}
	default:
		return Outcome{Kind: MultipleMatches, Candidates: matches}
	}
}
