// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the docgather pipeline.
package types

// Stage identifies the pipeline stage where a candidate document was dropped
// or degraded.
type Stage string

const (
	StageSearch Stage = "search"
	StageFetch  Stage = "fetch"
	StageAnswer Stage = "answer"
)

// Skip records a candidate that contributed no entry (fetch failure) or an
// empty answer (answering failure). The pipeline never aborts a run for one
// of these; it records the reason and moves on.
type Skip struct {
	// URL is the candidate source URL, empty for search-level failures.
	URL string `json:"url" yaml:"url"`

	// Stage is where the candidate dropped out.
	Stage Stage `json:"stage" yaml:"stage"`

	// Reason is the underlying failure, as text.
	Reason string `json:"reason" yaml:"reason"`
}

// RunResult is the output of one gathering run. Links and Answers are
// index-aligned over the candidates whose fetch succeeded, in the original
// search order. An empty answer means the document was retrieved but no
// answer could be produced for it.
type RunResult struct {
	Links   []string `json:"links" yaml:"links"`
	Answers []string `json:"answers" yaml:"answers"`

	// Skipped lists every candidate that was dropped or answered empty,
	// with the stage and reason.
	Skipped []Skip `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}
