// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "docgather/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the document search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of links to request (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// FileTypes restricts document search to these extensions
	// (default: pdf, csv, txt). Empty means a plain link search.
	FileTypes []string `json:"file_types" yaml:"file_types"`
}

// GatherConfig holds settings for the gathering pipeline.
type GatherConfig struct {
	Search SearchConfig `json:"search" yaml:"search"`

	// WorkDir is the transient working directory for downloaded
	// documents. It is recreated at the start of every run and removed
	// at the end, whatever the outcome.
	WorkDir string `json:"work_dir" yaml:"work_dir"`

	// Workers bounds how many candidate URLs are processed
	// concurrently (default 4).
	Workers int `json:"workers" yaml:"workers"`

	// FetchTimeout bounds the fetch of a single document. Expiry is
	// treated like any other fetch failure: the URL is skipped.
	FetchTimeout time.Duration `json:"fetch_timeout" yaml:"fetch_timeout"`
}

// AnswerConfig holds settings for the document answering stage.
type AnswerConfig struct {
	// Model is the generative model identifier (e.g. "gemini-1.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the generative API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}
