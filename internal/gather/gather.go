// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gather orchestrates one document gathering run: search for
// candidate documents, fetch each one into a transient working area, and
// answer the user's question against each document.
//
// Failure isolation is per candidate. A URL that cannot be fetched
// contributes nothing to the output; a document that cannot be answered
// contributes an empty answer. Neither aborts the batch. Every dropped or
// degraded candidate is recorded in RunResult.Skipped.
package gather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/docgather/internal/answer"
	"github.com/pdiddy/docgather/internal/search"
	"github.com/pdiddy/docgather/pkg/types"
)

const (
	defaultWorkDir = "temp"
	defaultWorkers = 4
)

// defaultFileTypes is the document-oriented search restriction used when the
// config names none.
var defaultFileTypes = []string{"pdf", "csv", "txt"}

// Searcher finds candidate document links for a query. *search.Client
// implements it; tests substitute stubs.
type Searcher interface {
	Search(ctx context.Context, query search.Query, cfg types.SearchConfig) ([]string, error)
}

// Pipeline wires the stages of a gathering run.
type Pipeline struct {
	Searcher Searcher
	Answerer answer.Answerer

	// HTTP is the client used to fetch candidate documents.
	HTTP *http.Client
}

// slot is the per-candidate outcome, indexed by original search position so
// output order matches provider rank regardless of worker completion order.
type slot struct {
	link    string
	answer  string
	fetched bool
	skips   []types.Skip
}

// Run executes one gathering run and returns the aligned (links, answers)
// sequences. The working area named by cfg.WorkDir is recreated at the start
// and removed on every exit path. Only structural failures (the working area
// itself) are returned as errors; per-candidate failures degrade into
// RunResult.Skipped entries.
func (p *Pipeline) Run(ctx context.Context, topic, query, question string, cfg types.GatherConfig, progress io.Writer) (types.RunResult, error) {
	result := types.RunResult{Links: []string{}, Answers: []string{}}

	searchCfg := cfg.Search
	if len(searchCfg.FileTypes) == 0 {
		searchCfg.FileTypes = defaultFileTypes
	}

	links, err := p.Searcher.Search(ctx, search.Query{
		Topic:     topic,
		Suffix:    query,
		FileTypes: searchCfg.FileTypes,
	}, searchCfg)
	if err != nil {
		// A provider error degrades to an empty candidate list; the run
		// itself still succeeds.
		fmt.Fprintf(progress, "warning: search failed: %v\n", err)
		result.Skipped = append(result.Skipped, types.Skip{Stage: types.StageSearch, Reason: err.Error()})
		links = nil
	}

	workDir := cfg.WorkDir
	if workDir == "" {
		workDir = defaultWorkDir
	}
	if err := os.RemoveAll(workDir); err != nil {
		return result, fmt.Errorf("clearing working area %s: %w", workDir, err)
	}
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return result, fmt.Errorf("creating working area %s: %w", workDir, err)
	}
	defer os.RemoveAll(workDir)

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	var mu sync.Mutex
	logf := func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(progress, format, args...)
	}

	slots := make([]slot, len(links))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, link := range links {
		g.Go(func() error {
			slots[i] = p.processOne(ctx, i, link, question, workDir, cfg, logf)
			return nil
		})
	}
	g.Wait()

	answered := 0
	for _, s := range slots {
		result.Skipped = append(result.Skipped, s.skips...)
		if !s.fetched {
			continue
		}
		result.Links = append(result.Links, s.link)
		result.Answers = append(result.Answers, s.answer)
		if s.answer != "" {
			answered++
		}
	}

	fmt.Fprintf(progress, "\nGather summary: %d candidates, %d retrieved, %d answered\n",
		len(links), len(result.Links), answered)
	return result, nil
}

// processOne fetches a single candidate into its own scratch subdirectory
// and answers the question against the downloaded bytes. Each candidate gets
// an index-scoped subdirectory so concurrent workers never share a path.
func (p *Pipeline) processOne(ctx context.Context, idx int, link, question, workDir string, cfg types.GatherConfig, logf func(string, ...any)) slot {
	s := slot{link: link}

	scratch := filepath.Join(workDir, strconv.Itoa(idx))
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		logf("failed:  %s (%v)\n", link, err)
		s.skips = append(s.skips, types.Skip{URL: link, Stage: types.StageFetch, Reason: err.Error()})
		return s
	}

	fetchCtx := ctx
	if cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
	}

	data, err := p.download(fetchCtx, link, scratch, cfg.Search.UserAgent)
	if err != nil {
		// Timeout or any other fetch failure: the candidate is dropped
		// entirely, contributing neither a link nor an answer.
		logf("failed:  %s (%v)\n", link, err)
		s.skips = append(s.skips, types.Skip{URL: link, Stage: types.StageFetch, Reason: err.Error()})
		return s
	}
	s.fetched = true

	text, err := p.Answerer.Answer(ctx, question, data)
	if err != nil {
		logf("no answer: %s (%v)\n", link, err)
		s.skips = append(s.skips, types.Skip{URL: link, Stage: types.StageAnswer, Reason: err.Error()})
		return s
	}
	s.answer = text
	logf("answered: %s\n", link)
	return s
}
