// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the Google Custom Search JSON API and returns
// ranked candidate links.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/docgather/internal/httputil"
	"github.com/pdiddy/docgather/pkg/types"
)

// customSearchBase is the Custom Search JSON API endpoint. Declared as a var
// so tests can substitute an httptest server.
var customSearchBase = "https://www.googleapis.com/customsearch/v1"

// Query holds the parameters of one document search.
type Query struct {
	// Topic is the main subject, e.g. "Provincetown MA 2024".
	Topic string

	// Suffix narrows the topic, e.g. "Local Election Voter Turnout".
	Suffix string

	// FileTypes restricts results to these extensions via filetype:
	// operators. Empty means a plain link search.
	FileTypes []string
}

// Client queries the Custom Search API. Credentials are fixed at
// construction; the zero Timeout of the supplied http.Client is respected.
type Client struct {
	HTTP     *http.Client
	APIKey   string
	EngineID string
}

// Terms assembles the provider query string:
//
//	topic suffix (filetype:pdf OR filetype:csv)
//
// with the parenthesized clause omitted when FileTypes is empty.
func (q Query) Terms() string {
	terms := strings.TrimSpace(q.Topic + " " + q.Suffix)
	if len(q.FileTypes) == 0 {
		return terms
	}
	clauses := make([]string, len(q.FileTypes))
	for i, ft := range q.FileTypes {
		clauses[i] = "filetype:" + ft
	}
	return terms + " (" + strings.Join(clauses, " OR ") + ")"
}

// Search issues one request capped at cfg.MaxResults and returns the result
// links in provider rank order. Items without a link field are skipped;
// duplicates are returned as-is. A provider error is a real error at this
// layer; the pipeline decides whether to swallow it.
func (c *Client) Search(ctx context.Context, query Query, cfg types.SearchConfig) ([]string, error) {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	params := url.Values{
		"key": {c.APIKey},
		"cx":  {c.EngineID},
		"q":   {query.Terms()},
		"num": {strconv.Itoa(maxResults)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, customSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(c.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Custom Search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Custom Search returned HTTP %d", resp.StatusCode)
	}

	var csr customSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&csr); err != nil {
		return nil, fmt.Errorf("parsing Custom Search response: %w", err)
	}

	links := make([]string, 0, len(csr.Items))
	for _, item := range csr.Items {
		if item.Link == "" {
			continue
		}
		links = append(links, item.Link)
	}
	return links, nil
}

// FindLinks performs a plain link search for a topic, with no filetype
// restriction.
func (c *Client) FindLinks(ctx context.Context, topic string, cfg types.SearchConfig) ([]string, error) {
	return c.Search(ctx, Query{Topic: topic}, cfg)
}

type customSearchResponse struct {
	Items []customSearchItem `json:"items"`
}

type customSearchItem struct {
	Link string `json:"link"`
}
