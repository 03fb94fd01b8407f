// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docgather/pkg/types"
)

func TestQueryTerms(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "topic suffix and filetypes",
			query: Query{Topic: "Provincetown MA 2024", Suffix: "Local Election Voter Turnout", FileTypes: []string{"pdf", "csv", "txt"}},
			want:  "Provincetown MA 2024 Local Election Voter Turnout (filetype:pdf OR filetype:csv OR filetype:txt)",
		},
		{
			name:  "single filetype",
			query: Query{Topic: "acme corp", FileTypes: []string{"pdf"}},
			want:  "acme corp (filetype:pdf)",
		},
		{
			name:  "no filetypes is a plain link search",
			query: Query{Topic: "Levi Strauss and Co."},
			want:  "Levi Strauss and Co.",
		},
		{
			name:  "empty suffix leaves no stray space",
			query: Query{Topic: "acme corp", Suffix: ""},
			want:  "acme corp",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Terms())
		})
	}
}

// withStubAPI points the package at a stub Custom Search endpoint for the
// duration of the test.
func withStubAPI(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	orig := customSearchBase
	customSearchBase = ts.URL
	t.Cleanup(func() { customSearchBase = orig })

	return &Client{HTTP: ts.Client(), APIKey: "test-key", EngineID: "test-cx"}
}

func TestSearchCollectsLinksInRankOrder(t *testing.T) {
	var gotQuery, gotNum, gotKey, gotCx string
	client := withStubAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotNum = r.URL.Query().Get("num")
		gotKey = r.URL.Query().Get("key")
		gotCx = r.URL.Query().Get("cx")
		w.Write([]byte(`{"items":[
			{"link":"https://example.com/a.pdf"},
			{"title":"no link field"},
			{"link":"https://example.org/b.csv"},
			{"link":"https://example.com/a.pdf"}
		]}`))
	})

	cfg := types.SearchConfig{MaxResults: 5}
	links, err := client.Search(context.Background(), Query{Topic: "acme", FileTypes: []string{"pdf", "csv"}}, cfg)
	require.NoError(t, err)

	// Duplicates are preserved; linkless items are skipped.
	assert.Equal(t, []string{
		"https://example.com/a.pdf",
		"https://example.org/b.csv",
		"https://example.com/a.pdf",
	}, links)
	assert.Equal(t, "acme (filetype:pdf OR filetype:csv)", gotQuery)
	assert.Equal(t, "5", gotNum)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "test-cx", gotCx)
}

func TestSearchDefaultsMaxResults(t *testing.T) {
	var gotNum string
	client := withStubAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotNum = r.URL.Query().Get("num")
		w.Write([]byte(`{}`))
	})

	links, err := client.Search(context.Background(), Query{Topic: "acme"}, types.SearchConfig{})
	require.NoError(t, err)
	assert.Empty(t, links)
	assert.Equal(t, "5", gotNum)
}

func TestSearchZeroItemsIsNotAnError(t *testing.T) {
	client := withStubAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})

	links, err := client.Search(context.Background(), Query{Topic: "acme"}, types.SearchConfig{MaxResults: 3})
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestSearchProviderErrorIsDistinguishable(t *testing.T) {
	client := withStubAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Search(context.Background(), Query{Topic: "acme"}, types.SearchConfig{MaxResults: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

func TestSearchMalformedResponse(t *testing.T) {
	client := withStubAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"items": "not an array"`))
	})

	_, err := client.Search(context.Background(), Query{Topic: "acme"}, types.SearchConfig{MaxResults: 3})
	require.Error(t, err)
}

func TestFindLinksOmitsFiletypeClause(t *testing.T) {
	var gotQuery string
	client := withStubAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"items":[{"link":"https://www.levistrauss.com/"}]}`))
	})

	links, err := client.FindLinks(context.Background(), "Levi Strauss and Co.", types.SearchConfig{MaxResults: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://www.levistrauss.com/"}, links)
	assert.Equal(t, "Levi Strauss and Co.", gotQuery)
}
