package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docgather/internal/search"
	"github.com/pdiddy/docgather/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "docgather/0.1"
)

var searchCmd = &cobra.Command{
	Use:   "search [topic...]",
	Short: "Search the web for candidate documents on a topic",
	Long: `Search queries the configured Custom Search engine for documents on a
topic, restricted to the given file types, and prints the result links in
provider rank order. With --links-only the filetype restriction is dropped
and any page can match.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("suffix", "", "extra query terms appended to the topic")
	searchCmd.Flags().StringSlice("filetypes", []string{"pdf", "csv", "txt"}, "file types to search for")
	searchCmd.Flags().Int("max-results", 5, "maximum number of links to return")
	searchCmd.Flags().Bool("links-only", false, "plain link search with no filetype restriction")
	searchCmd.Flags().Bool("json", false, "output links as JSON")
	searchCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")

	rootCmd.AddCommand(searchCmd)
}

// newSearchClient builds the Custom Search client from secrets and config.
func newSearchClient(timeout time.Duration) (*search.Client, error) {
	apiKey := secretDefault("google-api-key", viper.GetString("search.api_key"))
	engineID := secretDefault("google-cse-id", viper.GetString("search.engine_id"))
	if apiKey == "" || engineID == "" {
		return nil, fmt.Errorf("missing search credentials: provide .secrets/google-api-key and .secrets/google-cse-id")
	}
	return &search.Client{
		HTTP:     &http.Client{Timeout: timeout},
		APIKey:   apiKey,
		EngineID: engineID,
	}, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a search topic")
	}
	topic := strings.Join(args, " ")

	suffix, _ := cmd.Flags().GetString("suffix")
	fileTypes, _ := cmd.Flags().GetStringSlice("filetypes")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	linksOnly, _ := cmd.Flags().GetBool("links-only")
	asJSON, _ := cmd.Flags().GetBool("json")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	client, err := newSearchClient(timeout)
	if err != nil {
		return err
	}

	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent},
		MaxResults: maxResults,
	}

	query := search.Query{Topic: topic, Suffix: suffix, FileTypes: fileTypes}
	if linksOnly {
		query.FileTypes = nil
	}

	links, err := client.Search(context.Background(), query, cfg)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(links)
	}

	if len(links) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	for _, link := range links {
		fmt.Println(link)
	}
	return nil
}
