// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docgather/internal/answer"
	"github.com/pdiddy/docgather/internal/gather"
	"github.com/pdiddy/docgather/internal/urlutil"
	"github.com/pdiddy/docgather/pkg/types"
)

// defaultQuestion is the question template the original voter-turnout form
// submitted; override with --question for other topics.
const defaultQuestion = "What is the voter turnout?"

var gatherCmd = &cobra.Command{
	Use:   "gather [topic...]",
	Short: "Search, fetch, and answer a question against each found document",
	Long: `Gather runs the full pipeline: search for documents on the topic, download
each candidate into a transient working area, and ask the generative model
the question against every retrieved document. Candidates that cannot be
fetched are skipped; candidates that cannot be answered contribute an empty
answer. Skip reasons are reported on stderr.`,
	RunE: runGather,
}

func init() {
	gatherCmd.Flags().String("query", "", "extra query terms appended to the topic (e.g. \"Local Election Voter Turnout\")")
	gatherCmd.Flags().String("question", defaultQuestion, "question to answer against each document")
	gatherCmd.Flags().StringSlice("filetypes", nil, "file types to search for (default pdf, csv, txt)")
	gatherCmd.Flags().Int("max-results", 5, "maximum number of candidate documents")
	gatherCmd.Flags().Int("workers", 0, "concurrent document workers (default 4)")
	gatherCmd.Flags().String("work-dir", "temp", "transient working directory")
	gatherCmd.Flags().Duration("fetch-timeout", 2*time.Minute, "per-document fetch timeout")
	gatherCmd.Flags().Duration("timeout", defaultTimeout, "search HTTP timeout")
	gatherCmd.Flags().String("format", "text", "output format: text or yaml")

	rootCmd.AddCommand(gatherCmd)
}

func runGather(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a topic (e.g. \"Provincetown MA 2024\")")
	}
	topic := strings.Join(args, " ")

	query, _ := cmd.Flags().GetString("query")
	question, _ := cmd.Flags().GetString("question")
	fileTypes, _ := cmd.Flags().GetStringSlice("filetypes")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	workers, _ := cmd.Flags().GetInt("workers")
	workDir, _ := cmd.Flags().GetString("work-dir")
	fetchTimeout, _ := cmd.Flags().GetDuration("fetch-timeout")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q: use text or yaml", format)
	}

	searchClient, err := newSearchClient(timeout)
	if err != nil {
		return err
	}

	ctx := context.Background()
	answerer, err := answer.NewGemini(ctx, types.AnswerConfig{
		Model:  viper.GetString("answer.model"),
		APIKey: secretDefault("gemini-api-key", viper.GetString("answer.api_key")),
	})
	if err != nil {
		return err
	}
	defer answerer.Close()

	pipeline := &gather.Pipeline{
		Searcher: searchClient,
		Answerer: answerer,
		HTTP:     &http.Client{Timeout: fetchTimeout},
	}

	cfg := types.GatherConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent},
			MaxResults: maxResults,
			FileTypes:  fileTypes,
		},
		WorkDir:      workDir,
		Workers:      workers,
		FetchTimeout: fetchTimeout,
	}

	result, err := pipeline.Run(ctx, topic, query, question, cfg, os.Stderr)
	if err != nil {
		return err
	}

	if format == "yaml" {
		return yaml.NewEncoder(os.Stdout).Encode(result)
	}
	printResult(result)
	return nil
}

// printResult renders each (link, answer) pair as a titled text block,
// headed by the link's registrable domain.
func printResult(result types.RunResult) {
	if len(result.Links) == 0 {
		fmt.Println("No documents gathered.")
		return
	}
	for i, link := range result.Links {
		title := link
		if domain, err := urlutil.Normalize(link); err == nil {
			title = domain
		}
		fmt.Printf("--- %d. %s\n%s\n\n", i+1, title, link)
		if result.Answers[i] == "" {
			fmt.Println("(no answer produced)")
		} else {
			fmt.Println(result.Answers[i])
		}
		fmt.Println()
	}
}
