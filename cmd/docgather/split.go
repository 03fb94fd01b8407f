// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docgather/internal/pdfpage"
)

var splitCmd = &cobra.Command{
	Use:   "split [file] [pages]",
	Short: "Write a new PDF containing a subset of a PDF's pages",
	Long: `Split extracts the named pages from a PDF into a new document. The page
argument is free-form 1-based numeric text ("1, 3, 5" or "pages 2 and 4");
pages outside the document are silently dropped.`,
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().String("output", "", "output file (default: <name>-new.pdf inside --work-dir)")
	splitCmd.Flags().String("work-dir", "temp", "directory for the output document")

	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	srcPath := args[0]
	pages := pdfpage.ParsePageSpec(args[1])
	if len(pages) == 0 {
		return fmt.Errorf("no page numbers found in %q", args[1])
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		workDir, _ := cmd.Flags().GetString("work-dir")
		if err := os.MkdirAll(workDir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", workDir, err)
		}
		outPath = pdfpage.OutputPath(srcPath, workDir)
	}

	kept, err := pdfpage.ExtractPages(srcPath, outPath, pages)
	if err != nil {
		return err
	}
	if len(kept) == 0 {
		fmt.Fprintln(os.Stderr, "no pages in range; nothing written")
		return nil
	}

	fmt.Printf("Wrote %d page(s) to %s\n", len(kept), outPath)
	return nil
}
