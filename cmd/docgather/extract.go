package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docgather/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract plain text from a local document",
	Long: `Extract reads a local document and prints its plain text. The extractor is
chosen by file extension: PDFs are read through the embedded text layer,
and docx, csv, epub, json, html, odt, pptx, txt, and rtf go through the
generic converter.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	res := extract.ExtractFile(args[0])
	switch res.Kind {
	case extract.KindUnsupported:
		return fmt.Errorf("unsupported file type: %s", args[0])
	case extract.KindFailed:
		return fmt.Errorf("extraction failed: %v", res.Err)
	}
	fmt.Print(res.Text)
	return nil
}
