// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns document bytes into plain text, dispatching on the
// declared file extension.
//
// Extraction is totally contained: whatever the input (corrupt container,
// undecodable bytes, a panicking parser), Extract returns a Result and never
// propagates. The pipeline feeds it arbitrary downloads, and one malformed
// file must not abort a batch.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// Kind classifies an extraction outcome.
type Kind int

const (
	// KindText means extraction produced text (possibly empty: a PDF
	// with no text layer is not an error).
	KindText Kind = iota

	// KindUnsupported means the extension has no extractor.
	KindUnsupported

	// KindFailed means extraction was attempted and failed.
	KindFailed
)

// Result is the outcome of one extraction.
type Result struct {
	Kind Kind
	Text string

	// Err holds the contained failure when Kind is KindFailed.
	Err error
}

// genericMimeTypes maps the extensions delegated to docconv onto the MIME
// type its converter dispatches on. csv and json go through the plain-text
// converter; their structure is good enough as-is for answering.
var genericMimeTypes = map[string]string{
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".odt":  "application/vnd.oasis.opendocument.text",
	".rtf":  "text/rtf",
	".html": "text/html",
	".epub": "application/epub+zip",
	".csv":  "text/plain",
	".json": "text/plain",
	".txt":  "text/plain",
}

// Extract dispatches on the lowercased extension (with leading dot) and
// extracts plain text from data. PDFs are read page by page through the
// embedded text layer; the generic document formats go through docconv with
// undecodable byte sequences dropped. Unknown extensions yield
// KindUnsupported.
func Extract(data []byte, ext string) (res Result) {
	// Some parsers panic on corrupt input rather than returning an error.
	defer func() {
		if r := recover(); r != nil {
			res = Result{Kind: KindFailed, Err: fmt.Errorf("extracting %s: panic: %v", ext, r)}
		}
	}()

	ext = strings.ToLower(ext)
	if ext == ".pdf" {
		text, err := pdfText(data)
		if err != nil {
			return Result{Kind: KindFailed, Err: fmt.Errorf("extracting %s: %w", ext, err)}
		}
		return Result{Kind: KindText, Text: text}
	}

	mime, ok := genericMimeTypes[ext]
	if !ok {
		return Result{Kind: KindUnsupported}
	}
	conv, err := docconv.Convert(bytes.NewReader(data), mime, true)
	if err != nil {
		return Result{Kind: KindFailed, Err: fmt.Errorf("extracting %s: %w", ext, err)}
	}
	return Result{Kind: KindText, Text: strings.ToValidUTF8(conv.Body, "")}
}

// ExtractFile reads path and extracts by its extension. An unreadable file
// is a contained failure like any other.
func ExtractFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Kind: KindFailed, Err: fmt.Errorf("reading %s: %w", path, err)}
	}
	return Extract(data, filepath.Ext(path))
}

// pdfText concatenates the text layer of every page, each prefixed with a
// newline. A PDF with no extractable text yields the empty string.
func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("reading page %d: %w", i, err)
		}
		b.WriteString("\n")
		b.WriteString(text)
	}
	return b.String(), nil
}
