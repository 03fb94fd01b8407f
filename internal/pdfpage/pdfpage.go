// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfpage narrows a PDF to a subset of its pages.
package pdfpage

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrCorrupt is returned when the source cannot be opened as a PDF.
var ErrCorrupt = errors.New("corrupt PDF")

var nonDigits = regexp.MustCompile(`\D+`)

// ParsePageSpec converts free-form numeric text into 0-based page indices.
// The input is split on runs of non-digit characters, purely numeric tokens
// are parsed, zero values are dropped, and the rest are decremented by one,
// so human 1-based input becomes 0-based indices.
//
// Two long-standing quirks of this rule are kept for compatibility: a
// literal "0" is silently discarded (not rejected or clamped), and a decimal
// such as "10.5" splits on the dot into the tokens "10" and "5". See
// TestParsePageSpec for the exact behavior.
func ParsePageSpec(s string) []int {
	pages := []int{}
	for _, token := range nonDigits.Split(s, -1) {
		if token == "" {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil || n == 0 {
			continue
		}
		pages = append(pages, n-1)
	}
	return pages
}

// ExtractPages writes a new PDF at dstPath containing exactly the pages of
// srcPath named by the 0-based indices in pages, in the given order (not
// re-sorted). Out-of-range indices are silently dropped; the kept indices
// are returned. When nothing is in range, no output is written and the
// empty kept set is returned.
//
// An unreadable source yields a wrapped ErrCorrupt; a failure writing the
// destination propagates as-is.
func ExtractPages(srcPath, dstPath string, pages []int) ([]int, error) {
	count, err := api.PageCountFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, srcPath, err)
	}

	kept := []int{}
	selection := []string{}
	for _, p := range pages {
		if p < 0 || p >= count {
			continue
		}
		kept = append(kept, p)
		selection = append(selection, strconv.Itoa(p+1))
	}
	if len(kept) == 0 {
		return kept, nil
	}

	if err := api.CollectFile(srcPath, dstPath, selection, nil); err != nil {
		return nil, fmt.Errorf("writing %s: %w", dstPath, err)
	}
	return kept, nil
}

// OutputPath derives the destination filename for a page-subset copy of
// srcPath inside dir: "report.pdf" becomes dir/report-new.pdf.
func OutputPath(srcPath, dir string) string {
	base := filepath.Base(srcPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, name+"-new"+ext)
}
