// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrInconsistent is returned by AnalyzeResult.Print when pages and CSV
// data disagree.
var ErrInconsistent = errors.New("found consistency issues")

// AnalyzeResult holds the results of the Analyze operation.
type AnalyzeResult struct {
	Missing  []string // pages a generate run would create
	Orphaned []string // {event}__{hash}.html files matching no basis in the event's CSV
	Events   int      // events with CSV data
	Pages    int      // basis groups across those events
}

// Analyze compares the pages directory with the CSV data without
// writing anything. Exception entries count as present.
func (g *Generator) Analyze() (AnalyzeResult, error) {
	logf("analyze: pagesDir=%s events=%d", g.cfg.PagesDir(), len(g.cfg.Events))

	var result AnalyzeResult
	exceptions := g.cfg.exceptionIndex()
	for _, eventID := range g.cfg.Events {
		csvPath, err := g.CSVPath(eventID)
		if err != nil {
			return result, err
		}
		rows, err := LoadRows(csvPath)
		if err != nil {
			return result, err
		}

		expected := make(map[string]bool)
		if len(rows) > 0 {
			result.Events++
			for _, grp := range GroupByBasis(rows) {
				hash := grp.Basis.Hash()
				expected[hash] = true
				result.Pages++
				if _, ok := exceptions[exceptionKey{eventID: eventID, hash: hash}]; ok {
					continue
				}
				file := PageFileName(eventID, hash)
				exists, err := fileExists(filepath.Join(g.cfg.PagesDir(), file))
				if err != nil {
					return result, err
				}
				if !exists {
					result.Missing = append(result.Missing, file)
				}
			}
		}

		onDisk, err := g.eventPages(eventID)
		if err != nil {
			return result, err
		}
		for _, hash := range onDisk {
			if !expected[hash] {
				result.Orphaned = append(result.Orphaned, PageFileName(eventID, hash))
			}
		}
	}
	logf("analyze: missing=%d orphaned=%d", len(result.Missing), len(result.Orphaned))
	return result, nil
}

// eventPages returns the hashes of the generated pages present for
// eventID, in name order.
func (g *Generator) eventPages(eventID string) ([]string, error) {
	entries, err := os.ReadDir(g.cfg.PagesDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", g.cfg.PagesDir(), err)
	}
	prefix := eventID + "__"
	var hashes []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".html") {
			continue
		}
		hash := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".html")
		if !isPageHash(hash) {
			continue
		}
		hashes = append(hashes, hash)
	}
	sort.Strings(hashes)
	return hashes, nil
}

func isPageHash(s string) bool {
	if len(s) != hashLength || strings.ToLower(s) != s {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// printSection prints a labeled list if items is non-empty, returning true.
func printSection(w io.Writer, label string, items []string) bool {
	if len(items) == 0 {
		return false
	}
	fmt.Fprintf(w, "\n%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
	return true
}

// Print writes the analysis to w. It returns nil when all checks pass
// and ErrInconsistent otherwise.
func (r AnalyzeResult) Print(w io.Writer) error {
	hasIssues := false
	hasIssues = printSection(w, "Missing pages (generate would create them)", r.Missing) || hasIssues
	hasIssues = printSection(w, "Orphaned pages (no matching basis in the event CSV)", r.Orphaned) || hasIssues

	if !hasIssues {
		fmt.Fprintf(w, "All consistency checks passed\n")
		fmt.Fprintf(w, "   - %d events\n", r.Events)
		fmt.Fprintf(w, "   - %d basis pages\n", r.Pages)
		return nil
	}
	return ErrInconsistent
}
