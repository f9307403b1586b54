// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Outcome is the terminal state of one (event, basis) page.
type Outcome string

const (
	OutcomeCreated     Outcome = "created"
	OutcomeBlacklisted Outcome = "skipped-blacklisted"
	OutcomeExisting    Outcome = "skipped-existing"
)

// PageResult records what happened to one page.
type PageResult struct {
	EventID string
	Hash    string
	File    string
	Path    string
	Basis   Basis
	Outcome Outcome

	// Label is the exception label for blacklisted pages.
	Label string
}

// Report collects the outcome of a run.
type Report struct {
	Created []PageResult
	Skipped []PageResult

	// DryRun is set when Created lists pages that were not written.
	DryRun bool
}

const (
	headingCreated       = "=== 作成したファイル ==="
	headingCreatedDryRun = "=== 作成予定のファイル（dry-run） ==="
	headingSkipped       = "=== スキップしたファイル（既存） ==="
)

func (r *Report) add(res PageResult) {
	if res.Outcome == OutcomeCreated {
		r.Created = append(r.Created, res)
		return
	}
	r.Skipped = append(r.Skipped, res)
}

// Counts returns the number of created and skipped pages.
func (r Report) Counts() (created, skipped int) {
	return len(r.Created), len(r.Skipped)
}

// Print writes the human-readable summary: created files with their
// basis fields, then skipped file names. Headings are bold when w is a
// terminal.
func (r Report) Print(w io.Writer) error {
	heading := lipgloss.NewRenderer(w).NewStyle().Bold(true)

	title := headingCreated
	if r.DryRun {
		title = headingCreatedDryRun
	}
	if _, err := fmt.Fprintln(w, heading.Render(title)); err != nil {
		return err
	}
	for _, c := range r.Created {
		if _, err := fmt.Fprintf(w, "%s\n  basis_name: %s, basis_locator: %s, basis_url: %s\n",
			c.Path, c.Basis.Name, c.Basis.Locator, c.Basis.URL); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", heading.Render(headingSkipped)); err != nil {
		return err
	}
	for _, s := range r.Skipped {
		line := s.File
		if s.Label != "" {
			line += " (" + s.Label + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
