// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Generator runs the page batch described by a Config.
type Generator struct {
	cfg     Config
	csvName *template.Template
}

// New returns a Generator for cfg. Defaults are applied to any unset
// field.
func New(cfg Config) (*Generator, error) {
	cfg.applyDefaults()
	csvName, err := template.New("csv_name").Option("missingkey=error").Parse(cfg.Paths.CSVName)
	if err != nil {
		return nil, fmt.Errorf("parsing csv_name: %w", err)
	}
	return &Generator{cfg: cfg, csvName: csvName}, nil
}

// Config returns the effective configuration.
func (g *Generator) Config() Config { return g.cfg }

// CSVPath returns the checklist CSV location for eventID.
func (g *Generator) CSVPath(eventID string) (string, error) {
	var b strings.Builder
	if err := g.csvName.Execute(&b, struct{ EventID string }{eventID}); err != nil {
		return "", fmt.Errorf("rendering csv_name for %s: %w", eventID, err)
	}
	return filepath.Join(g.cfg.CSVDir(), b.String()), nil
}

// Run processes every configured event. Missing CSV files, missing
// fields, existing pages and exception entries are skips, not errors.
// An unreadable template, a template whose markers cannot be located,
// and I/O failures end the run with an error; the report holds what was
// done up to that point.
func (g *Generator) Run() (Report, error) {
	logf("run: root=%s events=%d dryRun=%v", g.cfg.Paths.Root, len(g.cfg.Events), g.cfg.DryRun)

	var rep Report
	rep.DryRun = g.cfg.DryRun

	tmplPath := g.cfg.TemplatePath()
	text, err := os.ReadFile(tmplPath)
	if err != nil {
		return rep, fmt.Errorf("reading template: %w", err)
	}
	tmpl, err := ParseTemplate(string(text), g.cfg.Template)
	if err != nil {
		return rep, fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}
	renderer, err := NewRenderer(tmpl, g.cfg.Page)
	if err != nil {
		return rep, err
	}

	exceptions := g.cfg.exceptionIndex()
	for _, eventID := range g.cfg.Events {
		if err := g.runEvent(eventID, renderer, exceptions, &rep); err != nil {
			return rep, err
		}
	}

	created, skipped := rep.Counts()
	logger.Infow("generation finished", "created", created, "skipped", skipped, "dry_run", g.cfg.DryRun)
	return rep, nil
}

func (g *Generator) runEvent(eventID string, renderer *Renderer, exceptions map[exceptionKey]string, rep *Report) error {
	csvPath, err := g.CSVPath(eventID)
	if err != nil {
		return err
	}
	rows, err := LoadRows(csvPath)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		logf("runEvent: %s has no rows, skipping", eventID)
		return nil
	}

	eventName := rows[0].Get(FieldEventName)
	if eventName == "" {
		eventName = eventID
	}

	groups := GroupByBasis(rows)
	logf("runEvent: %s name=%q rows=%d groups=%d", eventID, eventName, len(rows), len(groups))

	for _, grp := range groups {
		hash := grp.Basis.Hash()
		file := PageFileName(eventID, hash)
		res := PageResult{
			EventID: eventID,
			Hash:    hash,
			File:    file,
			Path:    filepath.Join(g.cfg.PagesDir(), file),
			Basis:   grp.Basis,
		}

		if label, ok := exceptions[exceptionKey{eventID: eventID, hash: hash}]; ok {
			res.Outcome = OutcomeBlacklisted
			res.Label = label
			rep.add(res)
			logger.Infow("page skipped", "file", file, "reason", res.Outcome)
			continue
		}

		exists, err := fileExists(res.Path)
		if err != nil {
			return err
		}
		if exists {
			res.Outcome = OutcomeExisting
			rep.add(res)
			logger.Infow("page skipped", "file", file, "reason", res.Outcome)
			continue
		}

		doc, err := renderer.Render(Page{
			EventID:   eventID,
			EventName: eventName,
			Basis:     grp.Basis,
			Rows:      grp.Rows,
		})
		if err != nil {
			return fmt.Errorf("rendering %s: %w", file, err)
		}
		if !g.cfg.DryRun {
			if err := writePage(res.Path, doc); err != nil {
				return err
			}
		}
		res.Outcome = OutcomeCreated
		rep.add(res)
		logger.Infow("page created", "file", file, "basis_name", grp.Basis.Name, "rows", len(grp.Rows), "dry_run", g.cfg.DryRun)
	}
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}

// writePage writes doc to path, creating parent directories as needed.
func writePage(path, doc string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
