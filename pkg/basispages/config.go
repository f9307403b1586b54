// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the
// root directory when no explicit path is given.
const DefaultConfigFile = "basis-pages.yaml"

// Config holds all generator settings. Callers either construct a
// Config in Go code (usually starting from DefaultConfig) or place a
// basis-pages.yaml next to the docs tree and call LoadConfig.
type Config struct {
	Paths PathsConfig `yaml:"paths"`

	// Events is the ordered list of event identifiers to process.
	Events []string `yaml:"events"`

	// Exceptions lists pages that already exist under a historical name
	// and must never be generated. A nil list selects the built-in
	// exception; an explicit empty list disables it.
	Exceptions []Exception `yaml:"exceptions"`

	Page     PageConfig `yaml:"page"`
	Template Markers    `yaml:"template"`

	// DryRun evaluates every page without writing anything.
	DryRun bool `yaml:"dry_run"`
}

// PathsConfig locates the inputs and the output directory. Relative
// paths are resolved against Root.
type PathsConfig struct {
	// Root is the repository root (default ".", or the directory of
	// the configuration file when loaded with LoadConfig).
	Root string `yaml:"root"`

	// CSVDir holds the generated audit checklist CSV files.
	CSVDir string `yaml:"csv_dir"`

	// CSVName is a text/template for the per-event CSV file name.
	// The template data is {EventID}.
	CSVName string `yaml:"csv_name"`

	// PagesDir receives the generated pages.
	PagesDir string `yaml:"pages_dir"`

	// Template is the hand-maintained page used as the layout source.
	Template string `yaml:"template"`
}

// Exception names one (event, hash) pair that is never written.
type Exception struct {
	EventID string `yaml:"event_id"`
	Hash    string `yaml:"hash"`

	// Label is shown next to the file name in the report.
	Label string `yaml:"label,omitempty"`
}

// PageConfig controls the text injected into each page.
type PageConfig struct {
	// TitleSuffix is the last segment of the <title> text.
	TitleSuffix string `yaml:"title_suffix"`

	// BackHref is a text/template for the back link target.
	// The template data is {EventID, EventName, BasisName}.
	BackHref string `yaml:"back_href"`

	// BackLabel is the markup inside the back link anchor.
	BackLabel string `yaml:"back_label"`

	// LinkLabel is the markup inside the external source link.
	LinkLabel string `yaml:"link_label"`

	// Intro is a text/template for the introductory sentence.
	// The template data is {EventID, EventName, BasisName}.
	Intro string `yaml:"intro"`
}

// Markers are the literal strings located in the template page. Each
// must occur exactly once. The table body spans from the first
// BodyStart to the next BodyEnd, both included.
type Markers struct {
	Title     string `yaml:"title"`
	BackLink  string `yaml:"back_link"`
	Heading   string `yaml:"heading"`
	Intro     string `yaml:"intro"`
	BodyStart string `yaml:"body_start"`
	BodyEnd   string `yaml:"body_end"`
}

var defaultEvents = []string{
	"LH-EVT-HIRE07",
	"LH-EVT-HIRE08",
	"LH-EVT-HIRE09",
	"LH-EVT-HIRE10",
	"LH-EVT-HIRE11",
	"LH-EVT-HIRE12",
	"LH-EVT-HIRE13",
	"LH-EVT-HIRE14",
}

// The 職業安定法 (第5条の3) page for HIRE07 predates the naming scheme.
var defaultExceptions = []Exception{
	{EventID: "LH-EVT-HIRE07", Hash: "9786f3ee36", Label: "職業安定法"},
}

// DefaultConfig returns a Config with every field set to the values used
// for the labor-hr docs tree.
func DefaultConfig() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Paths.Root == "" {
		c.Paths.Root = "."
	}
	if c.Paths.CSVDir == "" {
		c.Paths.CSVDir = filepath.Join("docs", "download", "labor-hr", "events", "csv")
	}
	if c.Paths.CSVName == "" {
		c.Paths.CSVName = "labor-hr_audit_checklist_{{.EventID}}_v0_1.generated.csv"
	}
	if c.Paths.PagesDir == "" {
		c.Paths.PagesDir = filepath.Join("docs", "labor-hr", "pages")
	}
	if c.Paths.Template == "" {
		c.Paths.Template = filepath.Join("docs", "labor-hr", "pages", "LH-EVT-CONS01__57fd71d406.html")
	}
	if len(c.Events) == 0 {
		c.Events = append([]string(nil), defaultEvents...)
	}
	if c.Exceptions == nil {
		c.Exceptions = append([]Exception(nil), defaultExceptions...)
	}
	c.Page.applyDefaults()
	c.Template.applyDefaults()
}

func (p *PageConfig) applyDefaults() {
	if p.TitleSuffix == "" {
		p.TitleSuffix = "労務・人事制度 要件DB"
	}
	if p.BackHref == "" {
		p.BackHref = "../nav/evt/{{.EventID}}.html"
	}
	if p.BackLabel == "" {
		p.BackLabel = "← 根拠一覧に戻る"
	}
	if p.LinkLabel == "" {
		p.LinkLabel = "一次情報を開く"
	}
	if p.Intro == "" {
		p.Intro = "本ページは、{{.EventName}}に関して、{{.BasisName}}を根拠として制度上確認が求められる事項を整理した要件一覧です。"
	}
}

func (m *Markers) applyDefaults() {
	if m.Title == "" {
		m.Title = "<title>ハラスメント事案の発生｜労働契約法｜労務・人事制度 要件DB</title>"
	}
	if m.BackLink == "" {
		m.BackLink = `<a class="back" href="../nav/evt/LH-EVT-CONS01.html">← 根拠一覧に戻る</a>`
	}
	if m.Heading == "" {
		m.Heading = "<h1>ハラスメント事案の発生</h1>"
	}
	if m.Intro == "" {
		m.Intro = "本ページは、ハラスメント事案の発生に関して、労働契約法を根拠として制度上確認が求められる事項を整理した要件一覧です。"
	}
	if m.BodyStart == "" {
		m.BodyStart = "<tbody>"
	}
	if m.BodyEnd == "" {
		m.BodyEnd = "</tbody>"
	}
}

// LoadConfig reads a configuration YAML file and returns a Config with
// defaults applied. When the file does not set paths.root, the root is
// the directory containing the file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Paths.Root == "" {
		cfg.Paths.Root = filepath.Dir(path)
	} else if !filepath.IsAbs(cfg.Paths.Root) {
		cfg.Paths.Root = filepath.Join(filepath.Dir(path), cfg.Paths.Root)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Marshal returns the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// resolve joins a configured path with Root unless it is absolute.
func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Paths.Root, p)
}

// TemplatePath returns the resolved path of the template page.
func (c *Config) TemplatePath() string { return c.resolve(c.Paths.Template) }

// PagesDir returns the resolved output directory.
func (c *Config) PagesDir() string { return c.resolve(c.Paths.PagesDir) }

// CSVDir returns the resolved CSV directory.
func (c *Config) CSVDir() string { return c.resolve(c.Paths.CSVDir) }

type exceptionKey struct {
	eventID string
	hash    string
}

// exceptionIndex maps (event, hash) to the report label.
func (c *Config) exceptionIndex() map[exceptionKey]string {
	idx := make(map[exceptionKey]string, len(c.Exceptions))
	for _, e := range c.Exceptions {
		idx[exceptionKey{eventID: e.EventID, hash: e.Hash}] = e.Label
	}
	return idx
}
