// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import (
	"fmt"
	"strings"
	"text/template"
)

// linkPlaceholder fills the source column when a basis has no URL.
const linkPlaceholder = "-"

// Same entity set as the pages already published, so regenerated pages
// stay byte-identical.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

func escapeHTML(s string) string { return htmlEscaper.Replace(s) }

// Page is everything needed to render one basis page.
type Page struct {
	EventID   string
	EventName string
	Basis     Basis
	Rows      []Row
}

// pageData is the data passed to the BackHref and Intro templates.
type pageData struct {
	EventID   string
	EventName string
	BasisName string
}

// Renderer turns a Page into a document using a parsed Template.
type Renderer struct {
	tmpl     *Template
	cfg      PageConfig
	backHref *template.Template
	intro    *template.Template
}

// NewRenderer compiles the text templates of cfg.
func NewRenderer(tmpl *Template, cfg PageConfig) (*Renderer, error) {
	backHref, err := template.New("back_href").Option("missingkey=error").Parse(cfg.BackHref)
	if err != nil {
		return nil, fmt.Errorf("parsing back_href: %w", err)
	}
	intro, err := template.New("intro").Option("missingkey=error").Parse(cfg.Intro)
	if err != nil {
		return nil, fmt.Errorf("parsing intro: %w", err)
	}
	return &Renderer{tmpl: tmpl, cfg: cfg, backHref: backHref, intro: intro}, nil
}

// Render returns the complete document for p. The parsed template is not
// modified.
func (r *Renderer) Render(p Page) (string, error) {
	data := pageData{EventID: p.EventID, EventName: p.EventName, BasisName: p.Basis.Name}

	href, err := executeText(r.backHref, data)
	if err != nil {
		return "", fmt.Errorf("rendering back_href: %w", err)
	}
	intro, err := executeText(r.intro, data)
	if err != nil {
		return "", fmt.Errorf("rendering intro: %w", err)
	}

	title := p.EventName + "｜" + p.Basis.Name + "｜" + r.cfg.TitleSuffix

	var fill [slotCount]string
	fill[slotTitle] = "<title>" + escapeHTML(title) + "</title>"
	fill[slotBackLink] = `<a class="back" href="` + escapeHTML(href) + `">` + r.cfg.BackLabel + "</a>"
	fill[slotHeading] = "<h1>" + escapeHTML(p.EventName) + "</h1>"
	fill[slotIntro] = escapeHTML(intro)
	fill[slotBody] = r.tableBody(p)
	return r.tmpl.execute(fill), nil
}

// tableBody renders the table body element, one row per requirement in
// requirement_id order.
func (r *Renderer) tableBody(p Page) string {
	link := linkPlaceholder
	if p.Basis.URL != "" {
		link = `<a class="btn-link" href="` + escapeHTML(p.Basis.URL) + `" target="_blank">` + r.cfg.LinkLabel + "</a>"
	}
	display := escapeHTML(p.Basis.Display())

	rows := SortByRequirementID(p.Rows)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		id := escapeHTML(row.RequirementID())
		text := escapeHTML(row.Get(FieldRequirementText))
		lines = append(lines, fmt.Sprintf(
			"        <tr data-req-id=\"%s\">\n"+
				"          <td class=\"req-cell\"><span id=\"%s\" class=\"req-anchor\"></span>%s</td>\n"+
				"          <td>%s</td>\n"+
				"          <td>%s</td>\n"+
				"        </tr>",
			id, id, text, display, link))
	}
	return r.tmpl.bodyStart + "\n" + strings.Join(lines, "\n") + "\n      " + r.tmpl.bodyEnd
}

func executeText(t *template.Template, data pageData) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
