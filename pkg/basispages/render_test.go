// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	cfg := DefaultConfig()
	tmpl, err := ParseTemplate(readTestdata(t, "template.html"), cfg.Template)
	require.NoError(t, err)
	r, err := NewRenderer(tmpl, cfg.Page)
	require.NoError(t, err)
	return r
}

func hire09Groups(t *testing.T) []Group {
	t.Helper()
	rows, err := LoadRows("testdata/LH-EVT-HIRE09.csv")
	require.NoError(t, err)
	return GroupByBasis(rows)
}

// The golden files were produced by the script that generated the
// published pages; output must match them byte for byte.
func TestRender_MatchesPublishedPages(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)
	for _, grp := range hire09Groups(t) {
		got, err := r.Render(Page{
			EventID:   "LH-EVT-HIRE09",
			EventName: "採用選考の実施",
			Basis:     grp.Basis,
			Rows:      grp.Rows,
		})
		require.NoError(t, err)
		want := readTestdata(t, "LH-EVT-HIRE09__"+grp.Basis.Hash()+".golden.html")
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Render(%s) mismatch (-want +got):\n%s", grp.Basis.Name, diff)
		}
	}
}

func TestRender_Substitutions(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)
	got, err := r.Render(Page{
		EventID:   "LH-EVT-HIRE08",
		EventName: "内定通知",
		Basis:     Basis{Name: "職業安定法", Locator: "第5条の3", URL: "https://example.jp/law"},
		Rows:      []Row{{FieldRequirementID: "R-1", FieldRequirementText: "労働条件を明示しているか"}},
	})
	require.NoError(t, err)

	for _, want := range []string{
		"<title>内定通知｜職業安定法｜労務・人事制度 要件DB</title>",
		`<a class="back" href="../nav/evt/LH-EVT-HIRE08.html">← 根拠一覧に戻る</a>`,
		"<h1>内定通知</h1>",
		"本ページは、内定通知に関して、職業安定法を根拠として制度上確認が求められる事項を整理した要件一覧です。",
		`<tr data-req-id="R-1">`,
		`<span id="R-1" class="req-anchor"></span>労働条件を明示しているか</td>`,
		"<td>職業安定法 / 第5条の3</td>",
		`<td><a class="btn-link" href="https://example.jp/law" target="_blank">一次情報を開く</a></td>`,
	} {
		assert.Contains(t, got, want)
	}
	for _, gone := range []string{"ハラスメント事案の発生", "LH-EVT-CONS01", "LH-REQ-CONS01-001", "労働契約法"} {
		assert.NotContains(t, got, gone)
	}
	assert.Equal(t, 1, strings.Count(got, "<tbody>"))
	assert.Equal(t, 1, strings.Count(got, "</tbody>"))
}

func TestRender_EscapesUserText(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)
	got, err := r.Render(Page{
		EventID:   "LH-EVT-X",
		EventName: `<script>alert("e")</script>`,
		Basis:     Basis{Name: "A & B", Locator: `"§1"`, URL: `http://x/?a=1&b="2"`},
		Rows: []Row{{
			FieldRequirementID:   `id"><script>`,
			FieldRequirementText: "<b>bold</b> & 'quoted'",
		}},
	})
	require.NoError(t, err)

	assert.NotContains(t, got, "<script>")
	assert.NotContains(t, got, "<b>bold</b>")
	assert.Contains(t, got, "<h1>&lt;script&gt;alert(&quot;e&quot;)&lt;/script&gt;</h1>")
	assert.Contains(t, got, `<tr data-req-id="id&quot;&gt;&lt;script&gt;">`)
	assert.Contains(t, got, "&lt;b&gt;bold&lt;/b&gt; &amp; &#x27;quoted&#x27;</td>")
	assert.Contains(t, got, "<td>A &amp; B / &quot;§1&quot;</td>")
	assert.Contains(t, got, `href="http://x/?a=1&amp;b=&quot;2&quot;"`)
	assert.Equal(t, 1, strings.Count(got, "<tr data-req-id="))
}

func TestRender_PlaceholderWithoutURL(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)
	got, err := r.Render(Page{
		EventID:   "LH-EVT-HIRE09",
		EventName: "採用選考の実施",
		Basis:     Basis{Name: "Act B", Locator: "Art.2"},
		Rows:      []Row{{FieldRequirementID: "R-1"}},
	})
	require.NoError(t, err)
	assert.Contains(t, got, "<td>Act B / Art.2</td>\n          <td>-</td>\n        </tr>")
	assert.NotContains(t, got, "btn-link")
}

func TestRender_RowsInRequirementOrder(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)
	got, err := r.Render(Page{
		EventID:   "E",
		EventName: "E",
		Basis:     Basis{Name: "N", Locator: "L"},
		Rows: []Row{
			{FieldRequirementID: "R-10"},
			{FieldRequirementID: "R-2"},
			{FieldRequirementID: "R-1"},
		},
	})
	require.NoError(t, err)
	i1 := strings.Index(got, `data-req-id="R-1"`)
	i10 := strings.Index(got, `data-req-id="R-10"`)
	i2 := strings.Index(got, `data-req-id="R-2"`)
	require.True(t, i1 >= 0 && i10 >= 0 && i2 >= 0)
	assert.Less(t, i1, i10)
	assert.Less(t, i10, i2)
}

func TestRender_TemplateReusable(t *testing.T) {
	t.Parallel()
	r := newTestRenderer(t)
	a := Page{EventID: "A", EventName: "Event A", Basis: Basis{Name: "Act A", Locator: "1"}, Rows: []Row{{FieldRequirementID: "A-1"}}}
	b := Page{EventID: "B", EventName: "Event B", Basis: Basis{Name: "Act B", Locator: "2"}, Rows: []Row{{FieldRequirementID: "B-1"}}}

	first, err := r.Render(a)
	require.NoError(t, err)
	other, err := r.Render(b)
	require.NoError(t, err)
	again, err := r.Render(a)
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.NotContains(t, other, "Event A")
	assert.NotContains(t, other, "A-1")
}

func TestNewRenderer_BadTemplate(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Page.Intro = "{{.EventName"
	_, err := NewRenderer(&Template{}, cfg.Page)
	assert.Error(t, err)
}

func TestRender_UnknownTemplateField(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Page.BackHref = "../nav/{{.Nope}}.html"
	tmpl, err := ParseTemplate(sentinelTemplate, sentinelMarkers)
	require.NoError(t, err)
	r, err := NewRenderer(tmpl, cfg.Page)
	require.NoError(t, err)
	_, err = r.Render(Page{EventID: "E"})
	assert.Error(t, err)
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;&amp;&#x27;&lt;/a&gt;", escapeHTML(`<a href="x">&'</a>`))
	assert.Equal(t, "&amp;amp;", escapeHTML("&amp;"))
	assert.Equal(t, "労働基準法", escapeHTML("労働基準法"))
}
