// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Marker errors reported through *MarkerError.
var (
	ErrMarkerNotFound   = errors.New("marker not found")
	ErrMarkerDuplicated = errors.New("marker occurs more than once")
	ErrMarkerOverlap    = errors.New("marker overlaps another marker")
)

// slot identifies a replaceable region of the template.
type slot int

const (
	slotTitle slot = iota
	slotBackLink
	slotHeading
	slotIntro
	slotBody
	slotCount
)

func (s slot) String() string {
	switch s {
	case slotTitle:
		return "title"
	case slotBackLink:
		return "back_link"
	case slotHeading:
		return "heading"
	case slotIntro:
		return "intro"
	case slotBody:
		return "body"
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// MarkerError describes a template that cannot be used because one of
// its markers is missing, repeated, or overlaps another.
type MarkerError struct {
	Slot   string
	Marker string
	Err    error
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("template marker %s (%q): %v", e.Slot, e.Marker, e.Err)
}

func (e *MarkerError) Unwrap() error { return e.Err }

// Template is a page split into literal text around the replaceable
// regions. It is immutable once parsed.
type Template struct {
	// literals[i] precedes slots[i]; the last literal follows the last slot.
	literals []string
	slots    []slot

	bodyStart, bodyEnd string
}

type span struct {
	slot       slot
	marker     string
	start, end int
}

// ParseTemplate locates every marker in text. All markers must occur
// exactly once and must not overlap.
func ParseTemplate(text string, m Markers) (*Template, error) {
	fixed := []struct {
		slot   slot
		marker string
	}{
		{slotTitle, m.Title},
		{slotBackLink, m.BackLink},
		{slotHeading, m.Heading},
		{slotIntro, m.Intro},
	}

	spans := make([]span, 0, slotCount)
	for _, f := range fixed {
		sp, err := locate(text, f.slot, f.marker)
		if err != nil {
			return nil, err
		}
		spans = append(spans, sp)
	}
	body, err := locateBody(text, m.BodyStart, m.BodyEnd)
	if err != nil {
		return nil, err
	}
	spans = append(spans, body)

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	t := &Template{bodyStart: m.BodyStart, bodyEnd: m.BodyEnd}
	pos := 0
	for _, sp := range spans {
		if sp.start < pos {
			return nil, &MarkerError{Slot: sp.slot.String(), Marker: sp.marker, Err: ErrMarkerOverlap}
		}
		t.literals = append(t.literals, text[pos:sp.start])
		t.slots = append(t.slots, sp.slot)
		pos = sp.end
	}
	t.literals = append(t.literals, text[pos:])
	return t, nil
}

func locate(text string, s slot, marker string) (span, error) {
	if marker == "" {
		return span{}, &MarkerError{Slot: s.String(), Marker: marker, Err: ErrMarkerNotFound}
	}
	switch n := strings.Count(text, marker); {
	case n == 0:
		return span{}, &MarkerError{Slot: s.String(), Marker: marker, Err: ErrMarkerNotFound}
	case n > 1:
		return span{}, &MarkerError{Slot: s.String(), Marker: marker, Err: ErrMarkerDuplicated}
	}
	i := strings.Index(text, marker)
	return span{slot: s, marker: marker, start: i, end: i + len(marker)}, nil
}

// locateBody finds the table body: the single start marker through the
// first end marker after it.
func locateBody(text, start, end string) (span, error) {
	sp, err := locate(text, slotBody, start)
	if err != nil {
		return span{}, err
	}
	if end == "" {
		return span{}, &MarkerError{Slot: slotBody.String(), Marker: end, Err: ErrMarkerNotFound}
	}
	j := strings.Index(text[sp.end:], end)
	if j < 0 {
		return span{}, &MarkerError{Slot: slotBody.String(), Marker: end, Err: ErrMarkerNotFound}
	}
	sp.end += j + len(end)
	return sp, nil
}

// execute joins the literals with the slot contents.
func (t *Template) execute(fill [slotCount]string) string {
	var b strings.Builder
	for i, s := range t.slots {
		b.WriteString(t.literals[i])
		b.WriteString(fill[s])
	}
	b.WriteString(t.literals[len(t.literals)-1])
	return b.String()
}
