// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasisHash_KnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		basis Basis
		want  string
	}{
		{Basis{Name: "Act A", Locator: "Art.1", URL: "http://x"}, "225f3f2527"},
		{Basis{Name: "Act B", Locator: "Art.2"}, "619494a750"},
		{Basis{Name: "労働契約法", Locator: "第5条", URL: "https://laws.e-gov.go.jp/law/419AC0000000128"}, "65d376d9e2"},
		{Basis{}, "59d7d64dbc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.basis.Hash(), "hash of %+v", tt.basis)
	}
}

func TestBasisHash_Deterministic(t *testing.T) {
	t.Parallel()
	first := BasisHash("職業安定法", "第5条の3", "https://laws.e-gov.go.jp/law/322AC0000000141")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BasisHash("職業安定法", "第5条の3", "https://laws.e-gov.go.jp/law/322AC0000000141"))
	}
	assert.Len(t, first, 10)
}

func TestBasisHash_EachFieldMatters(t *testing.T) {
	t.Parallel()
	base := Basis{Name: "Act A", Locator: "Art.1", URL: "http://x"}
	variants := []Basis{
		{Name: "Act A2", Locator: "Art.1", URL: "http://x"},
		{Name: "Act A", Locator: "Art.2", URL: "http://x"},
		{Name: "Act A", Locator: "Art.1", URL: "http://y"},
		{Name: "Act A", Locator: "Art.1"},
		// Same concatenation without the separator.
		{Name: "Act AArt.1", Locator: "", URL: "http://x"},
	}
	for _, v := range variants {
		assert.NotEqual(t, base.Hash(), v.Hash(), "variant %+v", v)
	}
}

func TestBasis_Display(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "労働契約法 / 第5条", Basis{Name: "労働契約法", Locator: "第5条"}.Display())
}

func TestPageFileName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "LH-EVT-HIRE09__225f3f2527.html", PageFileName("LH-EVT-HIRE09", "225f3f2527"))
}
