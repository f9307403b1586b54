// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import (
	"crypto/md5"
	"encoding/hex"
)

const (
	basisSeparator = "||"
	hashLength     = 10
)

// Basis is the legal source a requirement rests on. Two rows belong to
// the same page exactly when their Basis values are equal.
type Basis struct {
	Name    string
	Locator string
	URL     string
}

// Hash returns the page identifier for b: the first 10 hex characters
// of the MD5 digest of Name||Locator||URL. Existing page names depend on
// this exact construction.
func (b Basis) Hash() string {
	sum := md5.Sum([]byte(b.Name + basisSeparator + b.Locator + basisSeparator + b.URL))
	return hex.EncodeToString(sum[:])[:hashLength]
}

// Display returns the text shown in the basis column.
func (b Basis) Display() string {
	return b.Name + " / " + b.Locator
}

// BasisHash is a convenience wrapper around Basis.Hash.
func BasisHash(name, locator, url string) string {
	return Basis{Name: name, Locator: locator, URL: url}.Hash()
}

// PageFileName returns the output file name for an event and hash.
func PageFileName(eventID, hash string) string {
	return eventID + "__" + hash + ".html"
}
