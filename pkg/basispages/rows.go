// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// CSV column names written by the checklist generator.
const (
	FieldEventName       = "event_name"
	FieldBasisName       = "basis_name"
	FieldBasisLocator    = "basis_locator"
	FieldBasisURL        = "basis_url"
	FieldRequirementID   = "requirement_id"
	FieldRequirementText = "requirement_text"
)

const utf8BOM = "\ufeff"

// Row is one requirement keyed by CSV header. Absent fields read as "".
type Row map[string]string

// Get returns the named field, or "" when the row has no such column.
func (r Row) Get(field string) string { return r[field] }

// Basis returns the grouping key of the row.
func (r Row) Basis() Basis {
	return Basis{
		Name:    r.Get(FieldBasisName),
		Locator: r.Get(FieldBasisLocator),
		URL:     r.Get(FieldBasisURL),
	}
}

// RequirementID returns the requirement_id field.
func (r Row) RequirementID() string { return r.Get(FieldRequirementID) }

// LoadRows reads the CSV file at path. A missing file is not an error:
// it yields no rows.
func LoadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logf("loadRows: %s not found, skipping", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	logf("loadRows: %s rows=%d", path, len(rows))
	return rows, nil
}

// ReadRows parses CSV data whose first record is the header. Records
// shorter than the header leave the trailing fields absent; extra cells
// are dropped. A leading byte order mark on the header is ignored.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
