// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import (
	"slices"
	"strings"
)

// Group is the set of rows sharing one Basis.
type Group struct {
	Basis Basis
	Rows  []Row
}

// GroupByBasis partitions rows by Basis. Groups appear in order of first
// occurrence and keep their rows in input order.
func GroupByBasis(rows []Row) []Group {
	index := make(map[Basis]int)
	var groups []Group
	for _, r := range rows {
		b := r.Basis()
		i, ok := index[b]
		if !ok {
			i = len(groups)
			index[b] = i
			groups = append(groups, Group{Basis: b})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}

// SortByRequirementID returns a copy of rows ordered by requirement_id
// as a plain string. Equal ids keep their relative order.
func SortByRequirementID(rows []Row) []Row {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b Row) int {
		return strings.Compare(a.RequirementID(), b.RequirementID())
	})
	return sorted
}
