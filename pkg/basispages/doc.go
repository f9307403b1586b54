// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package basispages generates the static per-basis reference pages of
// the labor-hr requirements database. Audit checklist rows are read from
// the generated CSV files, grouped by legal basis, and injected into a
// hand-maintained template page. Each group becomes one file named
// {event_id}__{hash10}.html. Existing files are never overwritten.
package basispages
