// SPDX-License-Identifier: MPL-2.0

// Package scan turns command-line arguments into the files that get validated.
//
// Arguments are deduplicated in first-occurrence order (NormalizeArgs), checked
// for existence and kind before any content is read (Inspect), and expanded
// into candidates (Candidates). Directories are walked depth-first in raw
// directory-listing order; only entries whose name ends in ".avro"
// (case-insensitive) are selected. Files named explicitly are never filtered.
package scan
