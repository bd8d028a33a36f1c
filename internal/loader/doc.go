// SPDX-License-Identifier: MPL-2.0

// Package loader turns path patterns into named line sets.
//
// Patterns are expanded against the working directory (or Options.Dir),
// duplicates are dropped in first-seen order and every file is read, decoded
// and split into a set of lines, one file at a time. A file that cannot be used
// (too large, missing, unreadable, undecodable) is reported through the logger
// and skipped; only an empty input list or a run where every file was skipped
// is an error.
package loader
