// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown help
// pages for the failures a matching run can end in.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions for the user. Catalog entries are rendered with glamour when a
// run aborts so the user sees what went wrong and what to try next.
package issue
