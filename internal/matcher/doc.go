// SPDX-License-Identifier: MPL-2.0

// Package matcher computes the membership matrix of a list of line sets.
//
// Input is a closed variant: either AnonymousSets, whose columns are numbered
// "1", "2", ... in input order, or NamedSets, whose columns carry the set
// names. Match is pure: it performs no I/O and no logging.
package matcher
