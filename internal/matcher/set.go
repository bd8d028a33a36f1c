// SPDX-License-Identifier: MPL-2.0

package matcher

import (
	"maps"
	"slices"
)

// Set is a set of lines.
type Set map[string]struct{}

// NewSet returns a set holding items, duplicates collapsed.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts item into the set.
func (s Set) Add(item string) { s[item] = struct{}{} }

// Has reports whether item is a member of the set.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Sorted returns the members in ascending byte order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// NamedSet pairs a set with the short name of the file it was read from.
type NamedSet struct {
	Name    string
	Members Set
}
