// SPDX-License-Identifier: MPL-2.0

package matcher

import (
	"github.com/setsmatcher/setsmatcher/internal/matrix"
)

// Match builds the membership matrix of in.
//
// Rows follow the key universe, the ascending byte-order union of every set.
// Columns follow input order. The header is "key" followed by the column names.
func Match(in Input) (*matrix.Matrix, error) {
	if in == nil {
		return nil, ErrInvalidInput
	}

	names, sets, err := in.columns()
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, ErrEmptyInput
	}

	keys := Universe(sets...)
	members := make([][]bool, len(keys))
	for i, key := range keys {
		row := make([]bool, len(sets))
		for j, s := range sets {
			row[j] = s.Has(key)
		}
		members[i] = row
	}

	return matrix.New(names, keys, members)
}

// MatchNamed is shorthand for Match(NamedSets(sets)).
func MatchNamed(sets []NamedSet) (*matrix.Matrix, error) {
	return Match(NamedSets(sets))
}

// Universe returns the sorted union of the members of sets.
func Universe(sets ...Set) []string {
	size := 0
	for _, s := range sets {
		size = max(size, s.Len())
	}
	union := make(Set, size)
	for _, s := range sets {
		for item := range s {
			union.Add(item)
		}
	}
	return union.Sorted()
}
