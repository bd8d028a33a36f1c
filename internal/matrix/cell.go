// SPDX-License-Identifier: MPL-2.0

package matrix

import "strconv"

const (
	// CellKey holds a key string.
	CellKey CellKind = iota + 1
	// CellIndex holds a 1-based row rank.
	CellIndex
	// CellMember holds a membership flag.
	CellMember
)

type (
	// CellKind discriminates the values a Cell can carry.
	CellKind int

	// Cell is one value of the output data contract: a key, an index or a
	// membership flag.
	Cell struct {
		Kind   CellKind
		Key    string
		Index  int
		Member bool
	}
)

// KeyCell returns a key cell.
func KeyCell(key string) Cell { return Cell{Kind: CellKey, Key: key} }

// IndexCell returns an index cell.
func IndexCell(i int) Cell { return Cell{Kind: CellIndex, Index: i} }

// MemberCell returns a membership cell.
func MemberCell(member bool) Cell { return Cell{Kind: CellMember, Member: member} }

// IsMember reports whether the cell is a membership flag.
func (c Cell) IsMember() bool { return c.Kind == CellMember }

// Text renders the cell for presentation: keys verbatim, indexes in decimal,
// true flags as marker and false flags as the empty string.
func (c Cell) Text(marker string) string {
	switch c.Kind {
	case CellIndex:
		return strconv.Itoa(c.Index)
	case CellMember:
		if c.Member {
			return marker
		}
		return ""
	default:
		return c.Key
	}
}
