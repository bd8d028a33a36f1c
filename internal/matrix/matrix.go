// SPDX-License-Identifier: MPL-2.0

package matrix

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// KeyColumn is the header of the key column.
	KeyColumn = "key"
	// IndexColumn is the header of the synthetic rank column added by WithIndex.
	IndexColumn = "Index"
)

var (
	// ErrShape is the sentinel error wrapped by ShapeError.
	ErrShape = errors.New("inconsistent matrix shape")
	// ErrAlreadyIndexed is returned when WithIndex is applied to an indexed matrix.
	ErrAlreadyIndexed = errors.New("matrix already has an index column")
)

type (
	// Row is the membership vector of one key.
	Row struct {
		// Index is the 1-based rank of the row; 0 unless the matrix is indexed.
		Index int
		// Key is the line shared by the sets marked in Members.
		Key string
		// Members holds one flag per set column, in header order.
		Members []bool
	}

	// Matrix is a rectangular key x set membership grid.
	Matrix struct {
		header  []string
		rows    []Row
		indexed bool
	}

	// ShapeError reports a violated rectangular invariant.
	ShapeError struct {
		Reason string
	}
)

// New builds a matrix from set column names, the sorted key universe and the
// per-key membership vectors. members[i] must have one entry per name.
func New(names, keys []string, members [][]bool) (*Matrix, error) {
	if len(keys) != len(members) {
		return nil, &ShapeError{Reason: fmt.Sprintf("%d keys but %d membership rows", len(keys), len(members))}
	}

	header := make([]string, 0, len(names)+1)
	header = append(header, KeyColumn)
	header = append(header, names...)

	rows := make([]Row, len(keys))
	for i, key := range keys {
		if len(members[i]) != len(names) {
			return nil, &ShapeError{Reason: fmt.Sprintf("row %d (%q) has %d cells, want %d", i, key, len(members[i]), len(names))}
		}
		rows[i] = Row{Key: key, Members: slices.Clone(members[i])}
	}

	return &Matrix{header: header, rows: rows}, nil
}

// Header returns a copy of the column headers.
func (m *Matrix) Header() []string { return slices.Clone(m.header) }

// Rows returns a copy of the rows.
func (m *Matrix) Rows() []Row {
	rows := make([]Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = Row{Index: r.Index, Key: r.Key, Members: slices.Clone(r.Members)}
	}
	return rows
}

// Len returns the number of rows (the size of the key universe).
func (m *Matrix) Len() int { return len(m.rows) }

// Width returns the number of header columns, including key and index columns.
func (m *Matrix) Width() int { return len(m.header) }

// Indexed reports whether the matrix carries the synthetic Index column.
func (m *Matrix) Indexed() bool { return m.indexed }

// SetNames returns the set column names, without the key and index columns.
func (m *Matrix) SetNames() []string {
	return slices.Clone(m.header[m.labelColumns():])
}

// Keys returns the keys in row order.
func (m *Matrix) Keys() []string {
	keys := make([]string, len(m.rows))
	for i, r := range m.rows {
		keys[i] = r.Key
	}
	return keys
}

// Cells returns row i as the flat cell sequence that lines up with Header.
func (m *Matrix) Cells(i int) []Cell {
	return m.rows[i].cells(m.indexed)
}

// AllCells returns every row as a flat cell sequence.
func (m *Matrix) AllCells() [][]Cell {
	out := make([][]Cell, len(m.rows))
	for i := range m.rows {
		out[i] = m.Cells(i)
	}
	return out
}

func (m *Matrix) labelColumns() int {
	if m.indexed {
		return 2
	}
	return 1
}

func (r Row) cells(indexed bool) []Cell {
	cells := make([]Cell, 0, len(r.Members)+2)
	if indexed {
		cells = append(cells, IndexCell(r.Index))
	}
	cells = append(cells, KeyCell(r.Key))
	for _, member := range r.Members {
		cells = append(cells, MemberCell(member))
	}
	return cells
}

// Error implements the error interface for ShapeError.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("inconsistent matrix shape: %s", e.Reason)
}

// Unwrap returns ErrShape for errors.Is() compatibility.
func (e *ShapeError) Unwrap() error { return ErrShape }
