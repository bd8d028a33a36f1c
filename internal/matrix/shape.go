// SPDX-License-Identifier: MPL-2.0

package matrix

import "slices"

// WithIndex returns a new matrix with IndexColumn prepended to the header and
// each row ranked from 1 in row order. The receiver is left untouched.
// Applying it to an already indexed matrix returns ErrAlreadyIndexed.
func (m *Matrix) WithIndex() (*Matrix, error) {
	if m.indexed {
		return nil, ErrAlreadyIndexed
	}

	header := make([]string, 0, len(m.header)+1)
	header = append(header, IndexColumn)
	header = append(header, m.header...)

	rows := make([]Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = Row{Index: i + 1, Key: r.Key, Members: slices.Clone(r.Members)}
	}

	return &Matrix{header: header, rows: rows, indexed: true}, nil
}

// Shape applies the optional presentation augmentations ahead of rendering.
// With addIndex false the input is returned as is.
func Shape(m *Matrix, addIndex bool) (*Matrix, error) {
	if !addIndex {
		return m, nil
	}
	return m.WithIndex()
}
