// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"io"

	"github.com/setsmatcher/setsmatcher/internal/matrix"
)

// Marker is the text shown for a set membership flag.
const Marker = "✓"

const (
	// AlignRight aligns a column to the right.
	AlignRight Align = iota + 1
	// AlignCenter centers a column.
	AlignCenter
)

// DefaultTitle is the HTML page title when none is configured.
const DefaultTitle = "sets-matcher"

type (
	// Renderer writes a matrix to w in one output format. Renderers never add
	// or remove columns; the matrix they receive is already shaped.
	Renderer interface {
		Render(w io.Writer, m *matrix.Matrix) error
	}

	// Options selects the renderer and its presentation settings.
	Options struct {
		// Index prepends the 1-based Index column.
		Index bool
		// KeyStyle colors the key column of the terminal table.
		KeyStyle KeyStyle
		// ShowLines draws separators between terminal table rows.
		ShowLines bool
		// Title is the HTML page title.
		Title string
	}

	// Align is the horizontal alignment of a column.
	Align int
)

// New returns the renderer for the given format.
func New(f Format, opts Options) (Renderer, error) {
	if err := opts.KeyStyle.Validate(); err != nil {
		return nil, err
	}

	switch f {
	case FormatTable:
		return &TableRenderer{KeyStyle: opts.KeyStyle, ShowLines: opts.ShowLines}, nil
	case FormatCSV:
		return &CSVRenderer{}, nil
	case FormatMarkdown:
		return &MarkdownRenderer{}, nil
	case FormatHTML:
		return &HTMLRenderer{Title: opts.Title}, nil
	case FormatXLSX:
		return &XLSXRenderer{}, nil
	default:
		return nil, &InvalidFormatError{Value: f}
	}
}

// Render shapes m according to opts and hands the result to r. This is the
// single place where the Index column is added.
func Render(w io.Writer, r Renderer, m *matrix.Matrix, opts Options) error {
	shaped, err := matrix.Shape(m, opts.Index)
	if err != nil {
		return fmt.Errorf("shape matrix: %w", err)
	}
	return r.Render(w, shaped)
}

// ColumnAlign returns the alignment of column col: the first column is right
// aligned, every other column is centered.
func ColumnAlign(col int) Align {
	if col == 0 {
		return AlignRight
	}
	return AlignCenter
}

// rowTexts returns the presentation text of every row.
func rowTexts(m *matrix.Matrix) [][]string {
	rows := make([][]string, m.Len())
	for i := range rows {
		cells := m.Cells(i)
		texts := make([]string, len(cells))
		for j, c := range cells {
			texts[j] = c.Text(Marker)
		}
		rows[i] = texts
	}
	return rows
}
