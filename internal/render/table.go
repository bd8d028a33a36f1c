// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/setsmatcher/setsmatcher/internal/matrix"
)

// TableRenderer draws the matrix as a bordered terminal table. Colors are
// resolved against the writer, so output to a file or pipe is plain text.
type TableRenderer struct {
	KeyStyle  KeyStyle
	ShowLines bool
}

// Render implements Renderer.
func (r *TableRenderer) Render(w io.Writer, m *matrix.Matrix) error {
	re := lipgloss.NewRenderer(w)

	keyCol := 0
	if m.Indexed() {
		keyCol = 1
	}

	base := re.NewStyle().Padding(0, 1)
	headerStyle := base.Bold(true)
	keyStyle := base
	if c, ok := r.KeyStyle.color(); ok {
		keyStyle = keyStyle.Foreground(c)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(re.NewStyle().Foreground(lipgloss.ANSIColor(8))).
		BorderRow(r.ShowLines).
		Headers(m.Header()...).
		Rows(rowTexts(m)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				s = headerStyle
			case col == keyCol:
				s = keyStyle
			default:
				s = base
			}
			if ColumnAlign(col) == AlignRight {
				return s.Align(lipgloss.Right)
			}
			return s.Align(lipgloss.Center)
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
