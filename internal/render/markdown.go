// SPDX-License-Identifier: MPL-2.0

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/setsmatcher/setsmatcher/internal/matrix"
)

const minMarkdownWidth = 3

var markdownEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`)

// MarkdownRenderer writes a GitHub-flavoured pipe table with padded columns.
type MarkdownRenderer struct{}

// Render implements Renderer.
func (MarkdownRenderer) Render(w io.Writer, m *matrix.Matrix) error {
	header := escapeMarkdown(m.Header())
	rows := rowTexts(m)
	for i := range rows {
		rows[i] = escapeMarkdown(rows[i])
	}

	widths := make([]int, len(header))
	for col, h := range header {
		widths[col] = max(minMarkdownWidth, lipgloss.Width(h))
	}
	for _, row := range rows {
		for col, cell := range row {
			widths[col] = max(widths[col], lipgloss.Width(cell))
		}
	}

	bw := bufio.NewWriter(w)
	writeMarkdownRow(bw, header, widths)

	bw.WriteString("|")
	for col, width := range widths {
		if ColumnAlign(col) == AlignRight {
			bw.WriteString(strings.Repeat("-", width+1) + ":|")
		} else {
			bw.WriteString(":" + strings.Repeat("-", width) + ":|")
		}
	}
	bw.WriteString("\n")

	for _, row := range rows {
		writeMarkdownRow(bw, row, widths)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func writeMarkdownRow(bw *bufio.Writer, cells []string, widths []int) {
	bw.WriteString("|")
	for col, cell := range cells {
		bw.WriteString(" " + pad(cell, widths[col], ColumnAlign(col)) + " |")
	}
	bw.WriteString("\n")
}

// pad fills s with spaces up to width display cells.
func pad(s string, width int, align Align) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", gap) + s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func escapeMarkdown(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markdownEscaper.Replace(c)
	}
	return out
}
