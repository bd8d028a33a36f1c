// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/setsmatcher/setsmatcher/internal/matrix"
)

const (
	// SheetName is the worksheet holding the matrix.
	SheetName = "Matrix"

	headerFill = "009879"
	markerFill = "DDDDDD"

	minColumnWidth = 8.0
	maxColumnWidth = 80.0
)

// XLSXRenderer writes an Excel workbook with one worksheet. Member cells are
// filled and hold Marker; the key column is sized to its longest key.
type XLSXRenderer struct{}

type xlsxStyles struct {
	header int
	label  int
	marker int
	empty  int
}

// Render implements Renderer.
func (XLSXRenderer) Render(w io.Writer, m *matrix.Matrix) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	if err = f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name worksheet: %w", err)
	}

	styles, err := newXLSXStyles(f)
	if err != nil {
		return err
	}

	widths := make([]float64, m.Width())
	for col, name := range m.Header() {
		widths[col] = max(minColumnWidth, textWidth(name))
		if err = setCell(f, col, 1, name, styles.header); err != nil {
			return err
		}
	}

	for i := range m.Len() {
		row := i + 2
		for col, c := range m.Cells(i) {
			var value any
			style := styles.empty
			switch {
			case c.Kind == matrix.CellIndex:
				value, style = c.Index, styles.label
			case c.Kind == matrix.CellKey:
				value, style = c.Key, styles.label
				widths[col] = max(widths[col], textWidth(c.Key))
			case c.Member:
				value, style = Marker, styles.marker
			default:
				value = ""
			}
			if err = setCell(f, col, row, value, style); err != nil {
				return err
			}
		}
	}

	for col, width := range widths {
		name, nameErr := excelize.ColumnNumberToName(col + 1)
		if nameErr != nil {
			return fmt.Errorf("column name: %w", nameErr)
		}
		if err = f.SetColWidth(SheetName, name, name, min(width, maxColumnWidth)); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	if err = f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func newXLSXStyles(f *excelize.File) (xlsxStyles, error) {
	var s xlsxStyles
	var err error

	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: center,
	}); err != nil {
		return s, fmt.Errorf("header style: %w", err)
	}
	if s.label, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, fmt.Errorf("label style: %w", err)
	}
	if s.marker, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{markerFill}},
		Alignment: center,
	}); err != nil {
		return s, fmt.Errorf("marker style: %w", err)
	}
	if s.empty, err = f.NewStyle(&excelize.Style{Alignment: center}); err != nil {
		return s, fmt.Errorf("cell style: %w", err)
	}
	return s, nil
}

func setCell(f *excelize.File, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
		return fmt.Errorf("style cell %s: %w", cell, err)
	}
	return nil
}

// textWidth approximates the column width needed to show s.
func textWidth(s string) float64 {
	return float64(len([]rune(s))) + 2
}
