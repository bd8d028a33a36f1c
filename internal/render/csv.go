// SPDX-License-Identifier: MPL-2.0

package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/setsmatcher/setsmatcher/internal/matrix"
)

// CSVRenderer writes the header and one record per row, "\n" terminated.
type CSVRenderer struct{}

// Render implements Renderer.
func (CSVRenderer) Render(w io.Writer, m *matrix.Matrix) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(m.Header()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(rowTexts(m)); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}
