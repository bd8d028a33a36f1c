// SPDX-License-Identifier: MPL-2.0

package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/setsmatcher/setsmatcher/internal/matrix"
)

var (
	//go:embed templates
	templateFS embed.FS

	pageTemplate = template.Must(template.ParseFS(templateFS, "templates/matrix.html.tmpl"))
	pageStyle    = mustReadTemplate("templates/matrix.css")
	pageScript   = mustReadTemplate("templates/sort.js")
)

type (
	// HTMLRenderer writes a standalone page with a styled table whose columns
	// sort on header click.
	HTMLRenderer struct {
		// Title is the page title; DefaultTitle when empty.
		Title string
	}

	htmlCell struct {
		Text  string
		Class string
	}

	htmlPage struct {
		Title  string
		Style  template.CSS
		Script template.JS
		Header []htmlCell
		Rows   [][]htmlCell
	}
)

// Render implements Renderer.
func (r *HTMLRenderer) Render(w io.Writer, m *matrix.Matrix) error {
	page := htmlPage{
		Title:  r.Title,
		Style:  template.CSS(pageStyle),  //nolint:gosec // embedded constant
		Script: template.JS(pageScript), //nolint:gosec // embedded constant
	}
	if page.Title == "" {
		page.Title = DefaultTitle
	}

	for col, name := range m.Header() {
		page.Header = append(page.Header, htmlCell{Text: name, Class: alignClass(col)})
	}
	for i := range m.Len() {
		cells := m.Cells(i)
		row := make([]htmlCell, len(cells))
		for col, c := range cells {
			class := alignClass(col)
			if c.IsMember() && c.Member {
				class += " member"
			}
			row[col] = htmlCell{Text: c.Text(Marker), Class: class}
		}
		page.Rows = append(page.Rows, row)
	}

	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

func alignClass(col int) string {
	if ColumnAlign(col) == AlignRight {
		return "right"
	}
	return "center"
}

func mustReadTemplate(name string) string {
	data, err := templateFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return string(data)
}
