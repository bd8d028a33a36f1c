// SPDX-License-Identifier: MPL-2.0

package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// FormatTable is the styled terminal table.
	FormatTable Format = "table"
	// FormatCSV is comma separated values.
	FormatCSV Format = "csv"
	// FormatMarkdown is a GitHub-flavoured Markdown table.
	FormatMarkdown Format = "md"
	// FormatHTML is a standalone HTML page with a sortable table.
	FormatHTML Format = "html"
	// FormatXLSX is an Excel workbook.
	FormatXLSX Format = "xlsx"
)

var (
	// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrUnknownSuffix is returned when no format can be guessed from a file name.
	ErrUnknownSuffix = errors.New("cannot guess output format from file suffix")

	suffixFormats = map[string]Format{
		".csv":      FormatCSV,
		".md":       FormatMarkdown,
		".markdown": FormatMarkdown,
		".html":     FormatHTML,
		".htm":      FormatHTML,
		".xlsx":     FormatXLSX,
	}
)

type (
	// Format names an output artifact kind.
	Format string

	// InvalidFormatError is returned when a Format value is not recognized.
	// It wraps ErrInvalidFormat for errors.Is() compatibility.
	InvalidFormatError struct {
		Value Format
	}

	// UnknownSuffixError carries the file name whose suffix matched no format.
	UnknownSuffixError struct {
		Path string
	}
)

// FileFormats returns the formats that can be written to an output file.
func FileFormats() []Format {
	return []Format{FormatCSV, FormatMarkdown, FormatHTML, FormatXLSX}
}

// ParseFormat parses a format name case-insensitively. "markdown" is accepted
// as an alias of "md".
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "markdown" {
		f = FormatMarkdown
	}
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// FormatFromPath guesses the format from the suffix of an output path.
func FormatFromPath(path string) (Format, error) {
	if f, ok := suffixFormats[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}
	return "", &UnknownSuffixError{Path: path}
}

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// Validate returns nil if the Format is one of the defined formats.
func (f Format) Validate() error {
	switch f {
	case FormatTable, FormatCSV, FormatMarkdown, FormatHTML, FormatXLSX:
		return nil
	default:
		return &InvalidFormatError{Value: f}
	}
}

// Binary reports whether the format produces non-text output.
func (f Format) Binary() bool { return f == FormatXLSX }

// Error implements the error interface for InvalidFormatError.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: csv, md, html, xlsx)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// Error implements the error interface for UnknownSuffixError.
func (e *UnknownSuffixError) Error() string {
	return fmt.Sprintf("cannot guess output format from %q, use --format", e.Path)
}

// Unwrap returns ErrUnknownSuffix for errors.Is() compatibility.
func (e *UnknownSuffixError) Unwrap() error { return ErrUnknownSuffix }
