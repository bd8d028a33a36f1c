// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/setsmatcher/setsmatcher/internal/render"
	"github.com/setsmatcher/setsmatcher/pkg/types"
)

var (
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidHTMLTitle is returned when the HTML title is blank.
	ErrInvalidHTMLTitle = errors.New("invalid html title")
	// ErrInvalidLoadOptions is the sentinel error wrapped by InvalidLoadOptionsError.
	ErrInvalidLoadOptions = errors.New("invalid load options")
)

type (
	// Config holds the persisted defaults for a matching run.
	Config struct {
		// MaxSize skips input files larger than this; 0 disables the limit.
		MaxSize types.ByteSize `json:"max_size" mapstructure:"max_size"`
		// Index prepends the 1-based Index column.
		Index bool `json:"index" mapstructure:"index"`
		// Verbose reports loaded files on stderr.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// KeyStyle colors the key column of the terminal table.
		KeyStyle render.KeyStyle `json:"key_style" mapstructure:"key_style"`
		// ShowLines draws separators between terminal table rows.
		ShowLines bool `json:"show_lines" mapstructure:"show_lines"`
		// HTMLTitle is the title of HTML output.
		HTMLTitle string `json:"html_title" mapstructure:"html_title"`
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// InvalidLoadOptionsError is returned when LoadOptions has invalid fields.
	// It wraps ErrInvalidLoadOptions for errors.Is() compatibility.
	InvalidLoadOptionsError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxSize:   types.DefaultMaxFileSize,
		KeyStyle:  render.DefaultKeyStyle,
		HTMLTitle: render.DefaultTitle,
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.MaxSize.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.KeyStyle.Validate(); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.HTMLTitle) == "" {
		errs = append(errs, ErrInvalidHTMLTitle)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// RenderOptions converts the presentation settings for the renderers.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Index:     c.Index,
		KeyStyle:  c.KeyStyle,
		ShowLines: c.ShowLines,
		Title:     c.HTMLTitle,
	}
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// Error implements the error interface for InvalidLoadOptionsError.
func (e *InvalidLoadOptionsError) Error() string {
	return fmt.Sprintf("invalid load options: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidLoadOptions and the field errors for errors.Is() compatibility.
func (e *InvalidLoadOptionsError) Unwrap() []error {
	return append([]error{ErrInvalidLoadOptions}, e.FieldErrors...)
}
