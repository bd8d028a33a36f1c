// SPDX-License-Identifier: MPL-2.0

package render

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	// KeyStyleRegular prints keys without color.
	KeyStyleRegular KeyStyle = "regular"
	// KeyStyleGreen prints keys in green.
	KeyStyleGreen KeyStyle = "green"
	// KeyStyleBlue prints keys in blue.
	KeyStyleBlue KeyStyle = "blue"

	// DefaultKeyStyle is used when no key style is configured.
	DefaultKeyStyle = KeyStyleGreen
)

// ErrInvalidKeyStyle is the sentinel error wrapped by InvalidKeyStyleError.
var ErrInvalidKeyStyle = errors.New("invalid key style")

type (
	// KeyStyle selects the color of the key column in the terminal table.
	// The zero value is treated as DefaultKeyStyle.
	KeyStyle string

	// InvalidKeyStyleError is returned when a KeyStyle value is not recognized.
	// It wraps ErrInvalidKeyStyle for errors.Is() compatibility.
	InvalidKeyStyleError struct {
		Value KeyStyle
	}
)

// String returns the string representation of the KeyStyle.
func (k KeyStyle) String() string { return string(k) }

// Validate returns nil if the KeyStyle is empty or one of the defined styles.
func (k KeyStyle) Validate() error {
	switch k {
	case "", KeyStyleRegular, KeyStyleGreen, KeyStyleBlue:
		return nil
	default:
		return &InvalidKeyStyleError{Value: k}
	}
}

// color maps the style to a terminal color. ok is false for regular keys.
func (k KeyStyle) color() (c lipgloss.TerminalColor, ok bool) {
	switch k {
	case KeyStyleRegular:
		return nil, false
	case KeyStyleBlue:
		return lipgloss.ANSIColor(4), true
	default:
		return lipgloss.ANSIColor(2), true
	}
}

// Error implements the error interface for InvalidKeyStyleError.
func (e *InvalidKeyStyleError) Error() string {
	return fmt.Sprintf("invalid key style %q (valid: regular, green, blue)", e.Value)
}

// Unwrap returns ErrInvalidKeyStyle for errors.Is() compatibility.
func (e *InvalidKeyStyleError) Unwrap() error { return ErrInvalidKeyStyle }
