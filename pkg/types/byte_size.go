// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/docker/go-units"
)

// DefaultMaxFileSize is the per-file ceiling applied when nothing else is configured.
const DefaultMaxFileSize ByteSize = 10 * units.MiB

// ErrInvalidByteSize is the sentinel error wrapped by InvalidByteSizeError.
var ErrInvalidByteSize = errors.New("invalid byte size")

type (
	// ByteSize is a non-negative number of bytes.
	// The zero value means "no limit" wherever a ByteSize is used as a ceiling.
	ByteSize int64

	// InvalidByteSizeError is returned when a ByteSize is negative or cannot be parsed.
	InvalidByteSizeError struct {
		Value string
		Cause error
	}
)

// ParseByteSize parses a human size such as "10MiB", "512k" or "4096".
// Units are binary (1k = 1024 bytes), as with docker's RAM sizes.
func ParseByteSize(s string) (ByteSize, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &InvalidByteSizeError{Value: s}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		size := ByteSize(n)
		if err := size.Validate(); err != nil {
			return 0, err
		}
		return size, nil
	}
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, &InvalidByteSizeError{Value: s, Cause: err}
	}
	size := ByteSize(n)
	if err := size.Validate(); err != nil {
		return 0, err
	}
	return size, nil
}

// Validate returns an error if the size is negative.
func (b ByteSize) Validate() error {
	if b < 0 {
		return &InvalidByteSizeError{Value: strconv.FormatInt(int64(b), 10)}
	}
	return nil
}

// Unlimited reports whether the size disables the ceiling.
func (b ByteSize) Unlimited() bool { return b == 0 }

// Exceeded reports whether n bytes exceed this ceiling. An unlimited size is never exceeded.
func (b ByteSize) Exceeded(n int64) bool {
	return !b.Unlimited() && n > int64(b)
}

// String renders the size with binary units, e.g. "10MiB".
func (b ByteSize) String() string {
	return units.BytesSize(float64(b))
}

// Error implements the error interface for InvalidByteSizeError.
func (e *InvalidByteSizeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid byte size %q: %v", e.Value, e.Cause)
	}
	return fmt.Sprintf("invalid byte size %q (must be a non-negative size such as 10MiB)", e.Value)
}

// Unwrap returns ErrInvalidByteSize for errors.Is() compatibility.
func (e *InvalidByteSizeError) Unwrap() error { return ErrInvalidByteSize }
