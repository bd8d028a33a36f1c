// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"fmt"

	"github.com/setsmatcher/setsmatcher/pkg/types"
)

const (
	// SkipTooLarge means the file exceeds the configured size ceiling.
	SkipTooLarge SkipReason = "too large"
	// SkipNotFound means the file does not exist.
	SkipNotFound SkipReason = "not found"
	// SkipPermission means the file could not be opened for reading.
	SkipPermission SkipReason = "permission denied"
	// SkipIO covers every other read failure, directories included.
	SkipIO SkipReason = "read failed"
	// SkipUndetectable means no encoding could be detected for the content.
	SkipUndetectable SkipReason = "undetectable encoding"
)

var (
	// ErrNoInputs is returned when Load receives no patterns.
	ErrNoInputs = errors.New("empty list of files")
	// ErrNothingUsable is returned when every input was skipped.
	ErrNothingUsable = errors.New("nothing to process")
	// ErrSkipped is the sentinel error wrapped by SkipError.
	ErrSkipped = errors.New("file skipped")
)

type (
	// SkipReason classifies why a file was left out.
	SkipReason string

	// SkipError describes a file left out of the run. It never aborts Load.
	SkipError struct {
		Path   string
		Reason SkipReason
		Err    error
	}
)

// Warning reports whether the skip is logged as a warning rather than an error.
func (r SkipReason) Warning() bool { return r == SkipTooLarge }

// String returns the reason text.
func (r SkipReason) String() string { return string(r) }

// Error implements the error interface for SkipError.
func (e *SkipError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Is reports ErrSkipped so callers can test for any skip with errors.Is.
func (e *SkipError) Is(target error) bool { return target == ErrSkipped }

// Unwrap returns the underlying cause.
func (e *SkipError) Unwrap() error { return e.Err }

// SizeError reports a file larger than the configured ceiling.
type SizeError struct {
	Size types.ByteSize
	Max  types.ByteSize
}

// Error implements the error interface for SizeError.
func (e *SizeError) Error() string {
	return fmt.Sprintf("file size %s exceeds maximum %s", e.Size, e.Max)
}
