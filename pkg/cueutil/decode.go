// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/setsmatcher/setsmatcher/pkg/types"
)

// DefaultMaxFileSize bounds the CUE documents accepted by DecodeMap.
const DefaultMaxFileSize = types.ByteSize(1 << 20)

// ErrFileTooLarge is the sentinel error wrapped by FileTooLargeError.
var ErrFileTooLarge = errors.New("file too large")

// FileTooLargeError is returned when a CUE document exceeds the size limit.
// It wraps ErrFileTooLarge for errors.Is() compatibility.
type FileTooLargeError struct {
	Filename string
	Size     types.ByteSize
	Max      types.ByteSize
}

// CheckFileSize verifies that data does not exceed maxSize. A zero maxSize
// disables the check.
func CheckFileSize(data []byte, maxSize types.ByteSize, filename string) error {
	size := types.ByteSize(len(data))
	if maxSize.Exceeded(int64(size)) {
		return &FileTooLargeError{Filename: filename, Size: size, Max: maxSize}
	}
	return nil
}

// DecodeMap compiles data, unifies it with the schema definition at
// definition (e.g. "#Config") and decodes the result into a map. Fields may
// be left out; anything present must satisfy the schema.
func DecodeMap(schema, data []byte, definition, filename string) (map[string]any, error) {
	if err := CheckFileSize(data, DefaultMaxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	root := schemaValue.LookupPath(cue.ParsePath(definition))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", definition, root.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	unified := root.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return nil, FormatError(err, filename)
	}

	var out map[string]any
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, filename)
	}
	return out, nil
}

// Error implements the error interface for FileTooLargeError.
func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: file size %d bytes exceeds maximum %d bytes", e.Filename, e.Size, e.Max)
}

// Unwrap returns ErrFileTooLarge for errors.Is() compatibility.
func (e *FileTooLargeError) Unwrap() error { return ErrFileTooLarge }
