// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/setsmatcher/setsmatcher/pkg/types"
)

// ExitError carries the process status of a failed run up to Execute, so RunE
// handlers never call os.Exit themselves.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the wrapped message, or the bare status without one.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit status " + e.Code.String()
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeOf returns the status for err: ExitOK for nil, the carried code for
// an *ExitError and ExitFailure for anything else.
func exitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil {
		return exitErr.Code
	}
	return types.ExitFailure
}
