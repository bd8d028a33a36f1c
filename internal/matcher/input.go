// SPDX-License-Identifier: MPL-2.0

package matcher

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput is returned for malformed input: a nil Input, a nil
	// member set or a blank set name.
	ErrInvalidInput = errors.New("list of sets or list of named sets expected")
	// ErrEmptyInput is returned when the input holds no sets.
	ErrEmptyInput = errors.New("empty list of sets")
)

type (
	// Input is the closed set of shapes accepted by Match.
	Input interface {
		columns() ([]string, []Set, error)
	}

	// AnonymousSets are sets without names; columns are numbered from 1.
	AnonymousSets []Set

	// NamedSets are sets labelled with their names.
	NamedSets []NamedSet

	// InvalidSetError reports which set of the input is malformed.
	InvalidSetError struct {
		Position int
		Reason   string
	}
)

func (a AnonymousSets) columns() ([]string, []Set, error) {
	names := make([]string, len(a))
	sets := make([]Set, len(a))
	for i, s := range a {
		if s == nil {
			return nil, nil, &InvalidSetError{Position: i, Reason: "nil set"}
		}
		names[i] = strconv.Itoa(i + 1)
		sets[i] = s
	}
	return names, sets, nil
}

func (n NamedSets) columns() ([]string, []Set, error) {
	names := make([]string, len(n))
	sets := make([]Set, len(n))
	for i, ns := range n {
		if strings.TrimSpace(ns.Name) == "" {
			return nil, nil, &InvalidSetError{Position: i, Reason: "blank name"}
		}
		if ns.Members == nil {
			return nil, nil, &InvalidSetError{Position: i, Reason: fmt.Sprintf("nil members for %q", ns.Name)}
		}
		names[i] = ns.Name
		sets[i] = ns.Members
	}
	return names, sets, nil
}

// Error implements the error interface for InvalidSetError.
func (e *InvalidSetError) Error() string {
	return fmt.Sprintf("invalid set at position %d: %s", e.Position, e.Reason)
}

// Unwrap returns ErrInvalidInput for errors.Is() compatibility.
func (e *InvalidSetError) Unwrap() error { return ErrInvalidInput }
