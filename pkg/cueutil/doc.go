// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema and
// formats CUE errors with JSON-style paths.
//
// The flow used by configuration loading is:
//
//  1. Reject oversized files before compiling them
//  2. Compile the schema and unify the user value with one of its definitions
//  3. Validate (optional fields allowed) and decode to a plain map
//
// # Usage
//
//	//go:embed config_schema.cue
//	var schema []byte
//
//	values, err := cueutil.DecodeMap(schema, "#Config", data, "config.cue")
//	if err != nil {
//	    return err // error names the file and the offending field
//	}
package cueutil
