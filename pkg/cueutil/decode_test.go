// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/setsmatcher/setsmatcher/pkg/types"
)

const testSchema = `
#Config: {
	name?:  string & !=""
	count?: int & >=0
	mode?:  "fast" | "slow"
}
`

func TestDecodeMap(t *testing.T) {
	t.Parallel()

	got, err := DecodeMap([]byte(testSchema), []byte(`name: "x"
count: 3
`), "#Config", "test.cue")
	if err != nil {
		t.Fatalf("DecodeMap() unexpected error: %v", err)
	}
	if got["name"] != "x" {
		t.Errorf("name = %v, want x", got["name"])
	}
	if _, ok := got["mode"]; ok {
		t.Error("absent optional fields should not be decoded")
	}
}

func TestDecodeMap_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		contains string
	}{
		{"syntax error", "name: {", "test.cue"},
		{"type mismatch", `count: "three"`, "count"},
		{"disjunction", `mode: "medium"`, "mode"},
		{"unknown field", `colour: "red"`, "colour"},
		{"constraint", `count: -1`, "count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeMap([]byte(testSchema), []byte(tt.data), "#Config", "test.cue")
			if err == nil {
				t.Fatalf("DecodeMap(%q) expected error", tt.data)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("DecodeMap(%q) error = %v, want it to mention %q", tt.data, err, tt.contains)
			}
		})
	}
}

func TestDecodeMap_MissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := DecodeMap([]byte(testSchema), []byte(`name: "x"`), "#Other", "test.cue")
	if err == nil || !strings.Contains(err.Error(), "#Other") {
		t.Errorf("DecodeMap() error = %v, want missing definition error", err)
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		max     types.ByteSize
		wantErr bool
	}{
		{"within limit", 11, 100, false},
		{"exact limit", 100, 100, false},
		{"exceeds limit", 101, 100, true},
		{"empty data", 0, 100, false},
		{"no limit", 1 << 16, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), tt.max, "test.cue")
			if !tt.wantErr {
				if err != nil {
					t.Errorf("CheckFileSize(%d, %d) = %v, want nil", tt.size, tt.max, err)
				}
				return
			}
			if !errors.Is(err, ErrFileTooLarge) {
				t.Fatalf("CheckFileSize(%d, %d) = %v, want ErrFileTooLarge", tt.size, tt.max, err)
			}
			for _, part := range []string{"test.cue", "101", "100"} {
				if !strings.Contains(err.Error(), part) {
					t.Errorf("error %q should mention %q", err, part)
				}
			}
		})
	}
}
