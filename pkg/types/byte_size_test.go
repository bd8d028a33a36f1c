// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestParseByteSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ByteSize
		wantErr bool
	}{
		{"4096", 4096, false},
		{"0", 0, false},
		{"512k", 512 * 1024, false},
		{"10MiB", 10 * 1024 * 1024, false},
		{"10mb", 10 * 1024 * 1024, false},
		{" 1g ", 1024 * 1024 * 1024, false},
		{"", 0, true},
		{"-1", 0, true},
		{"ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseByteSize(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidByteSize) {
					t.Fatalf("ParseByteSize(%q) error = %v, want ErrInvalidByteSize", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseByteSize(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseByteSize(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestByteSize_Exceeded(t *testing.T) {
	t.Parallel()

	if ByteSize(0).Exceeded(1 << 40) {
		t.Error("unlimited size should never be exceeded")
	}
	if !ByteSize(4).Exceeded(5) {
		t.Error("ByteSize(4).Exceeded(5) = false, want true")
	}
	if ByteSize(4).Exceeded(4) {
		t.Error("ByteSize(4).Exceeded(4) = true, want false")
	}
}

func TestByteSize_String(t *testing.T) {
	t.Parallel()

	if got := DefaultMaxFileSize.String(); got != "10MiB" {
		t.Errorf("DefaultMaxFileSize.String() = %q, want %q", got, "10MiB")
	}
}
