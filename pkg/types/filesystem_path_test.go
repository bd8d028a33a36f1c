// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestFilesystemPath_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    FilesystemPath
		wantErr bool
	}{
		{"absolute path", FilesystemPath("/tmp/set.txt"), false},
		{"relative path", FilesystemPath("set.txt"), false},
		{"path with spaces", FilesystemPath("/path/to/my file.txt"), false},
		{"dot path", FilesystemPath("."), false},
		{"empty is invalid", FilesystemPath(""), true},
		{"whitespace only is invalid", FilesystemPath("   "), true},
		{"tab only is invalid", FilesystemPath("\t"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.path.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("FilesystemPath(%q).Validate() returned unexpected error: %v", tt.path, err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidFilesystemPath) {
				t.Errorf("error should wrap ErrInvalidFilesystemPath, got: %v", err)
			}
			var fpErr *InvalidFilesystemPathError
			if !errors.As(err, &fpErr) {
				t.Errorf("error should be *InvalidFilesystemPathError, got: %T", err)
			}
		})
	}
}

func TestFilesystemPath_Stem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path FilesystemPath
		want string
	}{
		{"test/data/ascii-set1.txt", "ascii-set1"},
		{"utf16-set2.txt", "utf16-set2"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
		{".hidden", ".hidden"},
		{"/abs/dir/words.list", "words"},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			t.Parallel()
			if got := tt.path.Stem(); got != tt.want {
				t.Errorf("FilesystemPath(%q).Stem() = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestFilesystemPath_Ext(t *testing.T) {
	t.Parallel()

	if got := FilesystemPath("out/Report.XLSX").Ext(); got != ".xlsx" {
		t.Errorf("Ext() = %q, want %q", got, ".xlsx")
	}
	if got := FilesystemPath("out/report").Ext(); got != "" {
		t.Errorf("Ext() = %q, want empty", got)
	}
}
