// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.csv", "nested/d.txt", "nested/deeper/e.txt"} {
		writeFile(t, dir, name, []byte("x\n"))
	}
	join := func(names ...string) []string {
		out := make([]string, len(names))
		for i, n := range names {
			out[i] = filepath.Join(dir, filepath.FromSlash(n))
		}
		return out
	}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{"literal paths keep order", []string{"b.txt", "a.txt"}, join("b.txt", "a.txt")},
		{"glob", []string{"*.txt"}, join("a.txt", "b.txt")},
		{"duplicates dropped", []string{"b.txt", "*.txt", "./a.txt"}, join("b.txt", "a.txt")},
		{"double star", []string{"**/*.txt"}, join("a.txt", "b.txt", "nested/d.txt", "nested/deeper/e.txt")},
		{"alternatives", []string{"{c.csv,a.txt}"}, join("c.csv", "a.txt")},
		{"missing literal kept", []string{"ghost.txt"}, join("ghost.txt")},
		{"glob without match dropped", []string{"*.none"}, nil},
		{"directories not globbed", []string{"nest*"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, _ := newTestLoader(dir, 0)
			got := l.Expand(tt.patterns)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Expand(%q) mismatch (-want +got):\n%s", tt.patterns, diff)
			}
		})
	}
}

func TestExpand_Diagnostics(t *testing.T) {
	t.Parallel()

	l, buf := newTestLoader(t.TempDir(), 0)
	l.Expand([]string{"*.none", "[bad"})

	out := buf.String()
	if !strings.Contains(out, "level=warn") || !strings.Contains(out, "pattern matched no files") {
		t.Errorf("missing no-match warning:\n%s", out)
	}
	if !strings.Contains(out, "level=error") || !strings.Contains(out, "invalid pattern") {
		t.Errorf("missing invalid pattern error:\n%s", out)
	}
}

func TestExpand_AbsolutePattern(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "abs.txt", []byte("x\n"))

	l, _ := newTestLoader(os.TempDir(), 0)
	got := l.Expand([]string{filepath.Join(dir, "*.txt")})
	if diff := cmp.Diff([]string{path}, got); diff != "" {
		t.Errorf("Expand(absolute) mismatch (-want +got):\n%s", diff)
	}
}

func TestIsGlob(t *testing.T) {
	t.Parallel()

	for pattern, want := range map[string]bool{
		"plain.txt":    false,
		"dir/file":     false,
		"*.txt":        true,
		"set?.txt":     true,
		"[ab].txt":     true,
		"{a,b}.txt":    true,
		"**/deep.list": true,
	} {
		if got := IsGlob(pattern); got != want {
			t.Errorf("IsGlob(%q) = %v, want %v", pattern, got, want)
		}
	}
}
