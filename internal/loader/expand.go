// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// globMeta holds the characters that make a pattern a glob rather than a path.
const globMeta = "*?[{"

// Expand resolves patterns into file paths, dropping duplicates while keeping
// the first-seen order.
//
// Plain paths are kept as given even when the file does not exist, so that
// Load reports them. Glob patterns support ** and only match regular files; a
// malformed pattern is logged as an error and one matching nothing as a warning.
func (l *Loader) Expand(patterns []string) []string {
	seen := make(map[string]struct{})
	var paths []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, pattern := range patterns {
		full := l.resolve(pattern)
		if !IsGlob(pattern) {
			add(full)
			continue
		}

		matches, err := doublestar.FilepathGlob(full, doublestar.WithFilesOnly())
		if err != nil {
			l.logger.Error("invalid pattern", "pattern", pattern, "err", err)
			continue
		}
		if len(matches) == 0 {
			l.logger.Warn("pattern matched no files", "pattern", pattern)
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}

	return paths
}

// IsGlob reports whether pattern contains glob metacharacters.
func IsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, globMeta)
}

func (l *Loader) resolve(pattern string) string {
	if l.dir == "" || filepath.IsAbs(pattern) {
		return pattern
	}
	return filepath.Join(l.dir, pattern)
}
