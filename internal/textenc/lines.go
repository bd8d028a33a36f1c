// SPDX-License-Identifier: MPL-2.0

package textenc

import (
	"strings"
	"unicode/utf8"
)

// SplitLines splits text at every line boundary: \n, \r\n, \r, \v, \f,
// \x1c, \x1d, \x1e, U+0085, U+2028 and U+2029. Terminators are dropped and a
// final terminator does not yield a trailing empty line.
func SplitLines(text string) []string {
	var lines []string
	for text != "" {
		i := strings.IndexFunc(text, isLineBreak)
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i])

		_, width := utf8.DecodeRuneInString(text[i:])
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			width = 2
		}
		text = text[i+width:]
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1C, 0x1D, 0x1E, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
