// SPDX-License-Identifier: MPL-2.0

package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

const (
	// MinConfidence is the lowest statistical confidence (0-100) accepted.
	MinConfidence = 10

	// maxControlRatio is the share of non-whitespace control bytes above which
	// content is treated as binary.
	maxControlRatio = 0.10

	// utf16ZeroRatio is the minimum share of NUL bytes on one parity for the
	// BOM-less UTF-16 heuristic; the other parity must stay below utf16NoiseRatio.
	utf16ZeroRatio  = 0.30
	utf16NoiseRatio = 0.05
)

var (
	// ErrUndetectable is the sentinel error wrapped by UndetectableError.
	ErrUndetectable = errors.New("failed to detect encoding")

	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}

	// Unicode labels that the WHATWG index does not resolve the way we want.
	unicodeEncodings = map[string]encoding.Encoding{
		"utf-8":    unicode.UTF8,
		"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
		"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
		"utf-32le": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
		"utf-32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	}

	// chardet spells a few charsets differently from the registries.
	labelAliases = map[string]string{
		"gb-18030": "gb18030",
	}
)

type (
	// Detection describes the encoding chosen for a byte sequence.
	Detection struct {
		// Name is the canonical lower-case charset name, e.g. "utf-16le".
		Name string
		// Encoding decodes the content into UTF-8.
		Encoding encoding.Encoding
		// Confidence is 100 for structural matches (BOM, valid UTF-8) and the
		// detector score otherwise.
		Confidence int
		// BOM reports whether the content starts with a byte-order mark.
		BOM bool
	}

	// UndetectableError is returned when no confident encoding exists for the content.
	UndetectableError struct {
		Reason string
	}
)

// Detect chooses an encoding for content.
func Detect(content []byte) (Detection, error) {
	if d, ok := detectBOM(content); ok {
		return d, nil
	}

	hasNUL := bytes.IndexByte(content, 0) >= 0
	if !hasNUL && utf8.Valid(content) {
		return Detection{Name: "utf-8", Encoding: unicode.UTF8, Confidence: 100}, nil
	}

	if d, ok := detectUTF16Parity(content); ok {
		return d, nil
	}

	if hasNUL || controlRatio(content) > maxControlRatio {
		return Detection{}, &UndetectableError{Reason: "content looks binary"}
	}

	return detectStatistical(content)
}

func detectBOM(content []byte) (Detection, bool) {
	switch {
	case bytes.HasPrefix(content, bomUTF32LE):
		return Detection{Name: "utf-32le", Encoding: utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM), Confidence: 100, BOM: true}, true
	case bytes.HasPrefix(content, bomUTF32BE):
		return Detection{Name: "utf-32be", Encoding: utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM), Confidence: 100, BOM: true}, true
	case bytes.HasPrefix(content, bomUTF8):
		return Detection{Name: "utf-8", Encoding: unicode.UTF8BOM, Confidence: 100, BOM: true}, true
	case bytes.HasPrefix(content, bomUTF16LE):
		return Detection{Name: "utf-16le", Encoding: unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), Confidence: 100, BOM: true}, true
	case bytes.HasPrefix(content, bomUTF16BE):
		return Detection{Name: "utf-16be", Encoding: unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), Confidence: 100, BOM: true}, true
	}
	return Detection{}, false
}

// detectUTF16Parity recognizes BOM-less UTF-16 of mostly Latin text, where
// every other byte is NUL.
func detectUTF16Parity(content []byte) (Detection, bool) {
	if len(content) < 2 || len(content)%2 != 0 {
		return Detection{}, false
	}

	var even, odd int
	for i, b := range content {
		if b != 0 {
			continue
		}
		if i%2 == 0 {
			even++
		} else {
			odd++
		}
	}

	units := float64(len(content) / 2)
	evenRatio, oddRatio := float64(even)/units, float64(odd)/units
	switch {
	case oddRatio >= utf16ZeroRatio && evenRatio < utf16NoiseRatio:
		return Detection{Name: "utf-16le", Encoding: unicodeEncodings["utf-16le"], Confidence: int(oddRatio * 100)}, true
	case evenRatio >= utf16ZeroRatio && oddRatio < utf16NoiseRatio:
		return Detection{Name: "utf-16be", Encoding: unicodeEncodings["utf-16be"], Confidence: int(evenRatio * 100)}, true
	}
	return Detection{}, false
}

func detectStatistical(content []byte) (Detection, error) {
	result, err := chardet.NewTextDetector().DetectBest(content)
	if err != nil {
		return Detection{}, &UndetectableError{Reason: err.Error()}
	}
	if result.Confidence < MinConfidence {
		return Detection{}, &UndetectableError{
			Reason: fmt.Sprintf("best guess %s has confidence %d (minimum %d)", result.Charset, result.Confidence, MinConfidence),
		}
	}

	enc, name := Lookup(result.Charset)
	if enc == nil {
		return Detection{}, &UndetectableError{Reason: fmt.Sprintf("no decoder for charset %q", result.Charset)}
	}
	return Detection{Name: name, Encoding: enc, Confidence: result.Confidence}, nil
}

// Lookup resolves a charset label to a decoder and its canonical name.
// It consults the WHATWG label index first and the IANA registry second.
// A nil encoding means the label is unknown or has no decoder.
func Lookup(label string) (encoding.Encoding, string) {
	label = strings.ToLower(strings.TrimSpace(label))
	if alias, ok := labelAliases[label]; ok {
		label = alias
	}
	if enc, ok := unicodeEncodings[label]; ok {
		return enc, label
	}
	if enc, name := charset.Lookup(label); enc != nil {
		return enc, name
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, ""
	}
	name, err := ianaindex.IANA.Name(enc)
	if err != nil {
		name = label
	}
	return enc, strings.ToLower(name)
}

// controlRatio returns the share of control bytes that never occur in text.
func controlRatio(content []byte) float64 {
	if len(content) == 0 {
		return 0
	}
	var n int
	for _, b := range content {
		if b < 0x20 && !isTextControl(b) || b == 0x7F {
			n++
		}
	}
	return float64(n) / float64(len(content))
}

func isTextControl(b byte) bool {
	switch b {
	case '\t', '\n', '\v', '\f', '\r', 0x1C, 0x1D, 0x1E, 0x1B:
		return true
	}
	return false
}

// Error implements the error interface for UndetectableError.
func (e *UndetectableError) Error() string {
	return fmt.Sprintf("failed to detect encoding: %s", e.Reason)
}

// Unwrap returns ErrUndetectable for errors.Is() compatibility.
func (e *UndetectableError) Unwrap() error { return ErrUndetectable }
