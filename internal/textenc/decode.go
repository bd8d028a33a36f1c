// SPDX-License-Identifier: MPL-2.0

package textenc

import (
	"fmt"
	"strings"
)

// Decode detects the encoding of content and returns it as a UTF-8 string,
// without byte-order mark.
func Decode(content []byte) (string, Detection, error) {
	d, err := Detect(content)
	if err != nil {
		return "", Detection{}, err
	}

	out, err := d.Encoding.NewDecoder().Bytes(content)
	if err != nil {
		return "", d, fmt.Errorf("decode %s: %w", d.Name, err)
	}
	return strings.TrimPrefix(string(out), "\uFEFF"), d, nil
}

// DecodeLines decodes content and splits it with SplitLines.
func DecodeLines(content []byte) ([]string, Detection, error) {
	text, d, err := Decode(content)
	if err != nil {
		return nil, d, err
	}
	return SplitLines(text), d, nil
}
