// SPDX-License-Identifier: MPL-2.0

// Package textenc detects the character encoding of a text file's bytes and
// decodes them into lines.
//
// Detection tries, in order: byte-order marks, strict UTF-8, a byte-parity
// heuristic for BOM-less UTF-16, and finally statistical detection
// (github.com/saintfish/chardet). Content that looks binary, or whose detected
// charset has no decoder, is reported as undetectable.
package textenc
