// SPDX-License-Identifier: MPL-2.0

// Package matrix defines the membership matrix produced by the matcher and
// consumed by every renderer.
//
// A Matrix has one row per key of the key universe, in sorted order, and one
// boolean column per input set, in input order. The header is "key" followed
// by the set names. Augmentation with a leading "Index" column lives here and
// nowhere else: renderers receive an already shaped Matrix through Shape.
//
// Matrices are immutable once built. WithIndex and Shape return new values.
package matrix
