// SPDX-License-Identifier: MPL-2.0

// Package render turns a membership matrix into presentation artifacts.
//
// Every renderer consumes the same data contract: the matrix header followed
// by one cell sequence per row. Membership flags are shown as Marker when set
// and as an empty cell otherwise. Index augmentation happens once, in Render,
// before the selected renderer sees the matrix.
package render
