// SPDX-License-Identifier: MPL-2.0

// Package types holds small validated value types shared by the CLI and the
// matching core: exit codes, filesystem paths and byte sizes.
package types
