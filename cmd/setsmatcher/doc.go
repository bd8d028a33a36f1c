// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the setsmatcher command line interface.
//
// The root command loads the input files, matches them into a membership
// matrix and renders it to the terminal or to an output file. The config
// subcommands inspect and create the configuration file. Core packages never
// exit the process; this package maps their errors to exit codes and help
// pages from the issue catalog.
package cmd
