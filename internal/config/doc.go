// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/setsmatcher/config.cue (or
// ~/Library/Application Support/setsmatcher/config.cue on macOS,
// %APPDATA%\setsmatcher\config.cue on Windows), falling back to ./config.cue.
// Values can be overridden with SETSMATCHER_<KEY> environment variables, and
// command-line flags take precedence over both.
//
// Files are validated against the embedded CUE schema (config_schema.cue) so
// mistakes are reported with the offending field.
package config
