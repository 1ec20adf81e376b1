// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/avrovalidate/config.cue (or the XDG equivalent on
// Linux, ~/Library/Application Support/avrovalidate/config.cue on macOS,
// %APPDATA%\avrovalidate\config.cue on Windows), falling back to ./avrovalidate.cue.
// Every setting can also be overridden through AVROVALIDATE_* environment variables.
//
// Files are validated against an embedded CUE schema (config_schema.cue) before they
// are merged over the defaults.
package config
