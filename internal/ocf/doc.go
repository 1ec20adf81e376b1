// SPDX-License-Identifier: MPL-2.0

// Package ocf decides whether a byte stream is a readable Avro object
// container file.
//
// Check opens a goavro OCF reader over the stream, which parses the header
// (magic bytes, metadata map, codec, schema and sync marker), and turns the
// outcome into a Verdict instead of an error: OK, Invalid (the header bytes
// do not decode) or Error (the container is recognised but cannot be used,
// or the file cannot be opened). Only Error verdicts are fatal to a run.
package ocf
