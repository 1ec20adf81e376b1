// SPDX-License-Identifier: MPL-2.0

// Package validator drives a validation run: it normalizes the arguments,
// checks every path up front, then validates each candidate file as
// traversal discovers it, printing one result line per file.
//
// Runs stop at the first fatal condition. A missing path ends the run with
// ExitWarning before any file is read; classification, I/O and decoder
// failures end it with ExitCritical. Files reported INVALID never stop a run.
package validator
