// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the avrovalidate command line.
//
// The root command validates every path it is given (or standard input) and
// exits with a Nagios-style status: 0 when every file was processed, 1 when a
// path does not exist, 2 when a fatal validation or I/O failure stopped the
// run and 3 on usage errors.
package cmd
