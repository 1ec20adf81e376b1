// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Process exit statuses. The values follow the monitoring-plugin convention
// so the tool can be dropped into check scripts unchanged.
const (
	// ExitOK means every input was processed (INVALID results included).
	ExitOK ExitCode = 0
	// ExitWarning means an input path does not exist.
	ExitWarning ExitCode = 1
	// ExitCritical means a fatal validation or I/O failure stopped the run.
	ExitCritical ExitCode = 2
	// ExitUnknown means the run could not start (usage or setup errors).
	ExitUnknown ExitCode = 3
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates a completed run.
func (c ExitCode) IsSuccess() bool { return c == ExitOK }

// Label returns the status name for the well-known codes ("OK", "WARNING",
// "CRITICAL", "UNKNOWN") and the decimal value otherwise.
func (c ExitCode) Label() string {
	switch c {
	case ExitOK:
		return "OK"
	case ExitWarning:
		return "WARNING"
	case ExitCritical:
		return "CRITICAL"
	case ExitUnknown:
		return "UNKNOWN"
	default:
		return c.String()
	}
}

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
