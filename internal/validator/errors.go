// SPDX-License-Identifier: MPL-2.0

package validator

import (
	"github.com/avrovalidate/avrovalidate/internal/issue"
	"github.com/avrovalidate/avrovalidate/pkg/types"
)

// FatalError ends a run. Message is the line shown to the user; Err carries
// the context and guidance behind it. Reported is set when Message has
// already been written to the validator's Stdout.
type FatalError struct {
	Code     types.ExitCode
	Message  string
	Err      *issue.ActionableError
	Reported bool
}

// Error returns the user-facing message.
func (e *FatalError) Error() string { return e.Message }

// Unwrap returns the underlying ActionableError.
func (e *FatalError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// IsWarning reports whether the run ended on a missing path rather than a
// hard failure.
func (e *FatalError) IsWarning() bool { return e.Code == types.ExitWarning }
