// SPDX-License-Identifier: MPL-2.0

package ocf

import (
	"errors"
	"fmt"
)

// FormatName labels result lines.
const FormatName = "Avro"

const (
	// OutcomeOK means the header parsed and the codec is usable.
	OutcomeOK Outcome = iota
	// OutcomeInvalid means the header bytes do not decode; the run continues.
	OutcomeInvalid
	// OutcomeError means the run must stop.
	OutcomeError
)

const (
	// KindNone accompanies OutcomeOK.
	KindNone Kind = iota
	// KindStructural is a low-level decode mismatch (truncated or garbage header).
	KindStructural
	// KindMissingCodec is a container compressed with a codec this build cannot decode.
	KindMissingCodec
	// KindFormat is any other container-level rejection (missing or broken schema, ...).
	KindFormat
	// KindIO is a failure to open the file.
	KindIO
)

var (
	// ErrStructural is the sentinel error for KindStructural decode errors.
	ErrStructural = errors.New("container header does not decode")
	// ErrMissingCodec is the sentinel error for KindMissingCodec decode errors.
	ErrMissingCodec = errors.New("compression codec not available")
	// ErrFormat is the sentinel error for KindFormat decode errors.
	ErrFormat = errors.New("malformed object container")
	// ErrOpen is the sentinel error wrapped by OpenError.
	ErrOpen = errors.New("cannot open file")
)

type (
	// Outcome is the result class of a single check.
	Outcome int

	// Kind refines an Invalid or Error outcome.
	Kind int

	// Verdict is the result of checking one stream.
	Verdict struct {
		Outcome Outcome
		Kind    Kind
		// Codec is the compression name of a readable container, or the
		// unsupported name for KindMissingCodec. Empty otherwise.
		Codec string
		// Err describes why the stream is not OK; nil for OutcomeOK.
		Err error
	}

	// DecodeError carries the decoder's message and its classification.
	DecodeError struct {
		Kind  Kind
		Codec string
		Msg   string
	}

	// OpenError is returned when a candidate file cannot be opened.
	OpenError struct {
		Path string
		Err  error
	}
)

// Fatal reports whether the verdict must stop the run.
func (v Verdict) Fatal() bool { return v.Outcome == OutcomeError }

// String returns the status word printed after the format name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeInvalid:
		return "INVALID"
	case OutcomeError:
		return "ERROR"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// String returns a short label for logs.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindStructural:
		return "structural"
	case KindMissingCodec:
		return "missing-codec"
	case KindFormat:
		return "format"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error returns the decoder's message unchanged.
func (e *DecodeError) Error() string { return e.Msg }

// Unwrap returns the sentinel error matching the classification.
func (e *DecodeError) Unwrap() error {
	switch e.Kind {
	case KindStructural:
		return ErrStructural
	case KindMissingCodec:
		return ErrMissingCodec
	default:
		return ErrFormat
	}
}

// Error implements the error interface for OpenError.
func (e *OpenError) Error() string { return e.Err.Error() }

// Unwrap returns ErrOpen and the underlying OS error.
func (e *OpenError) Unwrap() []error { return []error{ErrOpen, e.Err} }
