// SPDX-License-Identifier: MPL-2.0

package validator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/avrovalidate/avrovalidate/internal/issue"
	"github.com/avrovalidate/avrovalidate/internal/ocf"
	"github.com/avrovalidate/avrovalidate/internal/scan"
	"github.com/avrovalidate/avrovalidate/pkg/types"

	"github.com/charmbracelet/log"
)

// RawMessageVerbosity is the verbosity at which the decoder's own message is
// printed ahead of an INVALID line.
const RawMessageVerbosity = 3

// Validator validates object container files named on the command line.
type Validator struct {
	// Stdout receives result lines.
	Stdout io.Writer
	// Stdin is read when an argument is "-".
	Stdin io.Reader
	// Logger receives diagnostics. A nil Logger discards them.
	Logger *log.Logger
	// Verbosity controls how much detail accompanies result lines.
	Verbosity int
}

// Run validates every argument in order. An empty args validates stdin.
// It returns nil when every file was processed, whatever their verdicts, and
// a *FatalError when the run had to stop.
func (v *Validator) Run(ctx context.Context, args []string) error {
	logger := v.logger()
	paths := scan.NormalizeArgs(args)

	// Every path must exist before any content is read.
	for _, p := range paths {
		if p.IsStdin() {
			continue
		}
		kind, err := scan.Inspect(p)
		if err != nil {
			return v.fail(inspectFailure(p, err))
		}
		logger.Infof("%s: %s", kind, p)
	}

	for _, p := range paths {
		for cand, err := range scan.Candidates(p) {
			if err != nil {
				return v.fail(inspectFailure(p, err))
			}
			if err := ctx.Err(); err != nil {
				return interrupted(err)
			}
			logger.Debug("validating", "path", cand.DisplayName())

			if ferr := v.validate(cand, logger); ferr != nil {
				return ferr
			}
		}
	}

	return nil
}

// validate checks one candidate and prints its result line.
func (v *Validator) validate(cand scan.Candidate, logger *log.Logger) *FatalError {
	var verdict ocf.Verdict
	if cand.IsStdin() {
		verdict = ocf.Check(v.Stdin)
	} else {
		verdict = ocf.CheckFile(cand.Path.String())
	}

	name := cand.DisplayName()
	switch verdict.Outcome {
	case ocf.OutcomeOK:
		logger.Debug("container header decoded", "path", name, "codec", verdict.Codec)
		fmt.Fprintf(v.Stdout, "%s => %s OK\n", name, ocf.FormatName)
		return nil
	case ocf.OutcomeInvalid:
		if v.Verbosity >= RawMessageVerbosity {
			fmt.Fprintln(v.Stdout, verdict.Err)
		}
		fmt.Fprintf(v.Stdout, "%s => %s INVALID\n", name, ocf.FormatName)
		return nil
	default:
		return decodeFailure(name, verdict)
	}
}

// fail writes warning messages to stdout next to the result lines, where
// scripts read them, and marks them as reported.
func (v *Validator) fail(fe *FatalError) *FatalError {
	if fe.IsWarning() {
		fmt.Fprintln(v.Stdout, fe.Message)
		fe.Reported = true
	}
	return fe
}

func (v *Validator) logger() *log.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return log.New(io.Discard)
}

func inspectFailure(p types.FilesystemPath, err error) *FatalError {
	var (
		notFound *scan.NotFoundError
		special  *scan.UnclassifiablePathError
		listErr  *scan.ListDirError
	)

	switch {
	case errors.As(err, &notFound):
		return &FatalError{
			Code:    types.ExitWarning,
			Message: notFound.Error(),
			Err: issue.NewErrorContext().
				WithOperation("locate path").
				WithResource(p.String()).
				WithIssue(issue.PathNotFoundId).
				WithSuggestion("Check the path for typos").
				Wrap(err).
				Build(),
		}
	case errors.As(err, &special):
		return &FatalError{
			Code:    types.ExitCritical,
			Message: special.Error(),
			Err: issue.NewErrorContext().
				WithOperation("classify path").
				WithResource(p.String()).
				WithIssue(issue.PathUnclassifiableId).
				WithSuggestion("Pass special files through standard input with '-'").
				Wrap(err).
				Build(),
		}
	case errors.As(err, &listErr):
		return &FatalError{
			Code:    types.ExitCritical,
			Message: "ERROR: " + listErr.Error(),
			Err: issue.NewErrorContext().
				WithOperation("list directory").
				WithResource(listErr.Path.String()).
				WithIssue(issue.DirectoryListFailedId).
				WithSuggestion("Check the directory permissions").
				Wrap(err).
				Build(),
		}
	default:
		return &FatalError{
			Code:    types.ExitCritical,
			Message: "ERROR: " + err.Error(),
			Err:     issue.WrapWithContext(err, "inspect path", p.String()),
		}
	}
}

func decodeFailure(name string, verdict ocf.Verdict) *FatalError {
	switch verdict.Kind {
	case ocf.KindMissingCodec:
		return &FatalError{
			Code:    types.ExitCritical,
			Message: fmt.Sprintf("%s => ERROR: %v - %s", name, verdict.Err, codecRemedy(verdict.Codec)),
			Err: issue.NewErrorContext().
				WithOperation("decode container").
				WithResource(name).
				WithIssue(issue.CodecMissingId).
				WithSuggestion("Rewrite the file with the " + SupportedCodecs + " codec").
				Wrap(verdict.Err).
				Build(),
		}
	case ocf.KindIO:
		return &FatalError{
			Code:    types.ExitCritical,
			Message: fmt.Sprintf("ERROR: %v", verdict.Err),
			Err: issue.NewErrorContext().
				WithOperation("open file").
				WithResource(name).
				WithIssue(issue.FileOpenFailedId).
				WithSuggestion("Check the file permissions").
				Wrap(verdict.Err).
				Build(),
		}
	default:
		return &FatalError{
			Code:    types.ExitCritical,
			Message: fmt.Sprintf("%s => ERROR: %v", name, verdict.Err),
			Err: issue.NewErrorContext().
				WithOperation("decode container").
				WithResource(name).
				WithIssue(issue.ContainerFormatId).
				WithSuggestion("Inspect the header metadata, e.g. with 'avro-tools getmeta'").
				Wrap(verdict.Err).
				Build(),
		}
	}
}

// SupportedCodecs lists the compression codecs this build decodes.
const SupportedCodecs = "null, deflate or snappy"

// codecRemedy is the hint appended to a missing-codec error.
func codecRemedy(codec string) string {
	if codec == "" {
		return "the avro.codec header entry is empty; rewrite the file with the " + SupportedCodecs + " codec"
	}
	return fmt.Sprintf("is support for the %q codec available in this build? "+
		"Install or build a decoder that supports %q, or rewrite the file with the %s codec",
		codec, codec, SupportedCodecs)
}

func interrupted(err error) *FatalError {
	return &FatalError{
		Code:    types.ExitCritical,
		Message: "ERROR: validation interrupted: " + err.Error(),
		Err:     issue.WrapWithContext(err, "validate files", ""),
	}
}
