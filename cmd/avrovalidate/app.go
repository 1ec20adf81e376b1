// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/avrovalidate/avrovalidate/internal/config"
	"github.com/avrovalidate/avrovalidate/internal/issue"
	"github.com/avrovalidate/avrovalidate/internal/validator"
	"github.com/avrovalidate/avrovalidate/pkg/types"

	"github.com/charmbracelet/log"
)

// logPrefix tags every diagnostic line.
const logPrefix = "avrovalidate"

type (
	// App wires CLI services and shared dependencies. The root command's
	// handler delegates to it.
	App struct {
		Config config.Provider
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// ValidateRequest captures the root command's inputs.
	ValidateRequest struct {
		// Paths are the positional arguments, unnormalized.
		Paths []string
		// Verbose is the number of -v flags.
		Verbose int
		// ConfigPath is the explicit --config flag value.
		ConfigPath types.FilesystemPath
		// Explain forces rendering of issue guidance after a fatal error.
		Explain bool
	}

	// session is the effective configuration for one run.
	session struct {
		verbosity  config.Verbosity
		explain    bool
		timestamps bool
		scheme     config.ColorScheme
		styles     stderrStyles
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// Validate runs one validation. Fatal conditions are reported on stderr and
// returned as *ExitError.
func (a *App) Validate(ctx context.Context, req ValidateRequest) error {
	s := a.newSession(ctx, req)

	logger := newLogger(a.stderr, s.verbosity, s.timestamps)
	v := &validator.Validator{
		Stdout:    a.stdout,
		Stdin:     a.stdin,
		Logger:    logger,
		Verbosity: int(s.verbosity),
	}

	err := v.Run(ctx, req.Paths)
	if err == nil {
		return nil
	}

	var fatal *validator.FatalError
	if !errors.As(err, &fatal) {
		fmt.Fprintln(a.stderr, s.styles.Error.Render("ERROR: "+err.Error()))
		return &ExitError{Code: types.ExitCritical, Err: err}
	}

	a.renderFatal(s, fatal)
	return &ExitError{Code: fatal.Code, Err: fatal}
}

// newSession loads configuration and merges it with the flags. A config that
// cannot be loaded is reported as a warning and defaults are used.
func (a *App) newSession(ctx context.Context, req ValidateRequest) session {
	cfg, _, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: req.ConfigPath})
	if err != nil {
		styles := newStderrStyles(a.stderr, config.ColorSchemeAuto)
		fmt.Fprintln(a.stderr, styles.Warning.Render("Warning: ")+formatErrorForDisplay(err, req.Verbose > 0))
		cfg = config.DefaultConfig()
	}

	return session{
		verbosity:  cfg.Verbosity.Add(req.Verbose),
		explain:    req.Explain || cfg.UI.Explain,
		timestamps: cfg.Log.Timestamps,
		scheme:     cfg.UI.ColorScheme,
		styles:     newStderrStyles(a.stderr, cfg.UI.ColorScheme),
	}
}

// renderFatal prints the fatal message unless the validator already wrote it
// to stdout, then suggestions and guidance as verbosity and --explain allow.
func (a *App) renderFatal(s session, fatal *validator.FatalError) {
	if !fatal.Reported {
		style := s.styles.Error
		if fatal.IsWarning() {
			style = s.styles.Warning
		}
		fmt.Fprintln(a.stderr, style.Render(fatal.Message))
	}

	if fatal.Err == nil {
		return
	}

	if s.verbosity >= 1 && fatal.Err.HasSuggestions() {
		for _, sug := range fatal.Err.Suggestions {
			fmt.Fprintln(a.stderr, s.styles.Verbose.Render("  • "+sug))
		}
	}
	if s.verbosity >= 2 {
		fmt.Fprintln(a.stderr, s.styles.Verbose.Render(fatal.Err.Format(true)))
	}

	if !s.explain {
		return
	}
	explanation := fatal.Err.Explanation()
	if explanation == nil {
		return
	}
	rendered, err := explanation.Render(s.scheme.String())
	if err != nil {
		fmt.Fprintln(a.stderr, s.styles.Warning.Render("Warning: cannot render guidance: "+err.Error()))
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// newLogger builds the diagnostic logger on stderr. Verbosity 0 shows
// warnings only, 1 adds per-path info and 2 and above add debug detail.
func newLogger(w io.Writer, verbosity config.Verbosity, timestamps bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          logPrefix,
		Level:           logLevel(verbosity),
		ReportTimestamp: timestamps,
		TimeFormat:      time.TimeOnly,
	})
}

func logLevel(verbosity config.Verbosity) log.Level {
	switch {
	case verbosity >= 2:
		return log.DebugLevel
	case verbosity == 1:
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
