// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/avrovalidate/avrovalidate/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCommand builds the root command around app.
func newRootCommand(app *App) *cobra.Command {
	var (
		verbose int
		cfgFile string
		explain bool
	)

	rootCmd := &cobra.Command{
		Use:   "avrovalidate [path|-]...",
		Short: "Validate Avro object container files",
		Long: TitleStyle.Render("avrovalidate") + SubtitleStyle.Render(" - Validate Avro object container files") + `

Each argument is a file, a directory or '-' for standard input (the default
when no argument is given). Directories are searched recursively for files
ending in .avro (any case). Every file gets one result line on stdout:

  <path> => Avro OK
  <path> => Avro INVALID

` + SubtitleStyle.Render("Exit status:") + `
  0  every file was processed (INVALID results included)
  1  a path does not exist; nothing was validated
  2  a fatal error stopped the run (unsupported codec, malformed
     container, unreadable file or directory, special file)
  3  usage error

` + SubtitleStyle.Render("Examples:") + `
  avrovalidate events.avro             Validate one file
  avrovalidate -v ./exports            Validate a tree, logging each path
  cat events.avro | avrovalidate       Validate standard input`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Validate(cmd.Context(), ValidateRequest{
				Paths:      args,
				Verbose:    verbose,
				ConfigPath: types.FilesystemPath(cfgFile),
				Explain:    explain,
			})
		},
	}

	rootCmd.Flags().CountVarP(&verbose, "verbose", "v", "increase diagnostic detail (repeatable)")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file, CUE or TOML (default is $XDG_CONFIG_HOME/avrovalidate/config.cue)")
	rootCmd.Flags().BoolVar(&explain, "explain", false, "render remediation guidance for fatal errors")

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Run executes the command line with explicit streams and returns the exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) types.ExitCode {
	app := NewApp(Dependencies{Stdin: stdin, Stdout: stdout, Stderr: stderr})

	rootCmd := newRootCommand(app)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Arguments are paths, so a file named "man" or "completion" must not
	// resolve to a subcommand.
	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
		fang.WithErrorHandler(handleError),
	)
	if err == nil {
		return types.ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitUnknown
}

// handleError leaves ExitError alone (the App already reported it) and lets
// fang style everything else, which is usage errors from cobra.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// Execute runs the command line against the process streams and exits.
// This is called by main.main().
func Execute() {
	os.Exit(int(Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)))
}
