// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avrovalidate/avrovalidate/internal/config"
	"github.com/avrovalidate/avrovalidate/internal/testutil"
	"github.com/avrovalidate/avrovalidate/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
)

type cliResult struct {
	stdout string
	stderr string
	code   types.ExitCode
}

// runCLI runs the command line with an isolated config directory.
func runCLI(t *testing.T, stdin io.Reader, args ...string) cliResult {
	t.Helper()

	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	if stdin == nil {
		stdin = bytes.NewReader(nil)
	}
	var stdout, stderr bytes.Buffer
	code := Run(t.Context(), args, stdin, &stdout, &stderr)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func TestRun_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.avro")
	testutil.MustWriteOCF(t, path, "deflate", 3)

	res := runCLI(t, nil, path)
	if res.code != types.ExitOK {
		t.Fatalf("exit code = %v, stderr:\n%s", res.code, res.stderr)
	}
	if res.stdout != path+" => Avro OK\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
	if res.stderr != "" {
		t.Errorf("stderr should be empty at verbosity 0, got %q", res.stderr)
	}
}

func TestRun_StdinByDefault(t *testing.T) {
	res := runCLI(t, bytes.NewReader(testutil.MustOCF(t, "snappy", 1)))
	if res.code != types.ExitOK {
		t.Fatalf("exit code = %v, stderr:\n%s", res.code, res.stderr)
	}
	if res.stdout != "<STDIN> => Avro OK\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestRun_MissingPath(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.avro")
	testutil.MustWriteOCF(t, good, "null", 1)
	missing := filepath.Join(dir, "nope")

	res := runCLI(t, nil, good, missing)
	if res.code != types.ExitWarning {
		t.Errorf("exit code = %v, want %v", res.code, types.ExitWarning)
	}
	if want := "'" + missing + "' not found\n"; res.stdout != want {
		t.Errorf("stdout = %q, want only %q", res.stdout, want)
	}
	if strings.Contains(res.stderr, "not found") {
		t.Errorf("the warning belongs on stdout, stderr = %q", res.stderr)
	}
}

func TestRun_MissingCodec(t *testing.T) {
	dir := t.TempDir()
	bz := filepath.Join(dir, "bz.avro")
	testutil.MustWriteFile(t, bz, testutil.MustCodecHeader(t, "bzip2"))

	res := runCLI(t, nil, bz)
	if res.code != types.ExitCritical {
		t.Errorf("exit code = %v, want %v", res.code, types.ExitCritical)
	}
	if !strings.Contains(res.stderr, `is support for the "bzip2" codec available in this build?`) {
		t.Errorf("stderr = %q, want codec hint", res.stderr)
	}
	if strings.Contains(res.stderr, "recodec") {
		t.Error("guidance should only be rendered with --explain")
	}
}

func TestRun_ExplainRendersGuidance(t *testing.T) {
	bz := filepath.Join(t.TempDir(), "bz.avro")
	testutil.MustWriteFile(t, bz, testutil.MustCodecHeader(t, "bzip2"))

	res := runCLI(t, nil, "--explain", bz)
	if res.code != types.ExitCritical {
		t.Errorf("exit code = %v, want %v", res.code, types.ExitCritical)
	}
	// Styled output may split the heading, so look for single words.
	for _, word := range []string{"Compression", "recodec"} {
		if !strings.Contains(res.stderr, word) {
			t.Errorf("stderr should contain rendered guidance (%q), got:\n%s", word, res.stderr)
		}
	}
}

func TestRun_VerboseLogging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.avro")
	testutil.MustWriteOCF(t, path, "snappy", 1)

	res := runCLI(t, nil, "-v", dir)
	if !strings.Contains(res.stderr, "directory: "+dir) {
		t.Errorf("-v should log the directory, stderr = %q", res.stderr)
	}
	if strings.Contains(res.stderr, "codec=") {
		t.Errorf("-v should not log debug detail, stderr = %q", res.stderr)
	}

	res = runCLI(t, nil, "-vv", dir)
	if !strings.Contains(res.stderr, "codec=snappy") {
		t.Errorf("-vv should log codecs, stderr = %q", res.stderr)
	}
	if !strings.Contains(res.stderr, logPrefix) {
		t.Errorf("log lines should carry the %q prefix, stderr = %q", logPrefix, res.stderr)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.avro")
	testutil.MustWriteFile(t, bad, []byte("nope"))
	cfg := filepath.Join(dir, "custom.cue")
	testutil.MustWriteFile(t, cfg, []byte("verbosity: 3\n"))

	res := runCLI(t, nil, "--config", cfg, bad)
	if res.code != types.ExitOK {
		t.Fatalf("exit code = %v, stderr:\n%s", res.code, res.stderr)
	}
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	if len(lines) != 2 || lines[1] != bad+" => Avro INVALID" {
		t.Errorf("verbosity 3 from config should print the raw message first, stdout = %q", res.stdout)
	}
}

func TestRun_BrokenConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.avro")
	testutil.MustWriteOCF(t, good, "null", 1)

	res := runCLI(t, nil, "--config", filepath.Join(dir, "missing.cue"), good)
	if res.code != types.ExitOK {
		t.Fatalf("exit code = %v, stderr:\n%s", res.code, res.stderr)
	}
	if !strings.Contains(res.stderr, "Warning:") || !strings.Contains(res.stderr, "config file not found") {
		t.Errorf("stderr = %q, want config warning", res.stderr)
	}
	if res.stdout != good+" => Avro OK\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestRun_UsageError(t *testing.T) {
	res := runCLI(t, nil, "--no-such-flag")
	if res.code != types.ExitUnknown {
		t.Errorf("exit code = %v, want %v", res.code, types.ExitUnknown)
	}
	if !strings.Contains(res.stderr, "no-such-flag") {
		t.Errorf("stderr = %q, want the flag named", res.stderr)
	}
}

func TestRun_Version(t *testing.T) {
	res := runCLI(t, nil, "--version")
	if res.code != types.ExitOK {
		t.Fatalf("exit code = %v", res.code)
	}
	if !strings.Contains(res.stdout, "dev") {
		t.Errorf("stdout = %q, want version", res.stdout)
	}
}

func TestHandleError_SkipsReportedErrors(t *testing.T) {
	var buf bytes.Buffer
	handleError(&buf, fang.Styles{}, &ExitError{Code: types.ExitCritical})
	if buf.Len() != 0 {
		t.Errorf("ExitError must not be printed twice, got %q", buf.String())
	}
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbosity config.Verbosity
		want      log.Level
	}{
		{0, log.WarnLevel},
		{1, log.InfoLevel},
		{2, log.DebugLevel},
		{3, log.DebugLevel},
	}
	for _, tt := range tests {
		if got := logLevel(tt.verbosity); got != tt.want {
			t.Errorf("logLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	if got := (&ExitError{Code: 2}).Error(); got != "exit status 2" {
		t.Errorf("Error() = %q", got)
	}
	if (&ExitError{Code: 2}).Unwrap() != nil {
		t.Error("Unwrap() should be nil without a cause")
	}
}

func TestGetVersionString(t *testing.T) {
	t.Parallel()

	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}
}
