// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"iter"
	"os"

	"github.com/avrovalidate/avrovalidate/pkg/fspath"
	"github.com/avrovalidate/avrovalidate/pkg/types"
)

const (
	// Suffix selects files during directory traversal (compared case-insensitively).
	Suffix = ".avro"

	// StdinName is the display name used for standard input.
	StdinName = "<STDIN>"
)

// Candidate is a file selected for validation.
type Candidate struct {
	// Path is the path as given or as built during traversal; StdinPath for stdin.
	Path types.FilesystemPath
}

// IsStdin reports whether the candidate reads standard input.
func (c Candidate) IsStdin() bool { return c.Path.IsStdin() }

// DisplayName is the name printed in result lines.
func (c Candidate) DisplayName() string {
	if c.IsStdin() {
		return StdinName
	}
	return c.Path.String()
}

// Candidates yields the files to validate for a single normalized argument.
// Standard input and regular files are yielded as-is; directories are walked
// depth-first and yield only entries matching Suffix. Discovery is lazy, so a
// consumer that stops early never lists the remaining directories.
//
// A non-nil error is always the last value yielded.
func Candidates(arg types.FilesystemPath) iter.Seq2[Candidate, error] {
	return func(yield func(Candidate, error) bool) {
		kind, err := Inspect(arg)
		if err != nil {
			yield(Candidate{}, err)
			return
		}

		switch kind {
		case KindStdin, KindFile:
			yield(Candidate{Path: arg}, nil)
		case KindDirectory:
			walk(arg, yield)
		}
	}
}

// walk visits dir in listing order and reports whether the consumer wants more.
func walk(dir types.FilesystemPath, yield func(Candidate, error) bool) bool {
	names, err := readDirNames(dir)
	if err != nil {
		yield(Candidate{}, &ListDirError{Path: dir, Err: err})
		return false
	}

	for _, name := range names {
		sub := fspath.JoinStr(dir, name)
		if isDir(sub) {
			if !walk(sub, yield) {
				return false
			}
			continue
		}
		if !types.FilesystemPath(name).HasSuffixFold(Suffix) {
			continue
		}
		if !yield(Candidate{Path: sub}, nil) {
			return false
		}
	}
	return true
}

// readDirNames lists dir without sorting so traversal follows the order the
// operating system returns.
func readDirNames(dir types.FilesystemPath) ([]string, error) {
	f, err := os.Open(string(dir))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }() // Read-only handle; close error carries no information

	return f.Readdirnames(-1)
}

// isDir follows symlinks; entries that cannot be stat-ed count as non-directories.
func isDir(p types.FilesystemPath) bool {
	info, err := os.Stat(string(p))
	return err == nil && info.IsDir()
}
