// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/avrovalidate/avrovalidate/pkg/types"
)

const (
	// KindStdin is the standard input marker; it never touches the filesystem.
	KindStdin PathKind = iota
	// KindFile is a regular file (after following symlinks).
	KindFile
	// KindDirectory is a directory (after following symlinks).
	KindDirectory
)

var (
	// ErrPathNotFound is the sentinel error wrapped by NotFoundError.
	ErrPathNotFound = errors.New("path not found")
	// ErrUnclassifiablePath is the sentinel error wrapped by UnclassifiablePathError.
	ErrUnclassifiablePath = errors.New("path is neither a file nor a directory")
	// ErrListDir is the sentinel error wrapped by ListDirError.
	ErrListDir = errors.New("cannot list directory")
)

type (
	// PathKind classifies a normalized argument.
	PathKind int

	// NotFoundError is returned when an argument cannot be stat-ed.
	NotFoundError struct {
		Path types.FilesystemPath
		Err  error
	}

	// UnclassifiablePathError is returned for paths that exist but are
	// neither regular files nor directories (devices, sockets, FIFOs).
	UnclassifiablePathError struct {
		Path types.FilesystemPath
		Mode fs.FileMode
	}

	// ListDirError is returned when a directory met during traversal cannot
	// be opened or read.
	ListDirError struct {
		Path types.FilesystemPath
		Err  error
	}
)

// String returns the label used in diagnostics ("stdin", "file", "directory").
func (k PathKind) String() string {
	switch k {
	case KindStdin:
		return "stdin"
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return fmt.Sprintf("PathKind(%d)", int(k))
	}
}

// Inspect classifies arg without reading its content. Every stat failure is
// reported as not found, matching how existence is tested by shells.
func Inspect(arg types.FilesystemPath) (PathKind, error) {
	if arg.IsStdin() {
		return KindStdin, nil
	}

	info, err := os.Stat(string(arg))
	if err != nil {
		return 0, &NotFoundError{Path: arg, Err: err}
	}

	switch mode := info.Mode(); {
	case mode.IsRegular():
		return KindFile, nil
	case mode.IsDir():
		return KindDirectory, nil
	default:
		return 0, &UnclassifiablePathError{Path: arg, Mode: mode}
	}
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("'%s' not found", e.Path)
}

// Unwrap returns ErrPathNotFound and the underlying stat error.
func (e *NotFoundError) Unwrap() []error { return []error{ErrPathNotFound, e.Err} }

// Error implements the error interface for UnclassifiablePathError.
func (e *UnclassifiablePathError) Error() string {
	return fmt.Sprintf("path '%s' could not be determined as either a file or directory", e.Path)
}

// Unwrap returns ErrUnclassifiablePath for errors.Is() compatibility.
func (e *UnclassifiablePathError) Unwrap() error { return ErrUnclassifiablePath }

// Error implements the error interface for ListDirError.
func (e *ListDirError) Error() string {
	return fmt.Sprintf("cannot list directory '%s': %v", e.Path, e.Err)
}

// Unwrap returns ErrListDir and the underlying I/O error.
func (e *ListDirError) Unwrap() []error { return []error{ErrListDir, e.Err} }
