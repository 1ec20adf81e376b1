// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath functions that
// accept and return types.FilesystemPath, so callers keep typed-in/typed-out
// path operations without converting at every call site.
package fspath

import (
	"path/filepath"

	"github.com/avrovalidate/avrovalidate/pkg/types"
)

// JoinStr wraps filepath.Join, accepting a typed base path and raw string
// segments. Use this when joining a path with OS-provided file names
// (e.g., from (*os.File).ReadDir).
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Clean wraps filepath.Clean for FilesystemPath.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}

// Base wraps filepath.Base for FilesystemPath and returns the last element
// as a plain string.
func Base(p types.FilesystemPath) string {
	return filepath.Base(string(p))
}
