// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/avrovalidate/avrovalidate/pkg/types"
)

func TestInspect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "events.avro")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name string
		arg  types.FilesystemPath
		want PathKind
	}{
		{"stdin", types.StdinPath, KindStdin},
		{"regular file", types.FilesystemPath(file), KindFile},
		{"directory", types.FilesystemPath(dir), KindDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Inspect(tt.arg)
			if err != nil {
				t.Fatalf("Inspect(%q) returned error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("Inspect(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestInspect_NotFound(t *testing.T) {
	t.Parallel()

	missing := types.FilesystemPath(filepath.Join(t.TempDir(), "nope.avro"))
	_, err := Inspect(missing)
	if err == nil {
		t.Fatal("Inspect() on missing path returned nil error")
	}
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("error should wrap ErrPathNotFound, got: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got: %v", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error should be *NotFoundError, got %T", err)
	}
	if nf.Path != missing {
		t.Errorf("NotFoundError.Path = %q, want %q", nf.Path, missing)
	}
	want := "'" + string(missing) + "' not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestInspect_FollowsSymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := Inspect(types.FilesystemPath(link))
	if err != nil {
		t.Fatalf("Inspect() returned error: %v", err)
	}
	if got != KindDirectory {
		t.Errorf("Inspect(symlink to dir) = %v, want %v", got, KindDirectory)
	}
}

func TestPathKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind PathKind
		want string
	}{
		{KindStdin, "stdin"},
		{KindFile, "file"},
		{KindDirectory, "directory"},
		{PathKind(9), "PathKind(9)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("PathKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
