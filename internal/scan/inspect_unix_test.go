// SPDX-License-Identifier: MPL-2.0

//go:build linux || darwin

package scan

import (
	"errors"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/avrovalidate/avrovalidate/pkg/types"
)

func TestInspect_Unclassifiable(t *testing.T) {
	t.Parallel()

	fifo := filepath.Join(t.TempDir(), "pipe.avro")
	if err := syscall.Mkfifo(fifo, 0o600); err != nil {
		t.Skipf("mkfifo not supported: %v", err)
	}

	_, err := Inspect(types.FilesystemPath(fifo))
	if !errors.Is(err, ErrUnclassifiablePath) {
		t.Fatalf("Inspect(fifo) error = %v, want ErrUnclassifiablePath", err)
	}

	want := "path '" + fifo + "' could not be determined as either a file or directory"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
