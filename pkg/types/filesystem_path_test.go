// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestFilesystemPath_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    FilesystemPath
		wantErr bool
	}{
		{"absolute path", FilesystemPath("/data/events.avro"), false},
		{"relative path", FilesystemPath("events.avro"), false},
		{"path with spaces", FilesystemPath("/path/to/my file.avro"), false},
		{"stdin marker", StdinPath, false},
		{"empty is invalid", FilesystemPath(""), true},
		{"whitespace only is invalid", FilesystemPath("   "), true},
		{"tab only is invalid", FilesystemPath("\t"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.path.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("FilesystemPath(%q).Validate() returned unexpected error: %v", tt.path, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("FilesystemPath(%q).Validate() returned nil, want error", tt.path)
			}
			if !errors.Is(err, ErrInvalidFilesystemPath) {
				t.Errorf("error should wrap ErrInvalidFilesystemPath, got: %v", err)
			}
			var fpErr *InvalidFilesystemPathError
			if !errors.As(err, &fpErr) {
				t.Errorf("error should be *InvalidFilesystemPathError, got: %T", err)
			}
		})
	}
}

func TestFilesystemPath_HasSuffixFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path FilesystemPath
		want bool
	}{
		{"a.avro", true},
		{"b.AVRO", true},
		{"dir/c.AvRo", true},
		{"c.txt", false},
		{"avro", false},
		{"x.avro.bak", false},
		{".avro", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.path.HasSuffixFold(".avro"); got != tt.want {
			t.Errorf("FilesystemPath(%q).HasSuffixFold(.avro) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFilesystemPath_IsStdin(t *testing.T) {
	t.Parallel()

	if !StdinPath.IsStdin() {
		t.Error("StdinPath.IsStdin() = false, want true")
	}
	if FilesystemPath("./-").IsStdin() {
		t.Error(`FilesystemPath("./-").IsStdin() = true, want false`)
	}
}

func TestFilesystemPath_String(t *testing.T) {
	t.Parallel()
	p := FilesystemPath("/data/events.avro")
	if p.String() != "/data/events.avro" {
		t.Errorf("FilesystemPath.String() = %q, want %q", p.String(), "/data/events.avro")
	}
}
