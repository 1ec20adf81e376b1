// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/linkedin/goavro/v2"
)

// EventSchema is the record schema used by generated fixtures.
const EventSchema = `{
  "type": "record",
  "name": "Event",
  "namespace": "test.avrovalidate",
  "fields": [
    {"name": "id", "type": "long"},
    {"name": "name", "type": "string"}
  ]
}`

// ocfMagic starts every object container file.
var ocfMagic = []byte("Obj\x01")

// OCF encodes an object container file holding n Event records compressed
// with codec ("null", "deflate" or "snappy").
func OCF(codec string, n int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := goavro.NewOCFWriter(goavro.OCFConfig{
		W:               &buf,
		Schema:          EventSchema,
		CompressionName: codec,
	})
	if err != nil {
		return nil, fmt.Errorf("create OCF writer: %w", err)
	}

	records := make([]any, 0, n)
	for i := range n {
		records = append(records, map[string]any{
			"id":   int64(i),
			"name": fmt.Sprintf("event-%d", i),
		})
	}
	if len(records) > 0 {
		if err := w.Append(records); err != nil {
			return nil, fmt.Errorf("append records: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// OCFHeader builds a bare container header from raw metadata, bypassing the
// writer's own checks. It produces headers the decoder refuses, such as ones
// naming a codec it does not implement or carrying a broken schema.
func OCFHeader(meta map[string][]byte) ([]byte, error) {
	codec, err := goavro.NewCodec(`{"type":"map","values":"bytes"}`)
	if err != nil {
		return nil, fmt.Errorf("create metadata codec: %w", err)
	}

	native := make(map[string]any, len(meta))
	for k, v := range meta {
		native[k] = v
	}

	buf := append([]byte(nil), ocfMagic...)
	buf, err = codec.BinaryFromNative(buf, native)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return append(buf, bytes.Repeat([]byte{0xA5}, 16)...), nil
}

// CodecHeader is OCFHeader with a valid schema and the given avro.codec value.
func CodecHeader(codec string) ([]byte, error) {
	return OCFHeader(map[string][]byte{
		"avro.schema": []byte(EventSchema),
		"avro.codec":  []byte(codec),
	})
}

// MustOCF is OCF that fails the test on error.
func MustOCF(t testing.TB, codec string, n int) []byte {
	t.Helper()
	data, err := OCF(codec, n)
	if err != nil {
		t.Fatalf("failed to build OCF fixture: %v", err)
	}
	return data
}

// MustOCFHeader is OCFHeader that fails the test on error.
func MustOCFHeader(t testing.TB, meta map[string][]byte) []byte {
	t.Helper()
	data, err := OCFHeader(meta)
	if err != nil {
		t.Fatalf("failed to build OCF header fixture: %v", err)
	}
	return data
}

// MustCodecHeader is CodecHeader that fails the test on error.
func MustCodecHeader(t testing.TB, codec string) []byte {
	t.Helper()
	data, err := CodecHeader(codec)
	if err != nil {
		t.Fatalf("failed to build OCF header fixture: %v", err)
	}
	return data
}

// MustWriteOCF writes a well-formed container with n records to path.
func MustWriteOCF(t testing.TB, path, codec string, n int) {
	t.Helper()
	if err := os.WriteFile(path, MustOCF(t, codec, n), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
