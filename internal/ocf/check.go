// SPDX-License-Identifier: MPL-2.0

package ocf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/linkedin/goavro/v2"
)

// goavro reports header problems as flat strings, so classification keys off
// stable fragments of its messages.
const codecMarker = "unrecognized compression algorithm"

// structuralMarkers identify failures to decode the header bytes themselves:
// short reads, foreign magic, a metadata map that does not decode, or a
// truncated sync marker.
var structuralMarkers = []string{
	"magic bytes",
	"OCF header metadata",
	"sync marker",
}

// Check reads the container header from r and classifies the result.
// It never returns OutcomeError with KindIO; that is reserved for CheckFile.
func Check(r io.Reader) (v Verdict) {
	defer func() {
		// A panic inside the decoder means it met bytes it could not type;
		// treat it like any other structural mismatch.
		if rec := recover(); rec != nil {
			v = invalid(fmt.Sprintf("decoder panic: %v", rec))
		}
	}()

	reader, err := goavro.NewOCFReader(bufio.NewReader(r))
	if err != nil {
		return Classify(err)
	}
	return Verdict{Outcome: OutcomeOK, Codec: reader.CompressionName()}
}

// CheckFile opens path and runs Check over it. The file is closed before
// returning.
func CheckFile(path string) Verdict {
	f, err := os.Open(path)
	if err != nil {
		return Verdict{
			Outcome: OutcomeError,
			Kind:    KindIO,
			Err:     &OpenError{Path: path, Err: err},
		}
	}
	defer func() { _ = f.Close() }() // Read-only handle; nothing to flush

	return Check(f)
}

// Classify maps a decoder error onto a Verdict.
func Classify(err error) Verdict {
	msg := err.Error()

	if strings.Contains(msg, codecMarker) {
		codec := codecName(msg)
		return Verdict{
			Outcome: OutcomeError,
			Kind:    KindMissingCodec,
			Codec:   codec,
			Err:     &DecodeError{Kind: KindMissingCodec, Codec: codec, Msg: msg},
		}
	}

	for _, marker := range structuralMarkers {
		if strings.Contains(msg, marker) {
			return invalid(msg)
		}
	}

	return Verdict{
		Outcome: OutcomeError,
		Kind:    KindFormat,
		Err:     &DecodeError{Kind: KindFormat, Msg: msg},
	}
}

func invalid(msg string) Verdict {
	return Verdict{
		Outcome: OutcomeInvalid,
		Kind:    KindStructural,
		Err:     &DecodeError{Kind: KindStructural, Msg: msg},
	}
}

// codecField precedes the quoted codec name in goavro's message.
const codecField = "avro.codec: "

// codecName extracts the quoted codec from
// `...unrecognized compression algorithm from avro.codec: "zstandard"`.
// The name may itself contain ": " or be empty.
func codecName(msg string) string {
	i := strings.Index(msg, codecField)
	if i < 0 {
		return ""
	}
	quoted, err := strconv.QuotedPrefix(msg[i+len(codecField):])
	if err != nil {
		return ""
	}
	name, err := strconv.Unquote(quoted)
	if err != nil {
		return ""
	}
	return name
}
