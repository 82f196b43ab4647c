// Package bidiencoding wraps package bidi for callers that hold raw bytes
// in a named legacy or web encoding rather than a Go string, in the style
// of the original algorithm's own encode/decode wrapper around
// get_display.
package bidiencoding

import (
	"fmt"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/bidiorder/bidi/bidi"
)

// EncodingError wraps a decode or encode failure for a named encoding.
type EncodingError struct {
	Encoding string
	Op       string
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("bidiencoding: %s %s: %v", e.Op, e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Display decodes b from encodingName (resolved through the same registry
// browsers and golang.org/x/net/html use), runs bidi.Display over the
// decoded text, and re-encodes the result in the same encoding. No partial
// output is returned on failure.
func Display(b []byte, encodingName string, opts bidi.Options) ([]byte, error) {
	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, &EncodingError{Encoding: encodingName, Op: "resolve", Err: err}
	}

	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, &EncodingError{Encoding: encodingName, Op: "decode", Err: err}
	}

	displayed, err := bidi.Display(string(decoded), opts)
	if err != nil {
		return nil, &EncodingError{Encoding: encodingName, Op: "reorder", Err: err}
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(displayed))
	if err != nil {
		return nil, &EncodingError{Encoding: encodingName, Op: "encode", Err: err}
	}

	return encoded, nil
}
