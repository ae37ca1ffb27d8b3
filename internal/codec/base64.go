// Package codec provides base64 to binary buffer conversion for template payloads.
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// MalformedEncodingError represents invalid base64 input.
type MalformedEncodingError struct {
	Message string
	Cause   error
}

func (e *MalformedEncodingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed encoding: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed encoding: %s", e.Message)
}

func (e *MalformedEncodingError) Unwrap() error {
	return e.Cause
}

// Decode converts base64 text to bytes. Internal whitespace and newlines are
// stripped before decoding; the stripped input must be non-empty and a
// multiple of 4 characters (the base64 block-size invariant).
func Decode(text string) ([]byte, error) {
	stripped := stripWhitespace(text)

	if stripped == "" {
		return nil, &MalformedEncodingError{Message: "empty input"}
	}
	if len(stripped)%4 != 0 {
		return nil, &MalformedEncodingError{
			Message: fmt.Sprintf("length %d is not a multiple of 4", len(stripped)),
		}
	}

	data, err := base64.StdEncoding.Strict().DecodeString(stripped)
	if err != nil {
		return nil, &MalformedEncodingError{
			Message: "invalid base64 data",
			Cause:   err,
		}
	}
	return data, nil
}

// Encode converts bytes to standard base64 text.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func stripWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, text)
}
