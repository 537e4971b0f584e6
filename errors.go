package xdgentries

import (
	"errors"
	"fmt"
)

// ErrNoGroupHeader is returned when a file contains key/value lines
// before the first group header.
var ErrNoGroupHeader = errors.New("file contains keys without a group header")

// EncodingError reports a raw value that is not valid UTF-8.
type EncodingError struct {
	// Offset is the byte offset of the first invalid sequence
	// within the raw value.
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at byte %d", e.Offset)
}

// ASCIIError reports a non-ASCII byte in a value whose declared type
// restricts it to ASCII. Only produced when Decoder.StrictASCII is set.
type ASCIIError struct {
	// Offset is the byte offset of the first non-ASCII byte.
	Offset int
}

func (e *ASCIIError) Error() string {
	return fmt.Sprintf("non-ASCII byte at offset %d in string value", e.Offset)
}
