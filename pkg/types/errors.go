// Error taxonomy shared by the seq, assoc, and text packages.
package types

import (
	"errors"
	"fmt"
)

// Access and encoding errors. Structured errors below unwrap to these, so
// callers match with errors.Is.
var (
	ErrOutOfBounds            = errors.New("index out of bounds")
	ErrInvalidEncoding        = errors.New("invalid UTF-8 encoding")
	ErrInvalidBoundary        = errors.New("offset is not on a code point boundary")
	ErrConcurrentModification = errors.New("collection modified during iteration")
	ErrMoved                  = errors.New("use of moved value")
	ErrInvalidRecord          = errors.New("invalid record")
)

// IndexError reports an index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds for length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfBounds }

// EncodingError reports the byte offset of the first invalid UTF-8 sequence.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte %d", e.Offset)
}

func (e *EncodingError) Unwrap() error { return ErrInvalidEncoding }

// BoundaryError reports a byte offset that falls inside a multi-byte
// scalar value.
type BoundaryError struct {
	Offset int
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("byte %d is inside a multi-byte code point", e.Offset)
}

func (e *BoundaryError) Unwrap() error { return ErrInvalidBoundary }
