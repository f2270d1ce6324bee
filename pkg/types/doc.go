// Package types defines the error taxonomy, the Record sum type, and the
// walkthrough Config shared by the hoard packages.
//
// Errors come in two forms: sentinels (ErrOutOfBounds, ErrInvalidEncoding,
// ErrInvalidBoundary, ErrConcurrentModification, ErrMoved) and structured
// errors (IndexError, EncodingError, BoundaryError) that carry a position
// and unwrap to their sentinel.
package types
