// Package text implements Buffer, a growable text value that is valid UTF-8
// at every observable point.
//
// Lengths and offsets are in bytes. There is no integer-indexed character
// access: byte offsets and character positions differ for non-ASCII text,
// so callers choose Slice (bytes), Runes (scalar values), or Graphemes
// (user-perceived characters) explicitly.
//
// A Buffer is not safe for concurrent use.
package text

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/mesh-intelligence/hoard/pkg/types"
)

// Buffer owns a UTF-8 byte sequence. The zero value is an empty buffer.
type Buffer struct {
	b     []byte
	gen   uint64 // bumped on every mutation; Views compare against it
	moved bool
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromBytes copies p into a new buffer. It returns a *types.EncodingError
// when p is not valid UTF-8.
func FromBytes(p []byte) (*Buffer, error) {
	if off := invalidAt(p); off >= 0 {
		return nil, &types.EncodingError{Offset: off}
	}
	return &Buffer{b: append([]byte(nil), p...)}, nil
}

// FromString is FromBytes for a string. Go strings may hold arbitrary bytes,
// so the input is validated.
func FromString(s string) (*Buffer, error) {
	return FromBytes([]byte(s))
}

// Format builds a buffer from a fmt format string. Arguments are only read.
func Format(format string, args ...any) (*Buffer, error) {
	return FromString(fmt.Sprintf(format, args...))
}

// invalidAt returns the offset of the first invalid UTF-8 sequence in p, or
// -1 when p is valid.
func invalidAt(p []byte) int {
	if utf8.Valid(p) {
		return -1
	}
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

func (b *Buffer) live() {
	if b.moved {
		panic(fmt.Errorf("text buffer: %w", types.ErrMoved))
	}
}

// Append adds other's text to the end of b. other is only read.
func (b *Buffer) Append(other *Buffer) {
	b.live()
	other.live()
	b.b = append(b.b, other.b...)
	b.gen++
}

// AppendString validates s and adds it to the end of b. On error b is
// unchanged.
func (b *Buffer) AppendString(s string) error {
	b.live()
	if !utf8.ValidString(s) {
		return &types.EncodingError{Offset: invalidAt([]byte(s))}
	}
	b.b = append(b.b, s...)
	b.gen++
	return nil
}

// Concat returns a buffer holding a's text followed by b's. It takes
// ownership of a: a's storage is reused and a is marked moved, so any later
// method call on a panics with types.ErrMoved. b is only read.
func Concat(a, b *Buffer) *Buffer {
	a.live()
	b.live()
	out := &Buffer{b: append(a.b, b.b...)}
	a.b = nil
	a.moved = true
	a.gen++
	return out
}

// Len returns the number of bytes, not characters.
func (b *Buffer) Len() int {
	b.live()
	return len(b.b)
}

// RuneCount returns the number of Unicode scalar values.
func (b *Buffer) RuneCount() int {
	b.live()
	return utf8.RuneCount(b.b)
}

// GraphemeCount returns the number of user-perceived characters.
func (b *Buffer) GraphemeCount() int {
	b.live()
	return uniseg.GraphemeClusterCount(string(b.b))
}

// Width returns the number of terminal columns the text occupies.
func (b *Buffer) Width() int {
	b.live()
	return runewidth.StringWidth(string(b.b))
}

// IsASCII reports whether every byte is below 0x80.
func (b *Buffer) IsASCII() bool {
	b.live()
	for _, c := range b.b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// checkRange validates [start, end) against the buffer.
func (b *Buffer) checkRange(start, end int) error {
	if start < 0 || end > len(b.b) {
		bad := start
		if start >= 0 {
			bad = end
		}
		return &types.IndexError{Index: bad, Len: len(b.b)}
	}
	if start > end {
		return fmt.Errorf("range [%d, %d): %w", start, end, types.ErrOutOfBounds)
	}
	if !b.boundary(start) {
		return &types.BoundaryError{Offset: start}
	}
	if !b.boundary(end) {
		return &types.BoundaryError{Offset: end}
	}
	return nil
}

func (b *Buffer) boundary(off int) bool {
	return off == len(b.b) || utf8.RuneStart(b.b[off])
}

// Slice returns a copy of the bytes in [start, end). It returns a
// *types.BoundaryError when either offset falls inside a multi-byte scalar,
// and an error wrapping types.ErrOutOfBounds when the range is outside the
// buffer or start > end.
func (b *Buffer) Slice(start, end int) (*Buffer, error) {
	b.live()
	if err := b.checkRange(start, end); err != nil {
		return nil, err
	}
	return &Buffer{b: append([]byte(nil), b.b[start:end]...)}, nil
}

// Runes yields each Unicode scalar value, left to right.
func (b *Buffer) Runes() iter.Seq[rune] {
	b.live()
	return func(yield func(rune) bool) {
		for _, r := range string(b.b) {
			if !yield(r) {
				return
			}
		}
	}
}

// Bytes yields each raw byte, left to right.
func (b *Buffer) Bytes() iter.Seq[byte] {
	b.live()
	return func(yield func(byte) bool) {
		for _, c := range b.b {
			if !yield(c) {
				return
			}
		}
	}
}

// Graphemes yields each grapheme cluster, left to right.
func (b *Buffer) Graphemes() iter.Seq[string] {
	b.live()
	return func(yield func(string) bool) {
		g := uniseg.NewGraphemes(string(b.b))
		for g.Next() {
			if !yield(g.Str()) {
				return
			}
		}
	}
}

// Raw returns a copy of the underlying bytes.
func (b *Buffer) Raw() []byte {
	b.live()
	return append([]byte(nil), b.b...)
}

// String returns the text.
func (b *Buffer) String() string {
	b.live()
	return string(b.b)
}
