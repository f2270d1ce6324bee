// Package seq implements Sequence, a growable ordered container with checked
// and unchecked indexed access.
//
// Capacity doubles when full. Structural changes (Append, Pop, Remove, Clear,
// Release) made while an iterator from All, Values, or Mutable is open cause
// the iterator's next step to panic with an error wrapping
// types.ErrConcurrentModification.
//
// A Sequence is not safe for concurrent use.
package seq

import (
	"fmt"
	"iter"
	"strings"

	"github.com/mesh-intelligence/hoard/pkg/types"
)

// Sequence is a growable, ordered, homogeneous collection. The zero value is
// an empty sequence ready to use.
type Sequence[T any] struct {
	data []T // len(data) is the capacity
	n    int
	mods uint64
}

// New returns an empty sequence.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// WithCapacity returns an empty sequence whose backing storage holds n
// elements before the first reallocation.
func WithCapacity[T any](n int) *Sequence[T] {
	if n < 0 {
		n = 0
	}
	return &Sequence[T]{data: make([]T, n)}
}

// Of returns a sequence holding values in order. The values are copied.
func Of[T any](values ...T) *Sequence[T] {
	s := WithCapacity[T](len(values))
	copy(s.data, values)
	s.n = len(values)
	return s
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int { return s.n }

// Cap returns the number of elements the backing storage holds.
func (s *Sequence[T]) Cap() int { return len(s.data) }

// IsEmpty reports whether the sequence has no elements.
func (s *Sequence[T]) IsEmpty() bool { return s.n == 0 }

// Append adds v at the end, doubling the backing storage when full.
func (s *Sequence[T]) Append(v T) {
	if s.n == len(s.data) {
		s.grow()
	}
	s.data[s.n] = v
	s.n++
	s.mods++
}

func (s *Sequence[T]) grow() {
	newCap := 2 * len(s.data)
	if newCap == 0 {
		newCap = 1
	}
	data := make([]T, newCap)
	copy(data, s.data[:s.n])
	s.data = data
}

// Get returns the element at i and true, or the zero value and false when i
// is outside [0, Len). It never panics.
func (s *Sequence[T]) Get(i int) (T, bool) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, false
	}
	return s.data[i], true
}

// At returns the element at i. It panics with a *types.IndexError when i is
// outside [0, Len); use Get for checked access.
func (s *Sequence[T]) At(i int) T {
	s.check(i)
	return s.data[i]
}

// Set replaces the element at i. It panics like At.
func (s *Sequence[T]) Set(i int, v T) {
	s.check(i)
	s.data[i] = v
}

func (s *Sequence[T]) check(i int) {
	if i < 0 || i >= s.n {
		panic(&types.IndexError{Index: i, Len: s.n})
	}
}

// Pop removes and returns the last element, or false when empty.
func (s *Sequence[T]) Pop() (T, bool) {
	var zero T
	if s.n == 0 {
		return zero, false
	}
	s.n--
	v := s.data[s.n]
	s.data[s.n] = zero
	s.mods++
	return v, true
}

// Remove deletes the element at i, shifting later elements left, and returns
// it. Returns false when i is outside [0, Len).
func (s *Sequence[T]) Remove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= s.n {
		return zero, false
	}
	v := s.data[i]
	copy(s.data[i:s.n], s.data[i+1:s.n])
	s.n--
	s.data[s.n] = zero
	s.mods++
	return v, true
}

// Clear drops every element. Capacity is kept.
func (s *Sequence[T]) Clear() {
	clear(s.data[:s.n])
	s.n = 0
	s.mods++
}

// Release hands every element to fn exactly once, in order, then clears the
// sequence. It is the explicit form of dropping the container.
func (s *Sequence[T]) Release(fn func(T)) {
	n := s.n
	for i := 0; i < n; i++ {
		fn(s.data[i])
	}
	s.Clear()
}

// Slice returns a copy of the elements.
func (s *Sequence[T]) Slice() []T {
	out := make([]T, s.n)
	copy(out, s.data[:s.n])
	return out
}

// All yields index/value pairs in insertion order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		mods := s.mods
		for i := 0; i < s.n; i++ {
			if !yield(i, s.data[i]) {
				return
			}
			s.checkMods(mods)
		}
	}
}

// Values yields the elements in insertion order.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Mutable yields a pointer to each element in insertion order. Writes
// through the pointer are visible immediately. The pointer must not be kept
// past the iteration step.
func (s *Sequence[T]) Mutable() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		mods := s.mods
		for i := 0; i < s.n; i++ {
			if !yield(i, &s.data[i]) {
				return
			}
			s.checkMods(mods)
		}
	}
}

func (s *Sequence[T]) checkMods(want uint64) {
	if s.mods != want {
		panic(fmt.Errorf("sequence: %w", types.ErrConcurrentModification))
	}
}

// String formats the elements as [a b c].
func (s *Sequence[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < s.n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, s.data[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
