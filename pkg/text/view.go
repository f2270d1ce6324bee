package text

import (
	"fmt"
	"iter"

	"github.com/mesh-intelligence/hoard/pkg/types"
)

// View is a read-only borrow of a byte range of a Buffer. It shares the
// owner's storage and is valid only until the owner is next mutated; after
// that every read panics with an error wrapping
// types.ErrConcurrentModification.
type View struct {
	owner      *Buffer
	gen        uint64
	start, end int
}

// View borrows [start, end) without copying. Offsets are validated like
// Slice.
func (b *Buffer) View(start, end int) (View, error) {
	b.live()
	if err := b.checkRange(start, end); err != nil {
		return View{}, err
	}
	return View{owner: b, gen: b.gen, start: start, end: end}, nil
}

func (v View) bytes() []byte {
	if v.owner == nil {
		return nil
	}
	if v.owner.moved || v.owner.gen != v.gen {
		panic(fmt.Errorf("text view: owner mutated: %w", types.ErrConcurrentModification))
	}
	return v.owner.b[v.start:v.end]
}

// Len returns the number of bytes in the view.
func (v View) Len() int { return len(v.bytes()) }

// String returns a copy of the viewed text.
func (v View) String() string { return string(v.bytes()) }

// Runes yields each scalar value in the view.
func (v View) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range string(v.bytes()) {
			if !yield(r) {
				return
			}
		}
	}
}

// Owned copies the view into a new Buffer that outlives the owner.
func (v View) Owned() *Buffer {
	return &Buffer{b: append([]byte(nil), v.bytes()...)}
}
