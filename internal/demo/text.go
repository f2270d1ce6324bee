package demo

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/hoard/pkg/text"
	"github.com/mesh-intelligence/hoard/pkg/types"
)

// greetings holds "hello" in several scripts.
var greetings = []string{
	"السلام عليكم",
	"Dobrý den",
	"Hello",
	"שָׁלוֹם",
	"नमस्ते",
	"こんにちは",
	"안녕하세요",
	"你好",
	"Olá",
	"Здравствуйте",
	"Hola",
}

// lengths summarizes a buffer's size at each level of text structure.
type lengths struct {
	Text      string `json:"text"`
	Bytes     int    `json:"bytes"`
	Runes     int    `json:"runes"`
	Graphemes int    `json:"graphemes"`
	Width     int    `json:"width"`
}

func (l lengths) String() string {
	return fmt.Sprintf("%s bytes=%d runes=%d graphemes=%d width=%d",
		l.Text, l.Bytes, l.Runes, l.Graphemes, l.Width)
}

// Text walks through construction, appending, concatenation with a move,
// formatting, byte length versus scalar count, boundary-checked slicing,
// and iteration by scalar and by byte.
func (r *Runner) Text() (*Report, error) {
	rep := &Report{Section: types.SectionText}

	s, err := text.FromString("initial contents")
	if err != nil {
		return nil, err
	}
	rep.add("from literal", s.String())

	for _, g := range greetings {
		b, err := text.FromString(g)
		if err != nil {
			return nil, fmt.Errorf("greeting %q: %w", g, err)
		}
		rep.add("greeting", lengths{
			Text:      g,
			Bytes:     b.Len(),
			Runes:     b.RuneCount(),
			Graphemes: b.GraphemeCount(),
			Width:     b.Width(),
		})
	}

	s1, _ := text.FromString("foo")
	s2 := "bar"
	if err := s1.AppendString(s2); err != nil {
		return nil, err
	}
	rep.add("s2", s2)
	rep.add("s1", s1.String())

	hello, _ := text.FromString("Hello, ")
	world, _ := text.FromString("world!")
	s3 := text.Concat(hello, world)
	rep.add("concatenated", s3.String())
	rep.add("first operand moved", moved(hello))

	tic, _ := text.FromString("tic")
	tac, _ := text.FromString("tac")
	toe, _ := text.FromString("toe")
	formatted, err := text.Format("%s-%s-%s", tic, tac, toe)
	if err != nil {
		return nil, err
	}
	rep.add("formatted", formatted.String())

	hola, _ := text.FromString("Hola")
	rep.add("len Hola", hola.Len())
	cyr, _ := text.FromString("Здравствуйте")
	rep.add("len Здравствуйте", cyr.Len())

	prefix, err := cyr.Slice(0, 4)
	if err != nil {
		return nil, err
	}
	rep.add("slice [0, 4)", prefix.String())
	if _, err := cyr.Slice(0, 1); err != nil {
		if !errors.Is(err, types.ErrInvalidBoundary) {
			return nil, err
		}
		rep.add("slice [0, 1)", err.Error())
	}

	namaste, _ := text.FromString("नमस्ते")
	var runes []string
	for c := range namaste.Runes() {
		runes = append(runes, string(c))
	}
	rep.add("scalars", runes)
	var raw []int
	for c := range namaste.Bytes() {
		raw = append(raw, int(c))
	}
	rep.add("bytes", raw)

	return rep, nil
}

// moved reports whether b has been given away by text.Concat.
func moved(b *text.Buffer) (gone bool) {
	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			if !ok || !errors.Is(err, types.ErrMoved) {
				panic(rec)
			}
			gone = true
		}
	}()
	_ = b.Len()
	return false
}
