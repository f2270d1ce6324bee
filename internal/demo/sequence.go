package demo

import (
	"encoding/json"
	"strings"

	"github.com/mesh-intelligence/hoard/pkg/seq"
	"github.com/mesh-intelligence/hoard/pkg/types"
)

// recordRow renders a row of Records as text or as tagged JSON objects.
type recordRow []types.Record

func (row recordRow) String() string {
	parts := make([]string, len(row))
	for i, r := range row {
		parts[i] = string(r.Kind()) + "(" + r.String() + ")"
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (row recordRow) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, len(row))
	for i, r := range row {
		data, err := types.MarshalRecord(r)
		if err != nil {
			return nil, err
		}
		out[i] = data
	}
	return json.Marshal(out)
}

// Sequence walks through appending, checked and unchecked access, plain and
// mutable iteration, a heterogeneous row, and releasing a sequence.
func (r *Runner) Sequence() (*Report, error) {
	rep := &Report{Section: types.SectionSequence}

	v := seq.New[int]()
	v.Append(7)
	v.Append(3)
	v.Append(12)
	rep.add("appended", v.Slice())
	rep.add("capacity", v.Cap())

	nums := seq.Of(1, 2, 3, 4, 5)
	rep.add("third element (At)", nums.At(2))
	if third, ok := nums.Get(2); ok {
		rep.add("third element (Get)", third)
	}
	if _, ok := nums.Get(100); !ok {
		rep.add("element 100 (Get)", "none")
	}

	readOnly := seq.Of(100, 32, 57)
	var seen []int
	for x := range readOnly.Values() {
		seen = append(seen, x)
	}
	rep.add("iterated", seen)

	mutable := seq.Of(100, 32, 57)
	for _, p := range mutable.Mutable() {
		*p += 50
	}
	rep.add("each plus 50", mutable.Slice())

	row := seq.Of[types.Record](
		types.IntegerValue(3),
		types.TextValue("blue"),
		types.FloatValue(10.12),
	)
	rep.add("spreadsheet row", recordRow(row.Slice()))

	released := 0
	row.Release(func(types.Record) { released++ })
	rep.add("released elements", released)

	return rep, nil
}
