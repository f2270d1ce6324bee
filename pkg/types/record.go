package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// RecordKind names the variant held by a Record.
type RecordKind string

// Record kinds. The set is closed.
const (
	KindInteger RecordKind = "int"
	KindFloat   RecordKind = "float"
	KindText    RecordKind = "text"
)

// Record is a closed sum type over IntegerValue, FloatValue, and TextValue.
// It lets a homogeneous container such as seq.Sequence[Record] hold cells of
// different kinds, like a spreadsheet row. Only types in this package
// implement Record.
type Record interface {
	Kind() RecordKind
	String() string
	record() // sealed
}

// IntegerValue is a whole-number cell.
type IntegerValue int64

// FloatValue is a floating-point cell.
type FloatValue float64

// TextValue is a text cell.
type TextValue string

func (IntegerValue) record() {}
func (FloatValue) record()   {}
func (TextValue) record()    {}

func (IntegerValue) Kind() RecordKind { return KindInteger }
func (FloatValue) Kind() RecordKind   { return KindFloat }
func (TextValue) Kind() RecordKind    { return KindText }

func (v IntegerValue) String() string { return strconv.FormatInt(int64(v), 10) }
func (v FloatValue) String() string   { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v TextValue) String() string    { return strconv.Quote(string(v)) }

// recordJSON is the wire form of a Record.
type recordJSON struct {
	Kind  RecordKind      `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// MarshalRecord encodes r as {"kind": ..., "value": ...}.
// Returns ErrInvalidRecord for a nil record.
func MarshalRecord(r Record) ([]byte, error) {
	if r == nil {
		return nil, ErrInvalidRecord
	}
	var raw any
	switch v := r.(type) {
	case IntegerValue:
		raw = int64(v)
	case FloatValue:
		raw = float64(v)
	case TextValue:
		raw = string(v)
	}
	val, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal %s value: %w", r.Kind(), err)
	}
	return json.Marshal(recordJSON{Kind: r.Kind(), Value: val})
}

// UnmarshalRecord decodes the output of MarshalRecord.
// Returns an error wrapping ErrInvalidRecord when the kind is unknown or the
// value does not match the kind.
func UnmarshalRecord(data []byte) (Record, error) {
	var rj recordJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	switch rj.Kind {
	case KindInteger:
		var n int64
		if err := json.Unmarshal(rj.Value, &n); err != nil {
			return nil, fmt.Errorf("%w: int value: %v", ErrInvalidRecord, err)
		}
		return IntegerValue(n), nil
	case KindFloat:
		var f float64
		if err := json.Unmarshal(rj.Value, &f); err != nil {
			return nil, fmt.Errorf("%w: float value: %v", ErrInvalidRecord, err)
		}
		return FloatValue(f), nil
	case KindText:
		var s string
		if err := json.Unmarshal(rj.Value, &s); err != nil {
			return nil, fmt.Errorf("%w: text value: %v", ErrInvalidRecord, err)
		}
		return TextValue(s), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidRecord, rj.Kind)
	}
}
