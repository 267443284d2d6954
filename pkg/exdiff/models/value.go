package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the tag of a Value.
type Kind uint8

const (
	// KindEmpty marks a cell with no cached value.
	KindEmpty Kind = iota
	// KindString is a text value (including cached error codes such as "#DIV/0!").
	KindString
	// KindNumber is a numeric value (dates are stored as serial numbers).
	KindNumber
	// KindBool is a boolean value.
	KindBool
)

var kindNames = [...]string{
	KindEmpty:  "empty",
	KindString: "string",
	KindNumber: "number",
	KindBool:   "bool",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

func parseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown value kind %q", s)
}

// Value is a cached cell value. The zero Value is Empty.
//
// Numbers remember whether the stored literal was integral so that 10 and
// 10.0 can be told apart when a caller asks for it.
type Value struct {
	kind    Kind
	str     string
	num     float64
	integer bool
	b       bool
}

// Empty returns the empty marker.
func Empty() Value { return Value{} }

// String returns a text value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a non-integral numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Integer returns an integral numeric value.
func Integer(i int64) Value { return Value{kind: KindNumber, num: float64(i), integer: true} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the value tag.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v is the empty marker.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Str returns the text payload of a KindString value.
func (v Value) Str() string { return v.str }

// Float returns the payload of a KindNumber value.
func (v Value) Float() float64 { return v.num }

// IsInteger reports whether a KindNumber value came from an integral literal.
func (v Value) IsInteger() bool { return v.kind == KindNumber && v.integer }

// Truth returns the payload of a KindBool value.
func (v Value) Truth() bool { return v.b }

// Equal reports whether both tag and payload match exactly. Numbers must also
// agree on integrality.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num && v.integer == other.integer
	case KindBool:
		return v.b == other.b
	default:
		return true
	}
}

// Display renders the value as text. Integral and non-integral numbers with the
// same magnitude render identically.
func (v Value) Display() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	default:
		return ""
	}
}

// GoString makes values readable in test failure output.
func (v Value) GoString() string {
	if v.kind == KindEmpty {
		return "models.Empty()"
	}
	return fmt.Sprintf("models.Value{%s %q}", v.kind, v.Literal())
}

// Literal is the payload text used in JSON and reports. Unlike Display,
// non-integral whole numbers keep a ".0".
func (v Value) Literal() string {
	if v.kind != KindNumber {
		return v.Display()
	}
	text := strconv.FormatFloat(v.num, 'f', -1, 64)
	if !v.integer && !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	return text
}

type valueJSON struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the value as {"kind": ..., "value": ...}.
func (v Value) MarshalJSON() ([]byte, error) {
	out := valueJSON{Kind: v.kind.String()}
	var err error
	switch v.kind {
	case KindString:
		out.Value, err = json.Marshal(v.str)
	case KindNumber:
		out.Value = json.RawMessage(v.Literal())
	case KindBool:
		out.Value, err = json.Marshal(v.b)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the format written by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var in valueJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	kind, err := parseKind(in.Kind)
	if err != nil {
		return err
	}

	switch kind {
	case KindEmpty:
		*v = Empty()
	case KindString:
		var s string
		if err := json.Unmarshal(in.Value, &s); err != nil {
			return fmt.Errorf("string value: %w", err)
		}
		*v = String(s)
	case KindNumber:
		parsed, ok := ParseNumber(string(bytes.TrimSpace(in.Value)))
		if !ok {
			return fmt.Errorf("number value: invalid literal %q", in.Value)
		}
		*v = parsed
	case KindBool:
		var b bool
		if err := json.Unmarshal(in.Value, &b); err != nil {
			return fmt.Errorf("bool value: %w", err)
		}
		*v = Bool(b)
	}
	return nil
}

// ParseNumber parses a stored numeric literal. Integer literals produce an
// integral value; anything else ParseFloat accepts produces a non-integral one.
// NaN and infinities are rejected since a workbook cannot store them.
func ParseNumber(s string) (Value, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Integer(i), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, false
	}
	return Number(f), true
}
