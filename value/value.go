// Package value defines the runtime data model: the dynamically-typed
// values that expressions evaluate to and statements operate on.
package value

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind string

const (
	NilKind     Kind = "nil"
	BoolKind    Kind = "bool"
	IntegerKind Kind = "integer"
	FloatKind   Kind = "float"
	StringKind  Kind = "string"
)

// Value is a runtime literal: exactly one of Nil, Bool, Integer, Float, or
// String. Values are passed by value and carry no identity — two Values
// with the same Kind and contents are indistinguishable.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	text    string
}

// Nil is the singular nil value.
var Nil = Value{kind: NilKind}

// Bool constructs a Value holding b.
func Bool(b bool) Value { return Value{kind: BoolKind, boolean: b} }

// Integer constructs a Value holding the 64-bit integer i.
func Integer(i int64) Value { return Value{kind: IntegerKind, integer: i} }

// Float constructs a Value holding the 64-bit float f.
func Float(f float64) Value { return Value{kind: FloatKind, float: f} }

// String constructs a Value holding the string s.
func String(s string) Value { return Value{kind: StringKind, text: s} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the Nil value.
func (v Value) IsNil() bool { return v.kind == NilKind }

// AsInteger returns v's integer payload. Only meaningful when Kind() == IntegerKind.
func (v Value) AsInteger() int64 { return v.integer }

// AsFloat returns v's float payload. Only meaningful when Kind() == FloatKind.
func (v Value) AsFloat() float64 { return v.float }

// AsString returns v's string payload. Only meaningful when Kind() == StringKind.
func (v Value) AsString() string { return v.text }

// Truthy implements the language's one-argument boolean projection: Nil and
// false are falsy, as are the zero values 0, 0.0, and "". Everything else
// is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case NilKind:
		return false
	case BoolKind:
		return v.boolean
	case IntegerKind:
		return v.integer != 0
	case FloatKind:
		return v.float != 0
	case StringKind:
		return v.text != ""
	default:
		return true
	}
}

// Equal reports value equality: same-kind comparison of contents.
// Cross-kind comparisons are always false, except Nil == Nil.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case NilKind:
		return true
	case BoolKind:
		return v.boolean == other.boolean
	case IntegerKind:
		return v.integer == other.integer
	case FloatKind:
		return v.float == other.float
	case StringKind:
		return v.text == other.text
	default:
		return false
	}
}

// Display renders v the way a `print` statement writes it: strings
// verbatim, numbers in their default numeric form, booleans as
// "true"/"false", and Nil as the empty string.
func (v Value) Display() string {
	switch v.kind {
	case NilKind:
		return ""
	case BoolKind:
		return strconv.FormatBool(v.boolean)
	case IntegerKind:
		return strconv.FormatInt(v.integer, 10)
	case FloatKind:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case StringKind:
		return v.text
	default:
		return fmt.Sprintf("%v", v)
	}
}
