// Package model defines an in-memory document model for JSON: a tagged
// value type able to represent any JSON value, the ordered containers for
// arrays and objects, and compact serialization back to JSON text.
package model

import (
	"hash/fnv"
	"strings"
)

// Type identifies which kind of JSON value a Value holds.
type Type int

const (
	// TypeUndefined marks the absence of a value. It is distinct from JSON
	// null: undefined values are never serialized and are filtered out of
	// arrays and objects on dump. The zero Value is undefined.
	TypeUndefined Type = iota
	TypeNull
	TypeBoolean
	TypeNumber
	TypeString
	TypeObject
	TypeArray
	// TypeUnknownLiteral is a bare token encountered during parsing that is
	// not true, false, null or a valid number. It is preserved verbatim for
	// forward compatibility instead of being rejected.
	TypeUnknownLiteral
	// TypeAny is the wildcard for accessor expected-type gates. It is never
	// the tag of an actual Value.
	TypeAny
)

// String returns the name of the type.
func (t Type) String() string {
	switch t {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeUnknownLiteral:
		return "unknown literal"
	case TypeAny:
		return "any"
	}
	return "invalid"
}

// Value is one node of a JSON document. It is an immutable value type:
// scalars carry their raw backing text, arrays and objects carry a shared
// reference to their container, so copying a Value copies the reference,
// not the container. Mutating an array or object through one alias is
// visible through every alias holding the same reference.
type Value struct {
	typ Type
	raw string
	// rawOK distinguishes an empty backing text from no backing text at
	// all. Null, undefined and container values have no backing text.
	rawOK bool
	arr   *Array
	obj   *Object
}

// Undefined returns the undefined value.
func Undefined() Value {
	return Value{}
}

// Null returns the JSON null value.
func Null() Value {
	return Value{typ: TypeNull}
}

// NewBool returns a boolean value backed by the canonical literal text.
func NewBool(b bool) Value {
	if b {
		return Value{typ: TypeBoolean, raw: "true", rawOK: true}
	}
	return Value{typ: TypeBoolean, raw: "false", rawOK: true}
}

// NewNumber returns a number value backed by the given textual
// representation. The text is stored as-is, so very large integers and
// arbitrary-precision decimals round-trip without loss.
func NewNumber(text string) Value {
	return Value{typ: TypeNumber, raw: text, rawOK: true}
}

// NewString returns a string value.
func NewString(s string) Value {
	return Value{typ: TypeString, raw: s, rawOK: true}
}

// NewStringPtr returns a string value, or the JSON null value when p is
// nil. A missing string maps to null, never to an empty string.
func NewStringPtr(p *string) Value {
	if p == nil {
		return Null()
	}
	return NewString(*p)
}

// NewUnknownLiteral returns a value holding a bare literal token verbatim.
func NewUnknownLiteral(text string) Value {
	return Value{typ: TypeUnknownLiteral, raw: text, rawOK: true}
}

// NewArrayValue returns a value wrapping the given array. The array is
// shared, not copied. A nil array is normalized to an empty one.
func NewArrayValue(a *Array) Value {
	if a == nil {
		a = NewArray()
	}
	return Value{typ: TypeArray, arr: a}
}

// NewObjectValue returns a value wrapping the given object. The object is
// shared, not copied. A nil object is normalized to an empty one.
func NewObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{typ: TypeObject, obj: o}
}

// NewRaw returns a scalar value of type t backed by the given text. It is
// intended for the parser; t must be one of the scalar types.
func NewRaw(t Type, text string) Value {
	switch t {
	case TypeBoolean, TypeNumber, TypeString, TypeUnknownLiteral:
		return Value{typ: t, raw: text, rawOK: true}
	case TypeNull:
		return Null()
	case TypeUndefined:
		return Undefined()
	}
	panic("jsondom: NewRaw called with non-scalar type " + t.String())
}

// Type returns the value's tag.
func (v Value) Type() Type {
	return v.typ
}

// IsUndefined reports whether the value is undefined.
func (v Value) IsUndefined() bool {
	return v.typ == TypeUndefined
}

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

// Text returns the raw backing text of a scalar value. It reports false
// for undefined, null, array and object values. Every typed accessor
// reads the value through Text, so the raw encoding is inspected in
// exactly one place.
func (v Value) Text() (string, bool) {
	return v.raw, v.rawOK
}

// Array returns the wrapped array, or nil if the value is not an array.
func (v Value) Array() *Array {
	return v.arr
}

// Object returns the wrapped object, or nil if the value is not an object.
func (v Value) Object() *Object {
	return v.obj
}

// Equal reports structural equality. Scalar values compare by tag and
// backing text. Arrays and objects compare by reference first and fall
// back to a full recursive comparison of their children.
func (v Value) Equal(w Value) bool {
	if v.typ != w.typ {
		return false
	}
	switch v.typ {
	case TypeArray:
		if v.arr == w.arr {
			return true
		}
		return v.arr.Equal(w.arr)
	case TypeObject:
		if v.obj == w.obj {
			return true
		}
		return v.obj.Equal(w.obj)
	default:
		return v.rawOK == w.rawOK && v.raw == w.raw
	}
}

// Hash returns a hash code consistent with Equal for scalar values.
// Containers fold only their tag, keeping hashing cheap and cycle-safe;
// two structurally equal containers therefore share a hash, as do two
// unequal ones.
func (v Value) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(v.typ)})
	if v.rawOK {
		h.Write([]byte(v.raw))
	}
	return h.Sum64()
}

// Dump appends the compact JSON text form of the value to sb. Undefined
// values produce no output at all; strings are escaped per escapeString;
// numbers, booleans and unknown literals are emitted as their raw backing
// text verbatim.
func (v Value) Dump(sb *strings.Builder) {
	switch v.typ {
	case TypeUndefined:
		// Skipped entirely.
	case TypeNull:
		sb.WriteString("null")
	case TypeString:
		escapeString(sb, v.raw)
	case TypeArray:
		v.arr.Dump(sb)
	case TypeObject:
		v.obj.Dump(sb)
	default:
		sb.WriteString(v.raw)
	}
}

// String renders the value as compact JSON text. An undefined value
// renders as the empty string.
func (v Value) String() string {
	var sb strings.Builder
	v.Dump(&sb)
	return sb.String()
}

// escapeString writes s as a double-quoted JSON string. Only the quote,
// the backslash and the short-escape control characters are escaped;
// every other character, including non-ASCII and '/', passes through
// verbatim. The parser accepts exactly this set.
func escapeString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}
