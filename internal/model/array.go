package model

import (
	"hash/fnv"
	"strings"
)

// Array is an ordered, mutable collection of values. Reads through At are
// clamped: any out-of-range index yields the undefined value instead of
// panicking. Undefined elements are first-class sparse slots: they are
// stored, counted by Len and returned by At, but omitted from serialized
// output. Arrays are not internally synchronized; treat an instance as
// single-writer or lock externally.
type Array struct {
	items []Value
}

// NewArray creates an array holding the given values.
func NewArray(items ...Value) *Array {
	a := &Array{}
	if len(items) > 0 {
		a.items = append(a.items, items...)
	}
	return a
}

// Len returns the number of elements, including undefined slots.
func (a *Array) Len() int {
	return len(a.items)
}

// At returns the element at index i, or the undefined value when i is
// outside [0, Len). It never panics.
func (a *Array) At(i int) Value {
	if i < 0 || i >= len(a.items) {
		return Undefined()
	}
	return a.items[i]
}

// Set replaces the element at index i. The index must be in range.
func (a *Array) Set(i int, v Value) {
	a.items[i] = v
}

// Append adds values to the end of the array.
func (a *Array) Append(vs ...Value) {
	a.items = append(a.items, vs...)
}

// Insert inserts v at index i, shifting later elements right. The index
// must be in [0, Len].
func (a *Array) Insert(i int, v Value) {
	a.items = append(a.items, Value{})
	copy(a.items[i+1:], a.items[i:])
	a.items[i] = v
}

// RemoveAt removes the element at index i, shifting later elements left.
// The index must be in range.
func (a *Array) RemoveAt(i int) {
	a.items = append(a.items[:i], a.items[i+1:]...)
}

// Values returns a copy of the elements in order.
func (a *Array) Values() []Value {
	out := make([]Value, len(a.items))
	copy(out, a.items)
	return out
}

// Equal reports element-wise sequence equality, recursing into child
// containers.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.items) != len(b.items) {
		return false
	}
	for i, v := range a.items {
		if !v.Equal(b.items[i]) {
			return false
		}
	}
	return true
}

// Hash folds the element count with each element's hash. Child containers
// contribute their tag only, per Value.Hash.
func (a *Array) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(len(a.items)), byte(len(a.items) >> 8)})
	var buf [8]byte
	for _, v := range a.items {
		e := v.Hash()
		for i := range buf {
			buf[i] = byte(e >> (8 * i))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Dump appends the compact JSON text form to sb. Undefined elements are
// omitted as if they were absent entirely.
func (a *Array) Dump(sb *strings.Builder) {
	sb.WriteByte('[')
	first := true
	for _, v := range a.items {
		if v.IsUndefined() {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		v.Dump(sb)
	}
	sb.WriteByte(']')
}

// String renders the array as compact JSON text.
func (a *Array) String() string {
	var sb strings.Builder
	a.Dump(&sb)
	return sb.String()
}
