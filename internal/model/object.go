package model

import (
	"hash/fnv"
	"strings"
)

// Object is an ordered, mutable collection of properties that also
// behaves like a name-keyed map. Duplicate names are permitted; by-name
// lookups resolve to the last occurrence, matching the insertion-order
// semantics of repeated assignment. Enumeration returns every property in
// insertion order. Objects are not internally synchronized; treat an
// instance as single-writer or lock externally.
type Object struct {
	props []Property
	// index maps a name to the position of its last occurrence. Built
	// lazily on the first by-name lookup, extended in place on pure
	// appends and dropped on any other structural mutation.
	index map[string]int
}

// NewObject creates an object holding the given properties.
func NewObject(props ...Property) *Object {
	o := &Object{}
	if len(props) > 0 {
		o.props = append(o.props, props...)
	}
	return o
}

// Len returns the number of properties, including duplicates and
// undefined-valued entries.
func (o *Object) Len() int {
	return len(o.props)
}

// At returns the property at index i. The index must be in range.
func (o *Object) At(i int) Property {
	return o.props[i]
}

// Properties returns a copy of all properties in insertion order,
// duplicates included.
func (o *Object) Properties() []Property {
	out := make([]Property, len(o.props))
	copy(out, o.props)
	return out
}

// lookup returns the lazily built name-to-last-index map.
func (o *Object) lookup() map[string]int {
	if o.index == nil {
		o.index = make(map[string]int, len(o.props))
		for i, p := range o.props {
			o.index[p.name] = i
		}
	}
	return o.index
}

// IndexOf returns the index of the last property with the given name, or
// -1 when no property has that name.
func (o *Object) IndexOf(name string) int {
	if i, ok := o.lookup()[name]; ok {
		return i
	}
	return -1
}

// Contains reports whether a property with the given name exists.
func (o *Object) Contains(name string) bool {
	_, ok := o.lookup()[name]
	return ok
}

// TryGet returns the value of the last property with the given name.
func (o *Object) TryGet(name string) (Value, bool) {
	if i, ok := o.lookup()[name]; ok {
		return o.props[i].value, true
	}
	return Undefined(), false
}

// Get returns the value of the last property with the given name, or the
// undefined value when no property has that name.
func (o *Object) Get(name string) Value {
	v, _ := o.TryGet(name)
	return v
}

// Add appends a property, allowing duplicates of an existing name. The
// cached name index stays valid: the new entry becomes the last
// occurrence of its name.
func (o *Object) Add(name string, value Value) {
	o.props = append(o.props, Property{name: name, value: value})
	if o.index != nil {
		o.index[name] = len(o.props) - 1
	}
}

// Set replaces the value of the last property with the given name, or
// appends a new property when the name is absent.
func (o *Object) Set(name string, value Value) {
	if i, ok := o.lookup()[name]; ok {
		o.props[i] = Property{name: name, value: value}
		return
	}
	o.Add(name, value)
}

// AddProperty appends an existing property, allowing duplicates.
func (o *Object) AddProperty(p Property) {
	o.Add(p.name, p.value)
}

// Insert inserts a property at index i, shifting later properties right.
// The index must be in [0, Len].
func (o *Object) Insert(i int, p Property) {
	o.props = append(o.props, Property{})
	copy(o.props[i+1:], o.props[i:])
	o.props[i] = p
	o.index = nil
}

// SetAt replaces the property at index i. The index must be in range.
func (o *Object) SetAt(i int, p Property) {
	o.props[i] = p
	o.index = nil
}

// RemoveAt removes the property at index i, shifting later properties
// left. The index must be in range.
func (o *Object) RemoveAt(i int) {
	o.props = append(o.props[:i], o.props[i+1:]...)
	o.index = nil
}

// Remove removes the last property with the given name and reports
// whether one was removed. Earlier duplicates stay in place.
func (o *Object) Remove(name string) bool {
	i := o.IndexOf(name)
	if i < 0 {
		return false
	}
	o.RemoveAt(i)
	return true
}

// Equal reports element-wise sequence equality of the property lists,
// recursing into child containers.
func (o *Object) Equal(b *Object) bool {
	if o == nil || b == nil {
		return o == b
	}
	if len(o.props) != len(b.props) {
		return false
	}
	for i, p := range o.props {
		if !p.Equal(b.props[i]) {
			return false
		}
	}
	return true
}

// Hash folds the property count with each member's name and value hash.
func (o *Object) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(len(o.props)), byte(len(o.props) >> 8)})
	var buf [8]byte
	for _, p := range o.props {
		h.Write([]byte(p.name))
		e := p.value.Hash()
		for i := range buf {
			buf[i] = byte(e >> (8 * i))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Dump appends the compact JSON text form to sb. Properties whose value
// is undefined are omitted entirely.
func (o *Object) Dump(sb *strings.Builder) {
	sb.WriteByte('{')
	first := true
	for _, p := range o.props {
		if p.value.IsUndefined() {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		p.Dump(sb)
	}
	sb.WriteByte('}')
}

// String renders the object as compact JSON text.
func (o *Object) String() string {
	var sb strings.Builder
	o.Dump(&sb)
	return sb.String()
}
