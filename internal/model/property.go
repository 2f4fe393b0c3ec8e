package model

import "strings"

// Property is one member of a JSON object: an immutable (name, value)
// pair. Empty names are legal JSON keys and are accepted.
type Property struct {
	name  string
	value Value
}

// NewProperty creates a property.
func NewProperty(name string, value Value) Property {
	return Property{name: name, value: value}
}

// Name returns the property name.
func (p Property) Name() string {
	return p.name
}

// Value returns the property value.
func (p Property) Value() Value {
	return p.value
}

// Equal reports component-wise equality.
func (p Property) Equal(q Property) bool {
	return p.name == q.name && p.value.Equal(q.value)
}

// Dump appends the compact JSON text form, "name":value, to sb.
func (p Property) Dump(sb *strings.Builder) {
	escapeString(sb, p.name)
	sb.WriteByte(':')
	p.value.Dump(sb)
}

// String renders the property as compact JSON text.
func (p Property) String() string {
	var sb strings.Builder
	p.Dump(&sb)
	return sb.String()
}
