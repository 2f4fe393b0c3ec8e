package convert

import "github.com/mcncl/jsondom/internal/model"

// TryGetString returns the value's raw backing text. Any scalar passes
// (subject to the expected-type gate); containers, null and undefined
// fail. Note that a null value fails even when expect is TypeString; use
// TryGetStringOrNull to opt in to null as a valid result.
func TryGetString(v model.Value, expect model.Type) (string, bool) {
	return scalarText(v, expect)
}

// TryGetStringOrNull is TryGetString with the "allow null when a string
// is expected" mode: a null value succeeds with a nil pointer instead of
// failing the gate.
func TryGetStringOrNull(v model.Value, expect model.Type) (*string, bool) {
	if v.IsNull() && (expect == model.TypeAny || expect == model.TypeString) {
		return nil, true
	}
	s, ok := scalarText(v, expect)
	if !ok {
		return nil, false
	}
	return &s, true
}

// AsString returns the value's text, or nil when it cannot convert.
func AsString(v model.Value, expect model.Type) *string {
	if s, ok := TryGetString(v, expect); ok {
		return &s
	}
	return nil
}

// StringOrDefault returns the value's text, or def when it cannot
// convert.
func StringOrDefault(v model.Value, def string, expect model.Type) string {
	if s, ok := TryGetString(v, expect); ok {
		return s
	}
	return def
}

// StringToJSON encodes a string.
func StringToJSON(s string) model.Value {
	return model.NewString(s)
}

// StringPtrToJSON encodes a string pointer; nil encodes as JSON null,
// never as an empty string.
func StringPtrToJSON(p *string) model.Value {
	return model.NewStringPtr(p)
}
