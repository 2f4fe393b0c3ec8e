// Package convert maps between JSON values and native Go types.
//
// Every accessor family comes in up to four shapes: TryGetX returns the
// parsed result and a success flag, AsX returns a pointer that is nil on
// failure, XOrDefault substitutes a caller-supplied default, and XToJSON
// encodes a native value back into the model. Conversion failures (type
// mismatch, unparsable text) are always soft: false, nil or the default,
// never a panic or an error. Passing an out-of-range format or kind
// enumeration value is a programmer error and panics immediately.
//
// All conversions are culture-invariant; none consult the locale.
package convert

import (
	"strings"

	"github.com/mcncl/jsondom/internal/model"
)

// typeMatches applies the expected-type gate: model.TypeAny accepts every
// value, anything else must match the value's tag exactly.
func typeMatches(v model.Value, expect model.Type) bool {
	return expect == model.TypeAny || v.Type() == expect
}

// scalarText applies the expected-type gate and returns the raw backing
// text. Containers, null and undefined values have no backing text and
// fail here, before any parsing is attempted.
func scalarText(v model.Value, expect model.Type) (string, bool) {
	if !typeMatches(v, expect) {
		return "", false
	}
	return v.Text()
}

// trimmed is scalarText with surrounding ASCII whitespace removed, the
// way invariant numeric parsing treats its input.
func trimmed(v model.Value, expect model.Type) (string, bool) {
	text, ok := scalarText(v, expect)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(text), true
}
