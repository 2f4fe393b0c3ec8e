package convert

import (
	"strconv"

	"github.com/mcncl/jsondom/internal/model"
)

// TryGetBool interprets the value as a boolean. The canonical "true" and
// "false" literals and the digits "1" and "0" convert directly; an empty
// string is unconvertible; any other text is parsed as a float64 with
// zero meaning false and nonzero meaning true. A JSON number can
// therefore be read as a boolean.
func TryGetBool(v model.Value, expect model.Type) (bool, bool) {
	text, ok := scalarText(v, expect)
	if !ok {
		return false, false
	}
	switch text {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	case "":
		return false, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return false, false
	}
	return f != 0, true
}

// AsBool returns the value as a boolean, or nil when it cannot convert.
func AsBool(v model.Value, expect model.Type) *bool {
	if b, ok := TryGetBool(v, expect); ok {
		return &b
	}
	return nil
}

// BoolOrDefault returns the value as a boolean, or def when it cannot
// convert.
func BoolOrDefault(v model.Value, def bool, expect model.Type) bool {
	if b, ok := TryGetBool(v, expect); ok {
		return b
	}
	return def
}

// BoolToJSON encodes a boolean.
func BoolToJSON(b bool) model.Value {
	return model.NewBool(b)
}
