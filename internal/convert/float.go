package convert

import (
	"math"
	"strconv"

	"github.com/mcncl/jsondom/internal/model"
)

// TryGetFloat64 interprets the value as a float64 using invariant
// floating-point rules (optional sign, decimal point, exponent).
func TryGetFloat64(v model.Value, expect model.Type) (float64, bool) {
	text, ok := trimmed(v, expect)
	if !ok || text == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// TryGetFloat32 interprets the value as a float32. 16-bit floats have no
// Go representation; callers of the source's Half accessors use this
// family.
func TryGetFloat32(v model.Value, expect model.Type) (float32, bool) {
	text, ok := trimmed(v, expect)
	if !ok || text == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// AsFloat64 returns the value as a float64, or nil when it cannot
// convert.
func AsFloat64(v model.Value, expect model.Type) *float64 {
	if f, ok := TryGetFloat64(v, expect); ok {
		return &f
	}
	return nil
}

// AsFloat32 returns the value as a float32, or nil when it cannot
// convert.
func AsFloat32(v model.Value, expect model.Type) *float32 {
	if f, ok := TryGetFloat32(v, expect); ok {
		return &f
	}
	return nil
}

// Float64OrDefault returns the value as a float64, or def when it cannot
// convert.
func Float64OrDefault(v model.Value, def float64, expect model.Type) float64 {
	if f, ok := TryGetFloat64(v, expect); ok {
		return f
	}
	return def
}

// Float32OrDefault returns the value as a float32, or def when it cannot
// convert.
func Float32OrDefault(v model.Value, def float32, expect model.Type) float32 {
	if f, ok := TryGetFloat32(v, expect); ok {
		return f
	}
	return def
}

// Float64ToJSON encodes a float64 with the shortest text that parses back
// to the same value. JSON has no literals for NaN or the infinities, so
// non-finite values encode as strings.
func Float64ToJSON(f float64) model.Value {
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return model.NewString(text)
	}
	return model.NewNumber(text)
}

// Float32ToJSON encodes a float32 with the same rules as Float64ToJSON.
func Float32ToJSON(f float32) model.Value {
	text := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return model.NewString(text)
	}
	return model.NewNumber(text)
}
