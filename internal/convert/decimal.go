package convert

import (
	"github.com/shopspring/decimal"

	"github.com/mcncl/jsondom/internal/model"
)

// TryGetDecimal interprets the value as an arbitrary-precision decimal.
func TryGetDecimal(v model.Value, expect model.Type) (decimal.Decimal, bool) {
	text, ok := trimmed(v, expect)
	if !ok || text == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// AsDecimal returns the value as a decimal, or nil when it cannot
// convert.
func AsDecimal(v model.Value, expect model.Type) *decimal.Decimal {
	if d, ok := TryGetDecimal(v, expect); ok {
		return &d
	}
	return nil
}

// DecimalOrDefault returns the value as a decimal, or def when it cannot
// convert.
func DecimalOrDefault(v model.Value, def decimal.Decimal, expect model.Type) decimal.Decimal {
	if d, ok := TryGetDecimal(v, expect); ok {
		return d
	}
	return def
}

// DecimalToJSON encodes a decimal, as a JSON string when asString is
// true. As with 64-bit integers, string encoding preserves digits that an
// IEEE-double consumer would round away.
func DecimalToJSON(d decimal.Decimal, asString bool) model.Value {
	text := d.String()
	if asString {
		return model.NewString(text)
	}
	return model.NewNumber(text)
}
