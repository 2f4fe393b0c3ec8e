package convert

import (
	"math/big"

	"github.com/mcncl/jsondom/internal/model"
)

// TryGetBigInt interprets the value as an arbitrary-precision integer.
// This family also serves 128-bit callers, which Go has no native type
// for. Only plain base-10 text is accepted.
func TryGetBigInt(v model.Value, expect model.Type) (*big.Int, bool) {
	text, ok := trimmed(v, expect)
	if !ok || text == "" {
		return nil, false
	}
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, false
	}
	return n, true
}

// BigIntOrDefault returns the value as a big integer, or def when it
// cannot convert.
func BigIntOrDefault(v model.Value, def *big.Int, expect model.Type) *big.Int {
	if n, ok := TryGetBigInt(v, expect); ok {
		return n
	}
	return def
}

// BigIntToJSON encodes a big integer, as a JSON string when asString is
// true. String encoding is the safe choice: consumers reading JSON
// numbers through an IEEE double lose precision past 2^53.
func BigIntToJSON(n *big.Int, asString bool) model.Value {
	text := n.String()
	if asString {
		return model.NewString(text)
	}
	return model.NewNumber(text)
}
