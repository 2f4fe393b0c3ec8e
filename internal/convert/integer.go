package convert

import (
	"strconv"

	"github.com/mcncl/jsondom/internal/model"
)

// The integer accessors parse the raw backing text with invariant base-10
// rules (optional sign, digits, surrounding whitespace). The expected-type
// gate is applied before the parse, so a caller can insist the JSON value
// was really a number and not, say, a numeric string.

func tryParseSigned(v model.Value, expect model.Type, bits int) (int64, bool) {
	text, ok := trimmed(v, expect)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(text, 10, bits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func tryParseUnsigned(v model.Value, expect model.Type, bits int) (uint64, bool) {
	text, ok := trimmed(v, expect)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(text, 10, bits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// TryGetInt8 interprets the value as an int8.
func TryGetInt8(v model.Value, expect model.Type) (int8, bool) {
	n, ok := tryParseSigned(v, expect, 8)
	return int8(n), ok
}

// TryGetInt16 interprets the value as an int16.
func TryGetInt16(v model.Value, expect model.Type) (int16, bool) {
	n, ok := tryParseSigned(v, expect, 16)
	return int16(n), ok
}

// TryGetInt32 interprets the value as an int32.
func TryGetInt32(v model.Value, expect model.Type) (int32, bool) {
	n, ok := tryParseSigned(v, expect, 32)
	return int32(n), ok
}

// TryGetInt64 interprets the value as an int64.
func TryGetInt64(v model.Value, expect model.Type) (int64, bool) {
	return tryParseSigned(v, expect, 64)
}

// TryGetInt interprets the value as a platform int.
func TryGetInt(v model.Value, expect model.Type) (int, bool) {
	n, ok := tryParseSigned(v, expect, strconv.IntSize)
	return int(n), ok
}

// TryGetUint8 interprets the value as a uint8.
func TryGetUint8(v model.Value, expect model.Type) (uint8, bool) {
	n, ok := tryParseUnsigned(v, expect, 8)
	return uint8(n), ok
}

// TryGetUint16 interprets the value as a uint16.
func TryGetUint16(v model.Value, expect model.Type) (uint16, bool) {
	n, ok := tryParseUnsigned(v, expect, 16)
	return uint16(n), ok
}

// TryGetUint32 interprets the value as a uint32.
func TryGetUint32(v model.Value, expect model.Type) (uint32, bool) {
	n, ok := tryParseUnsigned(v, expect, 32)
	return uint32(n), ok
}

// TryGetUint64 interprets the value as a uint64.
func TryGetUint64(v model.Value, expect model.Type) (uint64, bool) {
	return tryParseUnsigned(v, expect, 64)
}

// TryGetUint interprets the value as a platform uint.
func TryGetUint(v model.Value, expect model.Type) (uint, bool) {
	n, ok := tryParseUnsigned(v, expect, strconv.IntSize)
	return uint(n), ok
}

// AsInt8 returns the value as an int8, or nil when it cannot convert.
func AsInt8(v model.Value, expect model.Type) *int8 {
	if n, ok := TryGetInt8(v, expect); ok {
		return &n
	}
	return nil
}

// AsInt16 returns the value as an int16, or nil when it cannot convert.
func AsInt16(v model.Value, expect model.Type) *int16 {
	if n, ok := TryGetInt16(v, expect); ok {
		return &n
	}
	return nil
}

// AsInt32 returns the value as an int32, or nil when it cannot convert.
func AsInt32(v model.Value, expect model.Type) *int32 {
	if n, ok := TryGetInt32(v, expect); ok {
		return &n
	}
	return nil
}

// AsInt64 returns the value as an int64, or nil when it cannot convert.
func AsInt64(v model.Value, expect model.Type) *int64 {
	if n, ok := TryGetInt64(v, expect); ok {
		return &n
	}
	return nil
}

// AsInt returns the value as a platform int, or nil when it cannot
// convert.
func AsInt(v model.Value, expect model.Type) *int {
	if n, ok := TryGetInt(v, expect); ok {
		return &n
	}
	return nil
}

// AsUint8 returns the value as a uint8, or nil when it cannot convert.
func AsUint8(v model.Value, expect model.Type) *uint8 {
	if n, ok := TryGetUint8(v, expect); ok {
		return &n
	}
	return nil
}

// AsUint16 returns the value as a uint16, or nil when it cannot convert.
func AsUint16(v model.Value, expect model.Type) *uint16 {
	if n, ok := TryGetUint16(v, expect); ok {
		return &n
	}
	return nil
}

// AsUint32 returns the value as a uint32, or nil when it cannot convert.
func AsUint32(v model.Value, expect model.Type) *uint32 {
	if n, ok := TryGetUint32(v, expect); ok {
		return &n
	}
	return nil
}

// AsUint64 returns the value as a uint64, or nil when it cannot convert.
func AsUint64(v model.Value, expect model.Type) *uint64 {
	if n, ok := TryGetUint64(v, expect); ok {
		return &n
	}
	return nil
}

// AsUint returns the value as a platform uint, or nil when it cannot
// convert.
func AsUint(v model.Value, expect model.Type) *uint {
	if n, ok := TryGetUint(v, expect); ok {
		return &n
	}
	return nil
}

// Int8OrDefault returns the value as an int8, or def when it cannot
// convert.
func Int8OrDefault(v model.Value, def int8, expect model.Type) int8 {
	if n, ok := TryGetInt8(v, expect); ok {
		return n
	}
	return def
}

// Int16OrDefault returns the value as an int16, or def when it cannot
// convert.
func Int16OrDefault(v model.Value, def int16, expect model.Type) int16 {
	if n, ok := TryGetInt16(v, expect); ok {
		return n
	}
	return def
}

// Int32OrDefault returns the value as an int32, or def when it cannot
// convert.
func Int32OrDefault(v model.Value, def int32, expect model.Type) int32 {
	if n, ok := TryGetInt32(v, expect); ok {
		return n
	}
	return def
}

// Int64OrDefault returns the value as an int64, or def when it cannot
// convert.
func Int64OrDefault(v model.Value, def int64, expect model.Type) int64 {
	if n, ok := TryGetInt64(v, expect); ok {
		return n
	}
	return def
}

// IntOrDefault returns the value as a platform int, or def when it
// cannot convert.
func IntOrDefault(v model.Value, def int, expect model.Type) int {
	if n, ok := TryGetInt(v, expect); ok {
		return n
	}
	return def
}

// Uint8OrDefault returns the value as a uint8, or def when it cannot
// convert.
func Uint8OrDefault(v model.Value, def uint8, expect model.Type) uint8 {
	if n, ok := TryGetUint8(v, expect); ok {
		return n
	}
	return def
}

// Uint16OrDefault returns the value as a uint16, or def when it cannot
// convert.
func Uint16OrDefault(v model.Value, def uint16, expect model.Type) uint16 {
	if n, ok := TryGetUint16(v, expect); ok {
		return n
	}
	return def
}

// Uint32OrDefault returns the value as a uint32, or def when it cannot
// convert.
func Uint32OrDefault(v model.Value, def uint32, expect model.Type) uint32 {
	if n, ok := TryGetUint32(v, expect); ok {
		return n
	}
	return def
}

// Uint64OrDefault returns the value as a uint64, or def when it cannot
// convert.
func Uint64OrDefault(v model.Value, def uint64, expect model.Type) uint64 {
	if n, ok := TryGetUint64(v, expect); ok {
		return n
	}
	return def
}

// UintOrDefault returns the value as a platform uint, or def when it
// cannot convert.
func UintOrDefault(v model.Value, def uint, expect model.Type) uint {
	if n, ok := TryGetUint(v, expect); ok {
		return n
	}
	return def
}

// Int8ToJSON encodes an int8 as a JSON number.
func Int8ToJSON(n int8) model.Value {
	return model.NewNumber(strconv.FormatInt(int64(n), 10))
}

// Int16ToJSON encodes an int16 as a JSON number.
func Int16ToJSON(n int16) model.Value {
	return model.NewNumber(strconv.FormatInt(int64(n), 10))
}

// Int32ToJSON encodes an int32 as a JSON number.
func Int32ToJSON(n int32) model.Value {
	return model.NewNumber(strconv.FormatInt(int64(n), 10))
}

// Int64ToJSON encodes an int64. With asString true the value becomes a
// JSON string, which preserves full precision for consumers that read
// every JSON number as an IEEE double; pass false only when the consumer
// is known to handle 64-bit numbers.
func Int64ToJSON(n int64, asString bool) model.Value {
	text := strconv.FormatInt(n, 10)
	if asString {
		return model.NewString(text)
	}
	return model.NewNumber(text)
}

// IntToJSON encodes a platform int with the same string-by-request rule
// as Int64ToJSON.
func IntToJSON(n int, asString bool) model.Value {
	return Int64ToJSON(int64(n), asString)
}

// Uint8ToJSON encodes a uint8 as a JSON number.
func Uint8ToJSON(n uint8) model.Value {
	return model.NewNumber(strconv.FormatUint(uint64(n), 10))
}

// Uint16ToJSON encodes a uint16 as a JSON number.
func Uint16ToJSON(n uint16) model.Value {
	return model.NewNumber(strconv.FormatUint(uint64(n), 10))
}

// Uint32ToJSON encodes a uint32 as a JSON number.
func Uint32ToJSON(n uint32) model.Value {
	return model.NewNumber(strconv.FormatUint(uint64(n), 10))
}

// Uint64ToJSON encodes a uint64 with the same string-by-request rule as
// Int64ToJSON.
func Uint64ToJSON(n uint64, asString bool) model.Value {
	text := strconv.FormatUint(n, 10)
	if asString {
		return model.NewString(text)
	}
	return model.NewNumber(text)
}

// UintToJSON encodes a platform uint with the same string-by-request
// rule as Int64ToJSON.
func UintToJSON(n uint, asString bool) model.Value {
	return Uint64ToJSON(uint64(n), asString)
}
