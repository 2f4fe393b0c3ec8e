package convert

import (
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsondom/internal/model"
)

func TestTryGetBool(t *testing.T) {
	tests := []struct {
		name   string
		value  model.Value
		want   bool
		wantOK bool
	}{
		{"literal true", model.NewBool(true), true, true},
		{"literal false", model.NewBool(false), false, true},
		{"string true", model.NewString("true"), true, true},
		{"string false", model.NewString("false"), false, true},
		{"string one", model.NewString("1"), true, true},
		{"string zero", model.NewString("0"), false, true},
		{"number one", model.NewNumber("1"), true, true},
		{"number zero point zero", model.NewNumber("0.0"), false, true},
		{"nonzero double", model.NewNumber("-3.5"), true, true},
		{"empty string fails", model.NewString(""), false, false},
		{"unparsable fails", model.NewString("maybe"), false, false},
		{"null fails", model.Null(), false, false},
		{"undefined fails", model.Undefined(), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TryGetBool(tt.value, model.TypeAny)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoolShapes(t *testing.T) {
	p := AsBool(model.NewNumber("1"), model.TypeAny)
	require.NotNil(t, p)
	assert.True(t, *p)

	assert.Nil(t, AsBool(model.NewString("maybe"), model.TypeAny))
	assert.True(t, BoolOrDefault(model.NewString("maybe"), true, model.TypeAny))
	assert.Equal(t, "true", BoolToJSON(true).String())
}

func TestExpectedTypeGate(t *testing.T) {
	// A numeric string converts when anything is accepted but fails the
	// gate when a real number is demanded.
	s := model.NewString("5")
	_, ok := TryGetInt32(s, model.TypeAny)
	assert.True(t, ok)
	_, ok = TryGetInt32(s, model.TypeNumber)
	assert.False(t, ok)

	n := model.NewNumber("5")
	_, ok = TryGetInt32(n, model.TypeNumber)
	assert.True(t, ok)
}

func TestIntegerParsing(t *testing.T) {
	tests := []struct {
		name   string
		value  model.Value
		wantOK bool
		want   int64
	}{
		{"plain", model.NewNumber("123"), true, 123},
		{"negative", model.NewNumber("-45"), true, -45},
		{"leading plus", model.NewNumber("+7"), true, 7},
		{"padded string", model.NewString("  42  "), true, 42},
		{"float text fails", model.NewNumber("1.5"), false, 0},
		{"garbage fails", model.NewString("abc"), false, 0},
		{"null fails", model.Null(), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TryGetInt64(tt.value, model.TypeAny)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntegerWidthLimits(t *testing.T) {
	_, ok := TryGetInt8(model.NewNumber("128"), model.TypeAny)
	assert.False(t, ok)
	n, ok := TryGetInt8(model.NewNumber("127"), model.TypeAny)
	assert.True(t, ok)
	assert.Equal(t, int8(127), n)

	_, ok = TryGetUint16(model.NewNumber("-1"), model.TypeAny)
	assert.False(t, ok)
	u, ok := TryGetUint16(model.NewNumber("65535"), model.TypeAny)
	assert.True(t, ok)
	assert.Equal(t, uint16(65535), u)
}

func TestInt64StringRoundTrip(t *testing.T) {
	// Max int64 survives the string encoding untouched; a consumer that
	// squeezed it through a double would lose the low digits.
	v := Int64ToJSON(math.MaxInt64, true)
	assert.Equal(t, model.TypeString, v.Type())
	text, _ := v.Text()
	assert.Equal(t, "9223372036854775807", text)

	back, ok := TryGetInt64(v, model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), back)
}

func TestSmallIntegersEncodeAsNumbers(t *testing.T) {
	assert.Equal(t, model.TypeNumber, Int32ToJSON(-5).Type())
	assert.Equal(t, model.TypeNumber, Uint8ToJSON(255).Type())
	assert.Equal(t, "255", Uint8ToJSON(255).String())
	assert.Equal(t, model.TypeNumber, Int64ToJSON(5, false).Type())
}

func TestFloatParsing(t *testing.T) {
	f, ok := TryGetFloat64(model.NewNumber("2.5e2"), model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, 250.0, f)

	f32, ok := TryGetFloat32(model.NewString(" 1.25 "), model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, float32(1.25), f32)

	_, ok = TryGetFloat64(model.NewString("abc"), model.TypeAny)
	assert.False(t, ok)

	assert.Equal(t, 9.0, Float64OrDefault(model.Null(), 9.0, model.TypeAny))
}

func TestFloatToJSON(t *testing.T) {
	assert.Equal(t, "0.5", Float64ToJSON(0.5).String())
	assert.Equal(t, model.TypeNumber, Float64ToJSON(1e300).Type())

	// JSON has no literal for the non-finite values.
	inf := Float64ToJSON(math.Inf(1))
	assert.Equal(t, model.TypeString, inf.Type())
	nan := Float64ToJSON(math.NaN())
	assert.Equal(t, model.TypeString, nan.Type())
}

func TestBigInt(t *testing.T) {
	huge := "123456789012345678901234567890"
	n, ok := TryGetBigInt(model.NewString(huge), model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, huge, n.String())

	v := BigIntToJSON(n, true)
	assert.Equal(t, model.TypeString, v.Type())
	back, ok := TryGetBigInt(v, model.TypeAny)
	require.True(t, ok)
	assert.Zero(t, n.Cmp(back))

	_, ok = TryGetBigInt(model.NewString("12.5"), model.TypeAny)
	assert.False(t, ok)

	def := big.NewInt(7)
	assert.Same(t, def, BigIntOrDefault(model.Null(), def, model.TypeAny))
}

func TestDecimal(t *testing.T) {
	d, ok := TryGetDecimal(model.NewNumber("123.45"), model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, "123.45", d.String())

	v := DecimalToJSON(d, true)
	assert.Equal(t, model.TypeString, v.Type())
	back, ok := TryGetDecimal(v, model.TypeAny)
	require.True(t, ok)
	assert.True(t, d.Equal(back))

	_, ok = TryGetDecimal(model.NewString("not a number"), model.TypeAny)
	assert.False(t, ok)

	def := decimal.NewFromInt(3)
	assert.True(t, def.Equal(DecimalOrDefault(model.Undefined(), def, model.TypeAny)))
}

func TestTryGetString(t *testing.T) {
	s, ok := TryGetString(model.NewString("hi"), model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, "hi", s)

	// Any scalar's raw text passes the default gate.
	s, ok = TryGetString(model.NewNumber("42"), model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, "42", s)

	// Null ordinarily fails even when a string is expected.
	_, ok = TryGetString(model.Null(), model.TypeString)
	assert.False(t, ok)

	// Containers never convert.
	_, ok = TryGetString(model.NewArrayValue(model.NewArray()), model.TypeAny)
	assert.False(t, ok)
}

func TestTryGetStringOrNull(t *testing.T) {
	// The opt-in mode treats null as a valid (nil) string result.
	p, ok := TryGetStringOrNull(model.Null(), model.TypeString)
	require.True(t, ok)
	assert.Nil(t, p)

	p, ok = TryGetStringOrNull(model.NewString("x"), model.TypeString)
	require.True(t, ok)
	require.NotNil(t, p)
	assert.Equal(t, "x", *p)

	_, ok = TryGetStringOrNull(model.Null(), model.TypeNumber)
	assert.False(t, ok)
}

func TestStringToJSON(t *testing.T) {
	assert.Equal(t, `"hi"`, StringToJSON("hi").String())
	assert.True(t, StringPtrToJSON(nil).IsNull())
	s := "x"
	assert.Equal(t, `"x"`, StringPtrToJSON(&s).String())
}
