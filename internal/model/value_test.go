package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueZeroIsUndefined(t *testing.T) {
	var v Value
	assert.Equal(t, TypeUndefined, v.Type())
	assert.True(t, v.IsUndefined())
	assert.False(t, v.IsNull())
}

func TestValueConstructors(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		wantType Type
		wantText string
		wantOK   bool
	}{
		{"undefined", Undefined(), TypeUndefined, "", false},
		{"null", Null(), TypeNull, "", false},
		{"bool true", NewBool(true), TypeBoolean, "true", true},
		{"bool false", NewBool(false), TypeBoolean, "false", true},
		{"number", NewNumber("12.5e3"), TypeNumber, "12.5e3", true},
		{"string", NewString("hello"), TypeString, "hello", true},
		{"empty string", NewString(""), TypeString, "", true},
		{"unknown literal", NewUnknownLiteral("wat"), TypeUnknownLiteral, "wat", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.value.Type())
			text, ok := tt.value.Text()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestNewStringPtr(t *testing.T) {
	s := "abc"
	v := NewStringPtr(&s)
	assert.Equal(t, TypeString, v.Type())

	// A nil string maps to JSON null, not to an empty string.
	n := NewStringPtr(nil)
	assert.Equal(t, TypeNull, n.Type())
	assert.True(t, n.IsNull())
}

func TestContainerAccessors(t *testing.T) {
	arr := NewArray(NewNumber("1"))
	obj := NewObject(NewProperty("a", NewBool(true)))

	av := NewArrayValue(arr)
	ov := NewObjectValue(obj)

	assert.Same(t, arr, av.Array())
	assert.Same(t, obj, ov.Object())
	assert.Nil(t, av.Object())
	assert.Nil(t, ov.Array())
	assert.Nil(t, NewString("x").Array())
}

func TestValueSharesContainerReference(t *testing.T) {
	arr := NewArray()
	v1 := NewArrayValue(arr)
	v2 := v1 // copying the value copies the reference

	v1.Array().Append(NewNumber("1"))
	assert.Equal(t, 1, v2.Array().Len())
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal numbers", NewNumber("42"), NewNumber("42"), true},
		{"different number text", NewNumber("42"), NewNumber("42.0"), false},
		{"number vs string", NewNumber("42"), NewString("42"), false},
		{"nulls", Null(), Null(), true},
		{"undefineds", Undefined(), Undefined(), true},
		{"null vs undefined", Null(), Undefined(), false},
		{"strings", NewString("a"), NewString("a"), true},
		{"bools", NewBool(true), NewBool(true), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestValueEqualContainers(t *testing.T) {
	a := NewArray(NewNumber("1"), NewString("x"))
	sameRef := NewArrayValue(a)
	assert.True(t, sameRef.Equal(NewArrayValue(a)))

	// Distinct containers compare structurally.
	b := NewArray(NewNumber("1"), NewString("x"))
	assert.True(t, NewArrayValue(a).Equal(NewArrayValue(b)))

	b.Append(Null())
	assert.False(t, NewArrayValue(a).Equal(NewArrayValue(b)))

	o1 := NewObject(NewProperty("k", NewNumber("1")))
	o2 := NewObject(NewProperty("k", NewNumber("1")))
	assert.True(t, NewObjectValue(o1).Equal(NewObjectValue(o2)))
}

func TestValueHash(t *testing.T) {
	assert.Equal(t, NewNumber("42").Hash(), NewNumber("42").Hash())
	assert.NotEqual(t, NewNumber("42").Hash(), NewString("42").Hash())

	// Containers hash by tag only, so structurally different arrays
	// share a hash.
	a := NewArrayValue(NewArray(NewNumber("1")))
	b := NewArrayValue(NewArray(NewNumber("2")))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestValueDump(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"undefined renders empty", Undefined(), ""},
		{"null", Null(), "null"},
		{"true", NewBool(true), "true"},
		{"number verbatim", NewNumber("1.2300e+5"), "1.2300e+5"},
		{"plain string", NewString("abc"), `"abc"`},
		{"escaped string", NewString("a\"b\\c\nd\te\rf\bg\fh"), `"a\"b\\c\nd\te\rf\bg\fh"`},
		{"non-ascii passes through", NewString("héllo→"), `"héllo→"`},
		{"slash not escaped", NewString("a/b"), `"a/b"`},
		{"unknown literal verbatim", NewUnknownLiteral("wat"), "wat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestNewRaw(t *testing.T) {
	v := NewRaw(TypeNumber, "99")
	assert.Equal(t, TypeNumber, v.Type())
	text, ok := v.Text()
	assert.True(t, ok)
	assert.Equal(t, "99", text)

	assert.True(t, NewRaw(TypeNull, "").IsNull())
	assert.True(t, NewRaw(TypeUndefined, "").IsUndefined())

	assert.Panics(t, func() { NewRaw(TypeArray, "") })
}
