package decode

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/fmtscan/template"
)

func TestDecode_Int(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"plain", "3456", 3456},
		{"explicit plus", "+1234567890", 1234567890},
		{"negative", "-1234567890", -1234567890},
		{"leading zeros", "00001", 1},
		{"empty is zero", "", 0},
		{"lone minus is zero", "-", 0},
		{"lone plus is zero", "+", 0},
		{"negative zero", "-0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(Int, tt.input)
			require.NoError(t, err)
			assert.Equal(t, Int, v.Kind())
			assert.Equal(t, tt.want, v.Int())
		})
	}
}

func TestDecode_IntInvalid(t *testing.T) {
	inputs := []string{
		"-1234e67890",
		"--1234567890",
		"-1234567890+",
		"12 34",
		"0x10",
		"1.5",
		" 1",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Decode(Int, input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidNumber)

			var decErr *Error
			require.ErrorAs(t, err, &decErr)
			assert.Equal(t, input, decErr.Input)
			assert.Equal(t, Int, decErr.Kind)
		})
	}
}

func TestDecode_IntRanges(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		input   string
		want    any
		wantErr error
	}{
		{"uint8 small", Uint8, "3", uint8(3), nil},
		{"uint8 max", Uint8, "255", uint8(255), nil},
		{"uint8 overflow", Uint8, "256", nil, ErrOverflow},
		{"uint8 negative", Uint8, "-1", nil, ErrUnderflow},
		{"uint8 negative zero", Uint8, "-0", uint8(0), nil},
		{"int8 max", Int8, "127", int8(127), nil},
		{"int8 min", Int8, "-128", int8(-128), nil},
		{"int8 overflow", Int8, "128", nil, ErrOverflow},
		{"int8 underflow", Int8, "-129", nil, ErrUnderflow},
		{"int8 large overflow", Int8, "9876", nil, ErrOverflow},
		{"int16 max", Int16, "32767", int16(32767), nil},
		{"int16 overflow", Int16, "32768", nil, ErrOverflow},
		{"uint16 max", Uint16, "65535", uint16(65535), nil},
		{"uint16 overflow", Uint16, "65536", nil, ErrOverflow},
		{"int32 min", Int32, "-2147483648", int32(math.MinInt32), nil},
		{"int32 overflow", Int32, "2147483648", nil, ErrOverflow},
		{"uint32 max", Uint32, "4294967295", uint32(math.MaxUint32), nil},
		{"uint32 overflow", Uint32, "4294967296", nil, ErrOverflow},
		{"int64 max", Int64, "9223372036854775807", int64(math.MaxInt64), nil},
		{"int64 min", Int64, "-9223372036854775808", int64(math.MinInt64), nil},
		{"int64 overflow", Int64, "9223372036854775808", nil, ErrOverflow},
		{"int64 underflow", Int64, "-9223372036854775809", nil, ErrUnderflow},
		{"uint64 max", Uint64, "18446744073709551615", uint64(math.MaxUint64), nil},
		{"uint64 overflow", Uint64, "18446744073709551616", nil, ErrOverflow},
		{"accumulation overflow", Uint64, "99999999999999999999999", nil, ErrOverflow},
		{"accumulation underflow", Int64, "-99999999999999999999999", nil, ErrUnderflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(tt.kind, tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsRangeError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Interface())
		})
	}
}

func TestDecode_Float(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"exponent lower", "123e4", 123e4},
		{"exponent upper", "123E4", 123e4},
		{"plus with fraction and exponent", "+123.456e8", 123.456e8},
		{"negative fraction", "-123456.789", -123456.789},
		{"empty exponent", "-1234e", -1234.0},
		{"no integer part", "-.1234", -0.1234},
		{"negative exponent", "-1.234e-2", -1.234e-2},
		{"fraction leading zeros", "-1.00234e-2", -1.00234e-2},
		{"trailing f", "-1.0123e-3f", -1.0123e-3},
		{"composite value", "3.14159265e-1", 3.14159265e-1},
		{"plain integer", "42", 42},
		{"explicit plus exponent", "1.5e+2", 150},
		{"empty", "", 0},
		{"lone point", ".", 0},
		{"lone f", "f", 0},
		{"trailing point", "7.", 7},
		{"zero with huge exponent", "0e99999999999999999999", 0},
		{"plus before fraction", "1.+5", 1.5},
		{"plus before fraction and exponent", "-2.+25e1", -22.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(Float64, tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v.Float(), 1e-6)
		})
	}
}

func TestDecode_FloatInvalid(t *testing.T) {
	inputs := []string{
		"123..456",
		"-123ee10",
		"-123eE10",
		"-123f10",
		"-1234e5.67",
		"-1234.-67",
		"1.5ff",
		"--1.5",
		"1e2e3",
		"abc",
		"1,5",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Decode(Float64, input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidNumber)
		})
	}
}

func TestDecode_FloatRange(t *testing.T) {
	_, err := Decode(Float64, "1e400")
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Decode(Float64, "1e-400")
	assert.ErrorIs(t, err, ErrUnderflow)

	_, err = Decode(Float32, "1e39")
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Decode(Float32, "3.5e38")
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Decode(Float32, "1e-50")
	assert.ErrorIs(t, err, ErrUnderflow)

	_, err = Decode(Float64, "1e99999999999999999999")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecode_Float32Narrows(t *testing.T) {
	v, err := Decode(Float32, "2.718281828")
	require.NoError(t, err)

	f, ok := v.Interface().(float32)
	require.True(t, ok, "expected float32, got %T", v.Interface())
	assert.Equal(t, float32(2.718281828), f)
}

func TestDecode_Float32Max(t *testing.T) {
	inputs := []string{
		"3.4028235e38",
		"-3.4028235e38",
		strconv.FormatFloat(math.MaxFloat32, 'g', -1, 32),
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v, err := Decode(Float32, input)
			require.NoError(t, err)
			assert.Equal(t, float32(math.MaxFloat32), float32(math.Abs(v.Float())))
		})
	}
}

func TestDecode_FloatMinusFraction(t *testing.T) {
	for _, input := range []string{"1.-5", "-1234.-67", "1.-5e2"} {
		_, err := Decode(Float64, input)
		assert.ErrorIs(t, err, ErrInvalidNumber, input)
	}
}

func TestDecode_Text(t *testing.T) {
	inputs := []string{"", "MYSTERY WORD", "123", "{%d}", "ünïcødé"}

	for _, input := range inputs {
		v, err := Decode(String, input)
		require.NoError(t, err)
		assert.Equal(t, input, v.String())
		assert.Equal(t, input, v.Interface())
	}
}

func TestDecode_UnsupportedKind(t *testing.T) {
	_, err := Decode(Invalid, "1")
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = Decode(Kind(200), "1")
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestDecode_Idempotent(t *testing.T) {
	for _, k := range []Kind{Int, Uint16, Float64, String} {
		a, errA := Decode(k, "123")
		b, errB := Decode(k, "123")
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b)
	}
}

func TestParseHelpers(t *testing.T) {
	i, err := ParseInt("-42", 8)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), i)

	_, err = ParseInt("300", 8)
	var decErr *Error
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, Int8, decErr.Kind)

	u, err := ParseUint("65535", 16)
	require.NoError(t, err)
	assert.Equal(t, uint64(65535), u)

	_, err = ParseUint("1", 0)
	require.NoError(t, err)

	f, err := ParseFloat("1.5e1f", 32)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, f, 1e-6)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		spec    template.Specifier
		kind    Kind
		wantErr bool
	}{
		{template.NoSpecifier, String, false},
		{template.NoSpecifier, Int8, false},
		{template.NoSpecifier, Float32, false},
		{template.SpecSigned, Int, false},
		{template.SpecSigned, Int64, false},
		{template.SpecSigned, Uint, true},
		{template.SpecSigned, String, true},
		{template.SpecUnsigned, Uint8, false},
		{template.SpecUnsigned, Int, true},
		{template.SpecText, String, false},
		{template.SpecText, Int, true},
		{template.SpecFloat, Float32, false},
		{template.SpecFloat, Float64, false},
		{template.SpecFloat, Int, true},
		{template.Specifier('x'), Int, true},
	}

	for _, tt := range tests {
		t.Run(tt.spec.String()+"/"+tt.kind.String(), func(t *testing.T) {
			err := Check(tt.spec, tt.kind)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTypeMismatch)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheck_MessageNamesCategories(t *testing.T) {
	err := Check(template.SpecSigned, String)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signed integer")
	assert.Contains(t, err.Error(), "%u for unsigned integers")
}

func TestKindFor(t *testing.T) {
	assert.Equal(t, Int, KindFor(template.SpecSigned))
	assert.Equal(t, Uint, KindFor(template.SpecUnsigned))
	assert.Equal(t, Float64, KindFor(template.SpecFloat))
	assert.Equal(t, String, KindFor(template.SpecText))
	assert.Equal(t, String, KindFor(template.NoSpecifier))
}

func TestValue_WrongAccessorPanics(t *testing.T) {
	v, err := Decode(String, "x")
	require.NoError(t, err)

	assert.Panics(t, func() { v.Int() })
	assert.Panics(t, func() { v.Uint() })
	assert.Panics(t, func() { v.Float() })
	assert.Equal(t, "<invalid>", Value{}.String())
	assert.False(t, Value{}.IsValid())
	assert.Nil(t, Value{}.Interface())
}

func TestAssign(t *testing.T) {
	var (
		i8  int8
		u   uint
		f32 float32
		s   string
	)

	cases := []struct {
		dst  any
		kind Kind
		in   string
	}{
		{&i8, Int8, "-7"},
		{&u, Uint, "9"},
		{&f32, Float32, "1.5"},
		{&s, String, "hi"},
	}
	for _, c := range cases {
		v, err := Decode(c.kind, c.in)
		require.NoError(t, err)
		require.NoError(t, Assign(c.dst, v))
	}

	assert.Equal(t, int8(-7), i8)
	assert.Equal(t, uint(9), u)
	assert.Equal(t, float32(1.5), f32)
	assert.Equal(t, "hi", s)

	v, err := Decode(Int, "1")
	require.NoError(t, err)

	var wrong string
	assert.ErrorIs(t, Assign(&wrong, v), ErrUnsupportedKind)

	var nilPtr *int
	assert.ErrorIs(t, Assign(nilPtr, v), ErrUnsupportedKind)

	assert.ErrorIs(t, Assign(3, v), ErrUnsupportedKind)
	assert.True(t, errors.Is(Assign(nil, v), ErrUnsupportedKind))
}
