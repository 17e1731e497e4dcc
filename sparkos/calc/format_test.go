package calc

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{5, "5"},
		{2.5, "2.5"},
		{-42, "-42"},
		{0.1 + 0.2, "0.3"},
		{1.0 / 3, "0.333333333333"},
		{999999999999, "999999999999"},
		{1e12, "1.00000000e+12"},
		{-1.5e13, "-1.50000000e+13"},
		{9.99e-7, "9.99000000e-7"},
		{1e-6, "0.000001"},
		{math.NaN(), ErrorText},
		{math.Inf(1), ErrorText},
		{math.Inf(-1), ErrorText},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatResult(tc.in), "FormatResult(%v)", tc.in)
	}
}

func TestFormatUnit(t *testing.T) {
	assert.Equal(t, "1.5 km", FormatUnit(1.5, "km"))
	assert.Equal(t, "0.333333", FormatUnit(1.0/3, ""))
	assert.Equal(t, "2.204623 lb", FormatUnit(2.20462262, "lb"))
	assert.Equal(t, UnitPlaceholder, FormatUnit(math.Inf(1), "m"))
	assert.Equal(t, UnitPlaceholder, FormatUnit(math.NaN(), ""))
}

func TestLocalize(t *testing.T) {
	assert.Equal(t, "2,5", Localize("2.5", DefaultLocale))
	assert.Equal(t, "0,", Localize("0.", DefaultLocale))
	assert.Equal(t, "42", Localize("42", DefaultLocale))
	assert.Equal(t, "2.5", Localize("2.5", Locale{DecimalSep: "."}))
	assert.Equal(t, "Erro", Localize(ErrorText, Locale{DecimalSep: ",", ErrorText: "Erro"}))
	assert.Equal(t, ErrorText, Localize(ErrorText, Locale{}))
	assert.Equal(t, "1,5 + 2,25", LocalizeExpr("1.5 + 2.25", DefaultLocale))
}

func TestFormatResultParsesBack(t *testing.T) {
	values := []float64{1e-6, -1e-6, 0.000123456789, 0.1 + 0.2, 1.0 / 3, -2.0 / 3, 3.14159265358979,
		42, -1234.5678, 999999999999, 999999999999.5, -999999999999}
	for v := 1e-6; v < 1e12; v *= 7.3 {
		values = append(values, v, -v*1.01)
	}
	for _, v := range values {
		s := FormatResult(v)
		got, err := strconv.ParseFloat(s, 64)
		if !assert.NoError(t, err, "FormatResult(%v) = %q", v, s) {
			continue
		}
		want, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 12, 64), 64)
		assert.Equal(t, want, got, "FormatResult(%v) = %q", v, s)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, v := range []float64{0.1, 123.456, -42, 0.001, 1.5e13, -2.5e-9, 7} {
		s := FormatResult(v)
		got, err := Eval(s, Degrees)
		if assert.NoError(t, err, s) {
			assert.Equal(t, s, FormatResult(got), "round trip of %v", v)
		}
	}
}
