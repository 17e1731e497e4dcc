package calc

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Placeholder is the buffer value shown when no operand has been typed.
	Placeholder = "0"
	// ErrorText is the buffer sentinel after a failed evaluation.
	ErrorText = "Error"
	// UnitPlaceholder is returned by FormatUnit for non-finite input.
	UnitPlaceholder = "—"
)

const (
	resultDecimals = 12
	expDigits      = 8
	unitDecimals   = 6
	sciUpper       = 1e12
	sciLower       = 1e-6
)

// FormatResult renders a calculator result. Magnitudes >= 1e12 or below 1e-6 (but nonzero) use
// scientific notation with 8 fractional digits; everything else is rounded to 12 decimals with
// trailing zeros removed.
func FormatResult(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorText
	}
	a := math.Abs(v)
	if a >= sciUpper || (a > 0 && a < sciLower) {
		return formatExp(v, expDigits)
	}
	return trimFixed(strconv.FormatFloat(v, 'f', resultDecimals, 64))
}

// FormatUnit renders a converted quantity rounded to 6 decimals, followed by the unit label
// when one is given.
func FormatUnit(v float64, unit string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return UnitPlaceholder
	}
	out := trimFixed(strconv.FormatFloat(v, 'f', unitDecimals, 64))
	if unit != "" {
		return out + " " + unit
	}
	return out
}

func trimFixed(s string) string {
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// formatExp formats like d.dddddddde+N: the exponent carries a sign but no zero padding.
func formatExp(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'e', digits, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mant, sign, exp := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + string(sign) + exp
}

// Locale controls how engine text is shown on screen.
type Locale struct {
	DecimalSep string
	ErrorText  string
}

// DefaultLocale shows a decimal comma.
var DefaultLocale = Locale{DecimalSep: ",", ErrorText: ErrorText}

// Localize applies loc to engine text at render time. Only the first decimal point is replaced,
// so engine values are never altered by rendering.
func Localize(s string, loc Locale) string {
	if s == ErrorText {
		if loc.ErrorText != "" {
			return loc.ErrorText
		}
		return s
	}
	if loc.DecimalSep == "" || loc.DecimalSep == "." {
		return s
	}
	return strings.Replace(s, ".", loc.DecimalSep, 1)
}

// LocalizeExpr is Localize for expression lines, which may hold several numbers.
func LocalizeExpr(s string, loc Locale) string {
	if loc.DecimalSep == "" || loc.DecimalSep == "." {
		return s
	}
	return strings.ReplaceAll(s, ".", loc.DecimalSep)
}
