package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnit is returned by Convert for unknown units or units of different quantities.
var ErrUnit = errors.New("unit")

// unitFactors maps each linear unit to its size in the base unit of its quantity.
var unitFactors = map[string]struct {
	quantity string
	factor   float64
}{
	"m":  {"length", 1},
	"km": {"length", 1000},
	"cm": {"length", 0.01},
	"mm": {"length", 0.001},
	"in": {"length", 0.0254},
	"ft": {"length", 0.3048},
	"kg": {"mass", 1},
	"g":  {"mass", 0.001},
	"lb": {"mass", 0.45359237},
	"oz": {"mass", 0.0283495231},
}

func isTempUnit(u string) bool { return u == "C" || u == "F" || u == "K" }

// canonicalUnit lowercases linear units and uppercases temperature scales, so "KM" and "c"
// both resolve.
func canonicalUnit(u string) string {
	if up := strings.ToUpper(u); isTempUnit(up) {
		return up
	}
	return strings.ToLower(u)
}

// Convert converts v between two units of the same quantity. Length and mass scale through
// their base unit (m, kg); temperatures go through Celsius.
func Convert(v float64, from, to string) (float64, error) {
	from, to = canonicalUnit(from), canonicalUnit(to)
	if isTempUnit(from) || isTempUnit(to) {
		if !isTempUnit(from) || !isTempUnit(to) {
			return 0, fmt.Errorf("%w: cannot convert %s to %s", ErrUnit, from, to)
		}
		return fromCelsius(toCelsius(v, from), to), nil
	}
	f, ok := unitFactors[from]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrUnit, from)
	}
	t, ok := unitFactors[to]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrUnit, to)
	}
	if f.quantity != t.quantity {
		return 0, fmt.Errorf("%w: cannot convert %s to %s", ErrUnit, from, to)
	}
	return v * f.factor / t.factor, nil
}

func toCelsius(v float64, from string) float64 {
	switch from {
	case "F":
		return (v - 32) * 5 / 9
	case "K":
		return v - 273.15
	}
	return v
}

func fromCelsius(c float64, to string) float64 {
	switch to {
	case "F":
		return c*9/5 + 32
	case "K":
		return c + 273.15
	}
	return c
}

// SimpleInterest returns the amount and interest of principal p at ratePct percent per period
// over n periods: A = P(1 + i·n).
func SimpleInterest(p, ratePct, n float64) (amount, interest float64) {
	amount = p * (1 + ratePct/100*n)
	return amount, amount - p
}

// CompoundInterest is SimpleInterest with per-period compounding: A = P(1 + i)^n.
func CompoundInterest(p, ratePct, n float64) (amount, interest float64) {
	amount = p * math.Pow(1+ratePct/100, n)
	return amount, amount - p
}

// Payment returns the fixed installment that repays pv over n periods at ratePct percent
// per period. A zero rate is rejected, as is any input giving a non-finite installment.
func Payment(pv, ratePct, n float64) (float64, error) {
	i := ratePct / 100
	if i == 0 {
		return 0, fmt.Errorf("%w: zero interest rate", ErrDomain)
	}
	g := math.Pow(1+i, n)
	pmt := pv * i * g / (g - 1)
	if math.IsNaN(pmt) || math.IsInf(pmt, 0) {
		return 0, ErrNonFinite
	}
	return pmt, nil
}
