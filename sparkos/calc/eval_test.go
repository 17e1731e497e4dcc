package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/Knetic/govaluate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalArithmetic(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2 + 3", 5},
		{"2 + 3 × 4", 14},
		{"(2 + 3) × 4", 20},
		{"10 ÷ 4", 2.5},
		{"7 − 10", -3},
		{"0,5 + 1", 1.5},
		{"--2", 2},
		{"2 ^ 3 ^ 2", 512},
		{"-2 ^ 2", -4},
		{"2 ^ -1", 0.5},
		{"(-2) ^ 2", 4},
		{"5!", 120},
		{"0!", 1},
		{"-5!", -120},
		{"50%", 0.5},
		{"50 + 10%", 50.1},
		{"2(3)", 6},
		{"(1 + 1)(2)", 4},
		{"3!2", 12},
		{"1e5", 100000},
		{"1.00000000e+12", 1e12},
		{"√(16)", 4},
		{"sqrt(2 + 7)", 3},
	}
	for _, tc := range cases {
		got, err := Eval(tc.in, Degrees)
		require.NoError(t, err, tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, tc.in)
	}
}

func TestEvalConstantsAndLogs(t *testing.T) {
	v, err := Eval("π", Degrees)
	require.NoError(t, err)
	assert.Equal(t, math.Pi, v)

	v, err = Eval("2π", Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi, v, 1e-12)

	v, err = Eval("e", Degrees)
	require.NoError(t, err)
	assert.Equal(t, math.E, v)

	v, err = Eval("2e", Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.E, v, 1e-12)

	v, err = Eval("ln(e)", Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-12)

	v, err = Eval("log(1000)", Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 3, v, 1e-12)

	// log and ln are distinct functions.
	v, err = Eval("log(e)", Degrees)
	require.NoError(t, err)
	assert.InDelta(t, math.Log10(math.E), v, 1e-12)
}

func TestEvalTrigAngleMode(t *testing.T) {
	v, err := Eval("sin(90)", Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-12)

	v, err = Eval("sin(90)", Radians)
	require.NoError(t, err)
	assert.InDelta(t, 0.8939966636, v, 1e-9)

	v, err = Eval("cos(60)", Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-12)

	v, err = Eval("tan(45)", Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-12)

	v, err = Eval("sin(30 + (30))", Degrees)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3)/2, v, 1e-12)

	v, err = Eval("sin(cos(0) × 90)", Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-12)
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrSyntax},
		{"2 +", ErrSyntax},
		{"(2 + 3", ErrSyntax},
		{"2 $ 3", ErrSyntax},
		{"1,5,2", ErrSyntax},
		{"(2 + 3)!", ErrSyntax},
		{"1 ÷ 0", ErrNonFinite},
		{"√(-1)", ErrNonFinite},
		{"ln(0)", ErrNonFinite},
		{"171!", ErrDomain},
		{"alert(1)", ErrUnknown},
		{"Math", ErrUnknown},
		{"sin 30", ErrUnknown},
		{"constructor(1)", ErrUnknown},
	}
	for _, tc := range cases {
		_, err := Eval(tc.in, Degrees)
		assert.ErrorIs(t, err, tc.want, tc.in)
	}
}

func TestEvalFactorialLimit(t *testing.T) {
	v, err := Eval("170!", Degrees)
	require.NoError(t, err)
	assert.False(t, math.IsInf(v, 0))

	_, err = Eval("171!", Degrees)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestEvalNestingLimit(t *testing.T) {
	deep := strings.Repeat("(", maxDepth+10) + "1" + strings.Repeat(")", maxDepth+10)
	_, err := Eval(deep, Degrees)
	assert.ErrorIs(t, err, ErrSyntax)

	ok := strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20)
	v, err := Eval(ok, Degrees)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestEvalMatchesGovaluate(t *testing.T) {
	exprs := []string{
		"1 + 2 * 3",
		"(4 - 6) / 8",
		"10 / 4 - 3 * (2 + 1)",
		"-3 * -2",
		"2 * (3 + 4) * 5 - 6 / 3",
		"((1.5 + 2.25) * 4) / (0.5 - 2)",
		"100 - 99.99",
		"1 / 3 + 1 / 3 + 1 / 3",
	}
	for _, in := range exprs {
		oracle, err := govaluate.NewEvaluableExpression(in)
		require.NoError(t, err, in)
		want, err := oracle.Evaluate(nil)
		require.NoError(t, err, in)

		got, err := Eval(in, Degrees)
		require.NoError(t, err, in)
		assert.InDelta(t, want.(float64), got, 1e-12, in)
	}
}

func TestTranslateDeterministic(t *testing.T) {
	for _, in := range []string{"sin(90) + 5! × 50%", "2π(3)", "√(2) ^ 2", "log(1e5)"} {
		for _, mode := range []AngleMode{Degrees, Radians} {
			a := Translate(in, mode).String()
			b := Translate(in, mode).String()
			assert.Equal(t, a, b)

			va, erra := Eval(in, mode)
			vb, errb := Eval(in, mode)
			assert.Equal(t, erra, errb)
			assert.Equal(t, va, vb)
		}
	}
}

func TestTranslateCanonical(t *testing.T) {
	cases := []struct {
		in   string
		mode AngleMode
		want string
	}{
		{"2×3", Degrees, "2 * 3"},
		{"2^3", Degrees, "2 ** 3"},
		{"5!", Degrees, "fact(5)"},
		{"50%", Degrees, "(50) / 100"},
		{"sin(90)", Degrees, "sin((90) * pi / 180)"},
		{"sin(90)", Radians, "sin(90)"},
		{"√(9)", Degrees, "sqrt(9)"},
		{"log(10)", Degrees, "log10(10)"},
		{"2π", Degrees, "2 * pi"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Translate(tc.in, tc.mode).String(), tc.in)
	}
}
