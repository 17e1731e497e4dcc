package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		v        float64
		from, to string
		want     string
	}{
		{1, "km", "m", "1000 m"},
		{12, "in", "ft", "1 ft"},
		{1, "lb", "kg", "0.453592 kg"},
		{500, "g", "oz", "17.636981 oz"},
		{100, "C", "F", "212 F"},
		{32, "f", "c", "0 C"},
		{0, "K", "C", "-273.15 C"},
		{2, "KM", "M", "2000 m"},
	}
	for _, tc := range cases {
		got, err := Convert(tc.v, tc.from, tc.to)
		require.NoError(t, err, "%v %s -> %s", tc.v, tc.from, tc.to)
		assert.Equal(t, tc.want, FormatUnit(got, canonicalUnit(tc.to)), "%v %s -> %s", tc.v, tc.from, tc.to)
	}

	for _, bad := range [][2]string{{"m", "kg"}, {"C", "m"}, {"mi", "m"}, {"m", "yd"}} {
		_, err := Convert(1, bad[0], bad[1])
		assert.ErrorIs(t, err, ErrUnit, "%s -> %s", bad[0], bad[1])
	}
}

func TestInterest(t *testing.T) {
	a, j := SimpleInterest(1000, 5, 3)
	assert.Equal(t, "1150", FormatResult(a))
	assert.Equal(t, "150", FormatResult(j))

	a, j = CompoundInterest(1000, 10, 2)
	assert.Equal(t, "1210", FormatResult(a))
	assert.Equal(t, "210", FormatResult(j))
}

func TestPayment(t *testing.T) {
	pmt, err := Payment(1000, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, "88.848789", FormatUnit(pmt, ""))

	_, err = Payment(1000, 0, 12)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Payment(1000, 5, 0)
	assert.ErrorIs(t, err, ErrNonFinite)
}
