package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	values := []int64{0, 100, 5000, 10000, 999900, -5000}

	for _, v := range values {
		assert.Equal(t, v, ToMinorUnits(ToMajorUnits(v)), `round trip for %d`, v)
	}
}

func TestToMinorUnitsRounds(t *testing.T) {
	testCases := []struct {
		major    float64
		expected int64
	}{
		{50, 5000},
		{49.999, 5000},
		{49.994, 4999},
		{0.005, 1},
		{0.004, 0},
		{150.5, 15050},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ToMinorUnits(tc.major), `rounding %v`, tc.major)
	}
}

func TestToMajorUnits(t *testing.T) {
	assert.Equal(t, 100.0, ToMajorUnits(10000))
	assert.Equal(t, 0.5, ToMajorUnits(50))
}
