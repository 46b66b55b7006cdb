// Package money converts between stored minor currency units (centavos) and
// the major units shown to admins. Every stored monetary value is an integer
// number of centavos; division happens only on display.
package money

import "math"

func ToMajorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// ToMinorUnits rounds to the nearest centavo, so fractional inputs such as
// 49.999 never lose or invent a whole unit.
func ToMinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}
