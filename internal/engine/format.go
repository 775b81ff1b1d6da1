package engine

import (
	"math"
	"strconv"
)

// roundPlaces is the fixed rounding applied to every result to suppress
// binary floating-point noise (0.1+0.2 renders as 0.3).
const roundPlaces = 1e10

// FormatResult renders value in canonical display form: rounded to 10
// decimal places, with mathematically integral values collapsed to a plain
// integer (no trailing ".0") and everything else rendered as the shortest
// decimal that round-trips.
func FormatResult(value float64) string {
	rounded := math.Round(value*roundPlaces) / roundPlaces
	if math.IsInf(rounded, 0) && !math.IsInf(value, 0) {
		// Scaling overflowed; the value is too large for fractional
		// digits to matter.
		rounded = value
	}
	if rounded == 0 {
		// Collapse negative zero so 0*-1 renders as "0", not "-0".
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
