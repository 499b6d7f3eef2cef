package levels

import (
	"math"
	"strconv"
)

// formatValue renders one output value per the display contract: a
// result that is a whole number at the requested precision is rendered
// with no fractional part, everything else as fixed-point with exactly
// digits fractional digits.
//
// Wholeness is judged after rounding to the display precision, so a
// value that only misses an integer by floating-point residue (for
// example dBu of the level produced by dBm = 0 at 600 ohms) still
// renders as "0" rather than "0.0000".
func formatValue(v float64, digits int) string {
	scale := math.Pow(10, float64(digits))
	rounded := math.Round(v*scale) / scale

	if rounded == math.Trunc(rounded) && !math.IsInf(rounded, 0) {
		// Keep negative zero off displays.
		if rounded == 0 {
			return "0"
		}
		return strconv.FormatFloat(rounded, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'f', digits, 64)
}
