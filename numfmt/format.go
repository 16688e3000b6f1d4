// SPDX-License-Identifier: MIT

package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// DisplayDecimals is the number of fractional digits kept when rendering
// a non-integer value. It is a display policy only and is independent of
// any numeric tolerance used by the solver.
const DisplayDecimals = 6

// ExponentThreshold is the magnitude from which values render in exponent
// form ("1e+21", "-2.5e+22").
const ExponentThreshold = 1e21

// FormatNumber converts v to its canonical display string.
//
// Behavior highlights:
//   - Integral values: shortest decimal form, no point ("2", "-15").
//   - Magnitudes of at least ExponentThreshold: shortest exponent form ("1e+21").
//   - Non-integral values: fixed DisplayDecimals digits, then trailing zeros
//     and a dangling point are stripped ("0.333333", "0.3").
//   - Negative values that round to zero render "0".
//   - NaN renders "NaN", infinities "+Inf" and "-Inf".
//
// Complexity: O(1).
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case v == 0:
		return "0" // covers -0
	case math.Abs(v) >= ExponentThreshold:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', DisplayDecimals, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}

	return s
}

// Round returns v rounded to DisplayDecimals places, i.e. the numeric value
// FormatNumber displays. NaN and infinities are returned unchanged.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', DisplayDecimals, 64), 64)
	if err != nil {
		return v
	}
	if r == 0 {
		return 0
	}

	return r
}

// FormatRow renders every cell of row with FormatNumber.
func FormatRow(row []float64) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = FormatNumber(v)
	}

	return out
}
