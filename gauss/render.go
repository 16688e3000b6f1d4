// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gaussteps/numfmt"
)

// FormatOp renders op as the math string shown above each step.
// Rows are labelled 1-based; numbers go through numfmt.FormatNumber.
//
//   - Swap:          "(Ra <=> Rb)"
//   - Normalize:     "(Rp => (1/pivot) * Rp)", or "" when pivot is already 1
//   - Elimination:   "(Rr + Rp => Rr)" for k = 1, "(Rr - Rp => Rr)" for k = -1,
//     otherwise "(Rr + (k) * Rp => Rr)" where k = -Factor
//   - Contradiction: "(0 => value)"
//
// The ±1 checks use the package Tolerance. Unknown ops render "".
func FormatOp(op Op) string {
	switch o := op.(type) {
	case Swap:
		return fmt.Sprintf("(R%d <=> R%d)", o.A+1, o.B+1)
	case Normalize:
		if math.Abs(o.Pivot-1) < Tolerance {
			return ""
		}
		return fmt.Sprintf("(R%d => (1/%s) * R%d)", o.Row+1, numfmt.FormatNumber(o.Pivot), o.Row+1)
	case Elimination:
		r, p := o.Row+1, o.PivotRow+1
		k := o.Coefficient()
		switch {
		case math.Abs(k-1) < Tolerance:
			return fmt.Sprintf("(R%d + R%d => R%d)", r, p, r)
		case math.Abs(k+1) < Tolerance:
			return fmt.Sprintf("(R%d - R%d => R%d)", r, p, r)
		default:
			return fmt.Sprintf("(R%d + (%s) * R%d => R%d)", r, numfmt.FormatNumber(k), p, r)
		}
	case Contradiction:
		return fmt.Sprintf("(0 => %s)", numfmt.FormatNumber(o.Value))
	default:
		return ""
	}
}

// Describe renders op as a sentence stating the purpose of the step.
func Describe(op Op) string {
	switch o := op.(type) {
	case Swap:
		return fmt.Sprintf("Swap rows to bring pivot into row %d.", o.A+1)
	case Normalize:
		return fmt.Sprintf("Normalize pivot at row %d (make pivot = 1).", o.Row+1)
	case Elimination:
		return fmt.Sprintf("Eliminate entry in row %d, column %d.", o.Row+1, o.Column+1)
	case Contradiction:
		return fmt.Sprintf("Inconsistent row detected at row %d: no solution.", o.Row+1)
	default:
		return ""
	}
}
