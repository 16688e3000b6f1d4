// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/katalvlaran/gaussteps/matrix"
)

// BackSubstitute resolves variable values from a row-echelon matrix.
//
// Rows are walked bottom-up. A row's leading (first non-negligible) variable
// entry selects the variable it resolves:
//
//	x[lead] = (rhs − Σ_{c>lead} a[c]·x[c]) / a[lead]
//
// Rows without a leading entry are skipped, and variables never selected
// stay at 0 (one representative point, no parametric solution). A
// negligible coefficient is skipped rather than divided by.
//
// The result has m.Vars() entries. Callers are expected to check
// Result.Singular first: on an inconsistent system the returned values are
// not a solution.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//
// Complexity: O(r·c).
func BackSubstitute(m *matrix.Dense, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, gaussErrorf(opBackSubstitute, err)
	}
	o := gatherOptions(opts...)

	w := m.ToRows()
	vars := m.Vars()
	x := make([]float64, vars)

	for i := len(w) - 1; i >= 0; i-- {
		lead := -1
		for c := 0; c < vars; c++ {
			if math.Abs(w[i][c]) > o.tol {
				lead = c
				break
			}
		}
		if lead == -1 {
			continue // free row
		}

		sum := 0.0
		for c := lead + 1; c < vars; c++ {
			sum += w[i][c] * x[c]
		}

		coeff := w[i][lead]
		if math.Abs(coeff) < o.tol {
			continue
		}
		x[lead] = (w[i][vars] - sum) / coeff
	}

	return x, nil
}
