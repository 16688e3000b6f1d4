// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/katalvlaran/gaussteps/matrix"
	"github.com/katalvlaran/gaussteps/numfmt"
	"go.uber.org/zap"
)

// SingularNote is the message reported in place of values for an
// inconsistent system.
const SingularNote = "The system may be singular or inconsistent."

// Solution is the full outcome of Solve.
type Solution struct {
	Result   *Result   // elimination trace and echelon form
	Values   []float64 // one per variable; nil when Singular
	Singular bool
	Note     string // SingularNote when Singular, "" otherwise
}

// Variable pairs a variable label with its resolved value.
type Variable struct {
	Name  string
	Value float64
}

// Solve runs Eliminate and, unless the system is inconsistent, BackSubstitute.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//
// Singularity is not an error: it is reported via Solution.Singular and Note.
func Solve(m *matrix.Dense, opts ...Option) (*Solution, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, gaussErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	res, err := Eliminate(m, opts...)
	if err != nil {
		return nil, gaussErrorf(opSolve, err)
	}
	if res.Singular {
		o.logger.Debug("gauss solve: inconsistent system", zap.Int("steps", len(res.Steps)))
		return &Solution{Result: res, Singular: true, Note: SingularNote}, nil
	}

	x, err := BackSubstitute(res.Echelon, opts...)
	if err != nil {
		return nil, gaussErrorf(opSolve, err)
	}
	o.logger.Debug("gauss solve: resolved",
		zap.Int("steps", len(res.Steps)),
		zap.Float64s("values", x),
	)

	return &Solution{Result: res, Values: x}, nil
}

// Variables pairs each value with its label from numfmt's alphabet.
//
// Errors:
//   - ErrSingular when the solution has no values.
//   - numfmt.ErrTooManyVariables when there are more values than labels.
func (s *Solution) Variables() ([]Variable, error) {
	if s.Singular {
		return nil, gaussErrorf(opVariables, ErrSingular)
	}
	out := make([]Variable, len(s.Values))
	for i, v := range s.Values {
		name, err := numfmt.VariableName(i)
		if err != nil {
			return nil, gaussErrorf(opVariables, err)
		}
		out[i] = Variable{Name: name, Value: v}
	}

	return out, nil
}

// Residual returns max_i |Σ_j a[i][j]·x[j] − b[i]| for the original system,
// i.e. how far the solution is from satisfying every equation.
//
// Errors:
//   - ErrSingular when the solution has no values.
//   - matrix.ErrNilMatrix when original is nil.
//   - ErrDimensionMismatch when original.Vars() != len(Values).
func (s *Solution) Residual(original *matrix.Dense) (float64, error) {
	if s.Singular {
		return 0, gaussErrorf(opResidual, ErrSingular)
	}
	if err := matrix.ValidateNotNil(original); err != nil {
		return 0, gaussErrorf(opResidual, err)
	}
	if original.Vars() != len(s.Values) {
		return 0, gaussErrorf(opResidual, ErrDimensionMismatch)
	}

	worst := 0.0
	for _, row := range original.ToRows() {
		lhs := 0.0
		for j, x := range s.Values {
			lhs += row[j] * x
		}
		if d := math.Abs(lhs - row[len(s.Values)]); d > worst {
			worst = d
		}
	}

	return worst, nil
}
