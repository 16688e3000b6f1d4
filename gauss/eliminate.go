// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/katalvlaran/gaussteps/matrix"
	"go.uber.org/zap"
)

// Eliminate reduces m to row-echelon form and records every row operation.
//
// Algorithm (column-major forward elimination, first-non-zero pivoting):
//  1. pivot cursor p = 0; advance only when a pivot is placed.
//  2. For each variable column c while p < rows: scan rows p.. for the first
//     non-negligible entry; none → column is free, continue.
//  3. Found row s ≠ p → swap, record Swap{p, s}.
//  4. Pivot value v not ≈ 1 → divide row p from column c by v, record Normalize.
//  5. Every lower row r with a non-negligible entry at c: row r −= f·row p
//     with f = a[r][c]/v, record Elimination. Zero entries are skipped silently.
//  6. p++.
//  7. Scan rows top-down; the first row whose variable entries are all
//     negligible but whose right-hand side is not records a Contradiction and
//     sets Singular. Scanning stops there.
//
// Every arithmetic result with magnitude below the tolerance is snapped to 0.
// A missing pivot does not make the system singular; it only leaves a free
// variable.
//
// Inputs:
//   - m: augmented matrix (Cols = variables + 1). Not modified.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//
// Complexity: O(r·c·min(r, c-1)) time.
func Eliminate(m *matrix.Dense, opts ...Option) (*Result, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, gaussErrorf(opEliminate, err)
	}
	o := gatherOptions(opts...)

	// The working copy admits non-finite values: overflow must surface in
	// the trace, not as a Set failure.
	w, err := matrix.NewDense(m.Rows(), m.Cols(), matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, gaussErrorf(opEliminate, err)
	}
	e := &eliminator{
		w:    w,
		rows: m.Rows(),
		cols: m.Cols(),
		vars: m.Vars(),
		tol:  o.tol,
		log:  o.logger,
	}
	for r := 0; r < e.rows; r++ {
		for c := 0; c < e.cols; c++ {
			v, _ := m.At(r, c)
			e.set(r, c, v)
		}
	}
	e.forward()
	singular := e.checkConsistency()

	return &Result{Steps: e.steps, Echelon: e.snapshot(), Singular: singular}, nil
}

// eliminator holds the private working copy of one Eliminate call.
type eliminator struct {
	w                *matrix.Dense
	rows, cols, vars int
	tol              float64
	log              *zap.Logger
	steps            []Step
}

// at and set index the working copy; indices are in range by construction
// and the copy does not validate values, so errors cannot occur.
func (e *eliminator) at(r, c int) float64 {
	v, _ := e.w.At(r, c)

	return v
}

func (e *eliminator) set(r, c int, v float64) { _ = e.w.Set(r, c, v) }

// negligible reports whether v is treated as zero.
func (e *eliminator) negligible(v float64) bool { return math.Abs(v) < e.tol }

// snap returns 0 for negligible v, v otherwise.
func (e *eliminator) snap(v float64) float64 {
	if e.negligible(v) {
		return 0
	}

	return v
}

// forward runs steps 1-6.
func (e *eliminator) forward() {
	pivot := 0
	for col := 0; col < e.vars && pivot < e.rows; col++ {
		// Stage 1: locate the first usable pivot in this column.
		sel := pivot
		for sel < e.rows && e.negligible(e.at(sel, col)) {
			sel++
		}
		if sel == e.rows {
			continue // free column
		}

		// Stage 2: bring it to the cursor.
		if sel != pivot {
			_ = e.w.SwapRows(pivot, sel)
			e.record(Swap{A: pivot, B: sel})
		}

		// Stage 3: scale the pivot to 1.
		pv := e.at(pivot, col)
		if math.Abs(pv-1) > e.tol {
			for c := col; c < e.cols; c++ {
				e.set(pivot, c, e.snap(e.at(pivot, c)/pv))
			}
			e.record(Normalize{Row: pivot, Column: col, Pivot: pv})
			pv = e.at(pivot, col)
		}

		// Stage 4: clear the column below the pivot.
		for r := pivot + 1; r < e.rows; r++ {
			if e.negligible(e.at(r, col)) {
				continue
			}
			f := e.at(r, col) / pv
			for c := col; c < e.cols; c++ {
				e.set(r, c, e.snap(e.at(r, c)-f*e.at(pivot, c)))
			}
			e.record(Elimination{Row: r, PivotRow: pivot, Column: col, Factor: f})
		}

		pivot++
	}
}

// checkConsistency runs step 7 and reports whether a contradiction was found.
func (e *eliminator) checkConsistency() bool {
	for r := 0; r < e.rows; r++ {
		allZero := true
		for c := 0; c < e.vars; c++ {
			if math.Abs(e.at(r, c)) > e.tol {
				allZero = false
				break
			}
		}
		if allZero && math.Abs(e.at(r, e.vars)) > e.tol {
			e.record(Contradiction{Row: r, Value: e.at(r, e.vars)})
			return true
		}
	}

	return false
}

// record appends a Step holding a snapshot of the current working matrix.
func (e *eliminator) record(op Op) {
	e.steps = append(e.steps, Step{Op: op, Matrix: e.snapshot()})
	e.log.Debug("gauss step",
		zap.Int("step", len(e.steps)),
		zap.Stringer("kind", op.Kind()),
		zap.String("math", FormatOp(op)),
	)
}

// snapshot copies the working matrix into a fresh Dense.
func (e *eliminator) snapshot() *matrix.Dense { return e.w.Clone() }
