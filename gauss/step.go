// SPDX-License-Identifier: MIT

package gauss

import "github.com/katalvlaran/gaussteps/matrix"

// Step is the snapshot of one applied operation: what was done and the full
// matrix state right after it. Steps are created once and never modified by
// this package; Matrix is a private copy owned by the Step.
type Step struct {
	Op     Op
	Matrix *matrix.Dense
}

// Kind returns the variant tag of the step's operation.
func (s Step) Kind() Kind { return s.Op.Kind() }

// Math returns the formatted math expression (see FormatOp).
func (s Step) Math() string { return FormatOp(s.Op) }

// Description returns the purpose sentence (see Describe).
func (s Step) Description() string { return Describe(s.Op) }

// Display returns the math expression, or the description when the
// expression is empty.
func (s Step) Display() string {
	if m := s.Math(); m != "" {
		return m
	}

	return s.Description()
}

// Result bundles the output of one Eliminate call.
type Result struct {
	Steps    []Step        // chronological
	Echelon  *matrix.Dense // final working matrix
	Singular bool          // true iff an inconsistent row was found
}
