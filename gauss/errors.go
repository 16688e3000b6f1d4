// SPDX-License-Identifier: MIT

package gauss

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned by Solution helpers that need a solution vector
	// when the system was found inconsistent. Solve itself never returns it:
	// singularity is reported through Result.Singular.
	ErrSingular = errors.New("gauss: system is singular or inconsistent")

	// ErrDimensionMismatch indicates a matrix whose shape does not match the
	// solution it is checked against.
	ErrDimensionMismatch = errors.New("gauss: dimension mismatch")
)

// Operation tags for error wrapping.
const (
	opEliminate      = "Eliminate"
	opBackSubstitute = "BackSubstitute"
	opSolve          = "Solve"
	opResidual       = "Residual"
	opVariables      = "Variables"
)

// gaussErrorf wraps err with an operation tag, preserving it for errors.Is.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
