// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape and value checks.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     still match them via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRows ensures rows describe a non-empty rectangular matrix:
// at least one row, at least one column, every row the same length.
// Complexity: O(r).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRows: no rows", ErrInvalidShape)
	}
	cols := len(rows[0])
	if cols == 0 {
		return validatorErrorf("ValidateRows: no columns", ErrInvalidShape)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d cells, want %d", i, len(rows[i]), cols), ErrInvalidShape)
		}
	}

	return nil
}

// ValidateFinite ensures no cell of rows is NaN or ±Inf.
// Assumes rows already passed ValidateRows.
// Complexity: O(r*c).
func ValidateFinite(rows [][]float64) error {
	for i, row := range rows {
		for j, v := range row {
			if isNonFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
