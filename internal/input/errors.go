// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"fmt"
)

var (
	// ErrBadEquations indicates an equation count outside 1..MaxDimension.
	ErrBadEquations = errors.New("input: equation count out of range")

	// ErrBadVariables indicates a variable count outside 1..MaxDimension.
	ErrBadVariables = errors.New("input: variable count out of range")

	// ErrEmptyCell marks a cell with no value.
	ErrEmptyCell = errors.New("input: empty cell")

	// ErrNotNumeric marks a cell whose text is not a number.
	ErrNotNumeric = errors.New("input: cell is not a number")

	// ErrNoSystems indicates a document without any matrix.
	ErrNoSystems = errors.New("input: document defines no systems")
)

// CellError locates a rejected cell. Row and Col are 0-based; Error renders
// them 1-based. Unwrap returns ErrEmptyCell or ErrNotNumeric.
type CellError struct {
	Row, Col int
	Text     string
	Err      error
}

func (e *CellError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("row %d, column %d: %v", e.Row+1, e.Col+1, e.Err)
	}

	return fmt.Sprintf("row %d, column %d (%q): %v", e.Row+1, e.Col+1, e.Text, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }
