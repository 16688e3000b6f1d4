// SPDX-License-Identifier: MIT

package input

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/gaussteps/matrix"
	"go.uber.org/multierr"
)

// MaxDimension bounds both the equation and the variable count.
const MaxDimension = 15

// ValidateBounds checks 1 ≤ equations ≤ MaxDimension and
// 1 ≤ variables ≤ MaxDimension. Both violations are reported together.
func ValidateBounds(equations, variables int) error {
	var err error
	if equations < 1 || equations > MaxDimension {
		err = multierr.Append(err, fmt.Errorf("%w: %d (want 1..%d)", ErrBadEquations, equations, MaxDimension))
	}
	if variables < 1 || variables > MaxDimension {
		err = multierr.Append(err, fmt.Errorf("%w: %d (want 1..%d)", ErrBadVariables, variables, MaxDimension))
	}

	return err
}

// ParseCells converts a grid of cell texts into an augmented matrix.
//
// Stage 1: shape — non-empty and rectangular (matrix.ErrInvalidShape), then
// ValidateBounds with variables = columns - 1.
// Stage 2: cells — surrounding space is trimmed; every empty or non-numeric
// cell becomes a *CellError, and all of them are returned together
// (multierr; use multierr.Errors to list them, errors.Is/As to match).
// Stage 3: build the Dense (finite-value policy applies).
func ParseCells(cells [][]string) (*matrix.Dense, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("ParseCells: %w", matrix.ErrInvalidShape)
	}
	cols := len(cells[0])
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("ParseCells: row %d has %d cells, want %d: %w", i+1, len(row), cols, matrix.ErrInvalidShape)
		}
	}
	if err := ValidateBounds(len(cells), cols-1); err != nil {
		return nil, err
	}

	var errs error
	rows := make([][]float64, len(cells))
	for i, row := range cells {
		rows[i] = make([]float64, cols)
		for j, text := range row {
			text = strings.TrimSpace(text)
			if text == "" {
				errs = multierr.Append(errs, &CellError{Row: i, Col: j, Err: ErrEmptyCell})
				continue
			}
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				errs = multierr.Append(errs, &CellError{Row: i, Col: j, Text: text, Err: ErrNotNumeric})
				continue
			}
			rows[i][j] = v
		}
	}
	if errs != nil {
		return nil, errs
	}

	return matrix.NewFromRows(rows)
}

// SplitRow splits one row of text on commas, semicolons and whitespace,
// e.g. "2 1 5" or "2,1,5".
func SplitRow(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

// ParseRowArgs parses one row per argument with SplitRow, then ParseCells.
func ParseRowArgs(args []string) (*matrix.Dense, error) {
	cells := make([][]string, len(args))
	for i, a := range args {
		cells[i] = SplitRow(a)
	}

	return ParseCells(cells)
}
