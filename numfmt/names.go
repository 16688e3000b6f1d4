// SPDX-License-Identifier: MIT

package numfmt

import (
	"errors"
	"fmt"
)

// MaxVariables is the size of the variable-name alphabet.
const MaxVariables = 15

// ErrTooManyVariables is returned when a variable index has no name.
var ErrTooManyVariables = errors.New("numfmt: variable index exceeds name alphabet")

// variableNames is the ordered single-letter alphabet used for labels.
var variableNames = [MaxVariables]string{
	"X", "Y", "Z", "W", "V",
	"U", "T", "S", "R", "Q",
	"P", "O", "N", "M", "L",
}

// VariableNames returns a copy of the full alphabet in order.
func VariableNames() []string {
	out := make([]string, MaxVariables)
	copy(out, variableNames[:])

	return out
}

// VariableName returns the label of the i-th (0-based) variable.
func VariableName(i int) (string, error) {
	if i < 0 || i >= MaxVariables {
		return "", fmt.Errorf("VariableName(%d): %w", i, ErrTooManyVariables)
	}

	return variableNames[i], nil
}
