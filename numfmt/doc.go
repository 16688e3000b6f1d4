// SPDX-License-Identifier: MIT

// Package numfmt renders numbers and variable labels for step-by-step
// elimination traces.
//
// A single rule is applied everywhere a number becomes display text, so two
// traces of the same system always compare equal as strings:
//
//   - integers render without a decimal point (2 → "2");
//   - other values are rounded to DisplayDecimals places and stripped of
//     trailing zeros and a trailing point (1/3 → "0.333333", 2.50 → "2.5");
//   - anything that rounds to zero renders as "0", never "-0".
//
// Variables are labelled from a fixed alphabet (X, Y, Z, W, V, ...) of
// MaxVariables names; VariableName reports ErrTooManyVariables beyond it.
package numfmt
