// SPDX-License-Identifier: MIT

// Package input turns user-supplied text into well-formed augmented matrices.
//
// The solver assumes its input is rectangular, complete and numeric; this
// package is where that is guaranteed. It enforces the equation/variable
// bounds (1..MaxDimension), reports every empty or non-numeric cell with its
// position instead of stopping at the first one, and reads YAML system
// files for the CLI.
package input
