// SPDX-License-Identifier: MIT

// Package matrix provides the augmented-matrix container used by the
// elimination engine.
//
// What & Why:
//
//	Dense is a row-major, rectangular r×c matrix of float64 values stored in
//	a flat slice. For a linear system A·x = b the last column holds the
//	right-hand side b and the first c-1 columns hold the coefficients of A.
//	Callers build a Dense once (NewFromRows copies its input), and every
//	algorithm that needs to mutate it works on a Clone, so the caller's data
//	is never touched.
//
// Numeric policy:
//
//	By default NaN and ±Inf cells are rejected at ingestion with ErrNaNInf.
//	Use WithNoValidateNaNInf to relax this for controlled experiments.
//
// Errors:
//
//	All failures are package-level sentinels (ErrInvalidShape, ErrOutOfRange,
//	ErrNaNInf, ...) and must be matched with errors.Is.
//
// Complexity:
//
//	Rows, Cols, At, Set: O(1). Clone, ToRows, NewFromRows: O(r*c).
//	SwapRows: O(c).
package matrix
