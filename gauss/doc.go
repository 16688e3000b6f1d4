// SPDX-License-Identifier: MIT

// Package gauss solves A·x = b by Gaussian elimination with partial pivoting
// and records every elementary row operation for step-by-step display.
//
// 🚀 What does it produce?
//
//	Eliminate turns an augmented matrix into row-echelon form and returns:
//	  • Steps    — one Step per swap, normalization, elimination or detected
//	               contradiction, in the order the operations were applied;
//	  • Echelon  — the final working matrix;
//	  • Singular — true iff a row 0 = c (c ≠ 0) was found.
//	BackSubstitute resolves one representative solution from the echelon
//	form; free variables stay at 0. Solve chains both.
//
// ✨ Pivoting rule:
//
//	For each variable column (left to right) the first row at or below the
//	pivot cursor whose entry is not negligible becomes the pivot row. This is
//	NOT max-magnitude pivoting: results can differ from a textbook solver
//	that picks the largest entry, and ill-conditioned systems may lose
//	precision. The rule is kept for trace compatibility.
//
// Precision policies (independent):
//
//	Tolerance (1e-12) — values with |v| below it are treated as zero for
//	pivot selection and are snapped to 0 after arithmetic.
//	numfmt.DisplayDecimals (6) — rounding used only when rendering text.
//
// Step variant:
//
//	Each Step carries an Op: Swap, Normalize, Elimination or Contradiction,
//	with typed fields (0-based row/column indices, factors). FormatOp and
//	Describe are pure renderers over Op, so algorithm tests and text tests
//	stay independent. Rendered math strings use 1-based row labels:
//
//	  (R1 <=> R2)             swap
//	  (R1 => (1/2) * R1)      normalize
//	  (R2 + (-0.5) * R1 => R2) eliminate; "(R2 - R1 => R2)" when k = -1
//	  (0 => 5)                contradiction
//
// Concurrency:
//
//	No global state. Every call works on a private clone of its input, so
//	independent solves may run concurrently (see package batch).
//
// Complexity:
//
//	Eliminate: O(r·c·min(r, c-1)) time, O(r·c·steps) memory for snapshots.
//	BackSubstitute: O(r·c).
package gauss
