// Package gaussteps solves linear systems A·x = b by Gaussian elimination
// and keeps a readable trace of every row operation, for step-by-step
// teaching material.
//
// 🚀 What is gaussteps?
//
//	A small, deterministic, pure-Go toolkit that brings together:
//		• matrix  — Dense augmented matrices with strict shape/NaN policy
//		• gauss   — elimination with first-non-zero partial pivoting, a typed
//		            step trace (Swap, Normalize, Elimination, Contradiction),
//		            back-substitution and singularity detection
//		• numfmt  — the one number-to-text rule used everywhere ("2", "0.333333")
//		• report  — text, Markdown, terminal and JSON renderings of a solve
//		• batch   — many independent systems solved concurrently
//
// ✨ Why gaussteps?
//
//   - Reproducible traces – identical input gives identical steps and strings
//   - No shared state – every solve works on its own copy of the input
//   - Singular systems are results, not errors – the trace ends with "(0 => c)"
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]float64{{2, 1, 5}, {1, 3, 10}})
//	sol, _ := gauss.Solve(m)
//	for i, s := range sol.Result.Steps {
//		fmt.Printf("Step %d: %s\n", i+1, s.Display())
//	}
//	// Step 1: (R1 => (1/2) * R1)
//	// Step 2: (R2 - R1 => R2)
//	// Step 3: (R2 => (1/2.5) * R2)
//	// X = 1, Y = 3
//
// The gaussteps command (cmd/gaussteps) exposes the same features on the
// command line: solve, batch and format.
package gaussteps
