// SPDX-License-Identifier: MIT

// Package report renders a gauss.Solution for people and programs.
//
// Formats:
//   - FormatText     — boxed terminal output (lipgloss): "Step N:", the math
//     line (or the description when there is none), "Matrix after step N",
//     the matrix, then the final matrix and the variables or the note.
//   - FormatMarkdown — the same content as Markdown with tables.
//   - FormatPretty   — the Markdown rendered for terminals by glamour.
//   - FormatJSON     — a stable wire form for other tools.
//
// Every number goes through numfmt.FormatNumber, so all formats show the
// same digits.
package report
