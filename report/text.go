// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/katalvlaran/gaussteps/numfmt"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Bold(true)
	mathStyle  = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginBottom(1)
	noteStyle = lipgloss.NewStyle().Italic(true)
)

// Text writes the boxed terminal rendering of sol.
func Text(w io.Writer, title string, sol *gauss.Solution) error {
	if err := checkSolution(sol); err != nil {
		return err
	}

	var blocks []string
	if title != "" {
		blocks = append(blocks, titleStyle.Render(title)+"\n")
	}
	for i, s := range sol.Result.Steps {
		blocks = append(blocks, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			labelStyle.Render(fmt.Sprintf("Step %d:", i+1)),
			mathStyle.Render(s.Display()),
			"",
			fmt.Sprintf("Matrix after step %d", i+1),
			grid(formatRows(s.Matrix.ToRows())),
		)))
	}
	blocks = append(blocks, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Final matrix"),
		grid(formatRows(sol.Result.Echelon.ToRows())),
	)))
	blocks = append(blocks, answer(sol))

	_, err := io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, blocks...)+"\n")

	return err
}

// answer renders the variable list or the singular note.
func answer(sol *gauss.Solution) string {
	if sol.Singular {
		return noteStyle.Render(sol.Note)
	}
	names := labels(len(sol.Values))
	lines := make([]string, len(sol.Values))
	for i, v := range sol.Values {
		lines[i] = fmt.Sprintf("%s = %s", names[i], numfmt.FormatNumber(v))
	}

	return strings.Join(lines, "\n")
}

// grid right-aligns cells per column with a bar before the augmented column.
func grid(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	widths := make([]int, len(rows[0]))
	for _, r := range rows {
		for j, c := range r {
			if len(c) > widths[j] {
				widths[j] = len(c)
			}
		}
	}

	var sb strings.Builder
	last := len(widths) - 1
	for i, r := range rows {
		for j, c := range r {
			if j > 0 {
				sb.WriteString("  ")
			}
			if j == last && last > 0 {
				sb.WriteString("| ")
			}
			sb.WriteString(fmt.Sprintf("%*s", widths[j], c))
		}
		if i < len(rows)-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
