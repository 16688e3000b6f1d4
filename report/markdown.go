// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/katalvlaran/gaussteps/numfmt"
)

// DefaultPrettyStyle lets glamour pick a dark or light style from the terminal.
const DefaultPrettyStyle = "auto"

const prettyWrap = 100

// Markdown renders sol as a Markdown document.
func Markdown(title string, sol *gauss.Solution) (string, error) {
	if err := checkSolution(sol); err != nil {
		return "", err
	}
	if title == "" {
		title = "Gaussian elimination"
	}
	header := append(labels(sol.Result.Echelon.Vars()), "=")

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	for i, s := range sol.Result.Steps {
		fmt.Fprintf(&sb, "## Step %d\n\n", i+1)
		if m := s.Math(); m != "" {
			fmt.Fprintf(&sb, "`%s`\n\n", m)
		}
		fmt.Fprintf(&sb, "%s\n\n", s.Description())
		fmt.Fprintf(&sb, "Matrix after step %d:\n\n", i+1)
		table(&sb, header, formatRows(s.Matrix.ToRows()))
	}

	sb.WriteString("## Final matrix\n\n")
	table(&sb, header, formatRows(sol.Result.Echelon.ToRows()))

	sb.WriteString("## Solution\n\n")
	if sol.Singular {
		fmt.Fprintf(&sb, "> %s\n", sol.Note)
		return sb.String(), nil
	}
	names := labels(len(sol.Values))
	for i, v := range sol.Values {
		fmt.Fprintf(&sb, "- **%s** = %s\n", names[i], numfmt.FormatNumber(v))
	}

	return sb.String(), nil
}

// Pretty renders the Markdown form through glamour with the given standard
// style name ("auto", "dark", "light", "notty", ...).
func Pretty(w io.Writer, title string, sol *gauss.Solution, style string) error {
	md, err := Markdown(title, sol)
	if err != nil {
		return err
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(prettyWrap)}
	if style == "" || style == DefaultPrettyStyle {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("report: pretty: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("report: pretty: %w", err)
	}
	_, err = io.WriteString(w, out)

	return err
}

func table(sb *strings.Builder, header []string, rows [][]string) {
	sb.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" ---: |", len(header)) + "\n")
	for _, r := range rows {
		sb.WriteString("| " + strings.Join(r, " | ") + " |\n")
	}
	sb.WriteString("\n")
}
