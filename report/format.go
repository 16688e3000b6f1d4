// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/katalvlaran/gaussteps/numfmt"
)

// Format selects a rendering.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatPretty   Format = "pretty"
	FormatJSON     Format = "json"
)

var (
	// ErrUnknownFormat is returned by ParseFormat for unsupported names.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrNilSolution is returned when there is nothing to render.
	ErrNilSolution = errors.New("report: nil solution")
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatPretty, FormatJSON}
}

// ParseFormat maps a case-insensitive name ("md" is accepted for markdown).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders sol in format f to w. title may be empty.
func Write(w io.Writer, f Format, title string, sol *gauss.Solution) error {
	switch f {
	case FormatText:
		return Text(w, title, sol)
	case FormatMarkdown:
		md, err := Markdown(title, sol)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	case FormatPretty:
		return Pretty(w, title, sol, DefaultPrettyStyle)
	case FormatJSON:
		return JSON(w, title, sol)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// labels returns the variable labels for n variables, falling back to
// "x<i>" past the alphabet.
func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		name, err := numfmt.VariableName(i)
		if err != nil {
			name = fmt.Sprintf("x%d", i+1)
		}
		out[i] = name
	}

	return out
}

// formatRows renders a matrix as text cells.
func formatRows(rows [][]float64) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = numfmt.FormatRow(r)
	}

	return out
}

func checkSolution(sol *gauss.Solution) error {
	if sol == nil || sol.Result == nil {
		return ErrNilSolution
	}

	return nil
}
