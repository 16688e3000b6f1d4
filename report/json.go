// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/gaussteps/gauss"
)

// JSONStep is the wire form of one step.
type JSONStep struct {
	Index       int        `json:"index"` // 1-based
	Kind        string     `json:"kind"`
	Math        string     `json:"math"`
	Description string     `json:"description"`
	Matrix      [][]string `json:"matrix"`
}

// JSONVariable is one resolved variable.
type JSONVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// JSONReport is the wire form of a whole solve.
type JSONReport struct {
	Title     string         `json:"title,omitempty"`
	Steps     []JSONStep     `json:"steps"`
	Echelon   [][]string     `json:"echelon"`
	Singular  bool           `json:"singular"`
	Variables []JSONVariable `json:"variables,omitempty"`
	Note      string         `json:"note,omitempty"`
}

// NewJSONReport converts sol to its wire form.
func NewJSONReport(title string, sol *gauss.Solution) (*JSONReport, error) {
	if err := checkSolution(sol); err != nil {
		return nil, err
	}

	rep := &JSONReport{
		Title:    title,
		Steps:    make([]JSONStep, len(sol.Result.Steps)),
		Echelon:  formatRows(sol.Result.Echelon.ToRows()),
		Singular: sol.Singular,
		Note:     sol.Note,
	}
	for i, s := range sol.Result.Steps {
		rep.Steps[i] = JSONStep{
			Index:       i + 1,
			Kind:        s.Kind().String(),
			Math:        s.Math(),
			Description: s.Description(),
			Matrix:      formatRows(s.Matrix.ToRows()),
		}
	}
	if !sol.Singular {
		names := labels(len(sol.Values))
		row := formatRows([][]float64{sol.Values})[0]
		for i := range sol.Values {
			rep.Variables = append(rep.Variables, JSONVariable{Name: names[i], Value: row[i]})
		}
	}

	return rep, nil
}

// JSON writes the indented wire form of sol to w.
func JSON(w io.Writer, title string, sol *gauss.Solution) error {
	rep, err := NewJSONReport(title, sol)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}
