// SPDX-License-Identifier: MIT

package input

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gaussteps/batch"
	"gopkg.in/yaml.v3"
)

// DefaultSystemName names a top-level matrix that has no name.
const DefaultSystemName = "system"

// Cell is one matrix entry as written in a document. Numbers and strings
// are both accepted; null values decode as empty text.
type Cell struct {
	Text string
}

// Grid is a matrix as written in a document. Rows are decoded node by node
// so a null cell keeps its position and is reported as empty.
type Grid [][]Cell

// UnmarshalYAML walks the row and cell nodes itself: yaml.v3 drops null
// elements of struct slices without calling Cell.UnmarshalYAML.
func (g *Grid) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: matrix must be a sequence of rows", n.Line)
	}
	out := make(Grid, len(n.Content))
	for i, rn := range n.Content {
		if rn.Kind != yaml.SequenceNode {
			return fmt.Errorf("line %d: matrix row %d must be a sequence", rn.Line, i+1)
		}
		row := make([]Cell, len(rn.Content))
		for j, cn := range rn.Content {
			if err := row[j].UnmarshalYAML(cn); err != nil {
				return err
			}
		}
		out[i] = row
	}
	*g = out

	return nil
}

// UnmarshalYAML keeps the raw scalar text so ParseCells owns validation.
func (c *Cell) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: matrix cell must be a scalar", n.Line)
	}
	if n.Tag == "!!null" {
		c.Text = ""
		return nil
	}
	c.Text = n.Value

	return nil
}

// SystemEntry is one named matrix in a document.
type SystemEntry struct {
	Name   string `yaml:"name"`
	Matrix Grid   `yaml:"matrix"`
}

// Document is the YAML layout of a system file. Either a single top-level
// matrix, a systems list, or both:
//
//	name: demo
//	matrix:
//	  - [2, 1, 5]
//	  - [1, 3, 10]
//	systems:
//	  - name: other
//	    matrix: [[1, 1, 3]]
type Document struct {
	Name    string        `yaml:"name"`
	Matrix  Grid          `yaml:"matrix"`
	Systems []SystemEntry `yaml:"systems"`
}

// Decode reads a Document from r and parses every system in it.
func Decode(r io.Reader) ([]batch.System, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrNoSystems
		}
		return nil, fmt.Errorf("input: decode: %w", err)
	}

	entries := doc.Systems
	if len(doc.Matrix) > 0 {
		name := doc.Name
		if name == "" {
			name = DefaultSystemName
		}
		entries = append([]SystemEntry{{Name: name, Matrix: doc.Matrix}}, entries...)
	}
	if len(entries) == 0 {
		return nil, ErrNoSystems
	}

	out := make([]batch.System, len(entries))
	for i, entry := range entries {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("%s %d", DefaultSystemName, i+1)
		}
		m, err := ParseCells(entry.cells())
		if err != nil {
			return nil, fmt.Errorf("input: %s: %w", name, err)
		}
		out[i] = batch.System{Name: name, Matrix: m}
	}

	return out, nil
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) ([]batch.System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func (s SystemEntry) cells() [][]string {
	out := make([][]string, len(s.Matrix))
	for i, row := range s.Matrix {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = c.Text
		}
	}

	return out
}
