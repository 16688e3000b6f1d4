// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/gaussteps/batch"
	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/katalvlaran/gaussteps/internal/input"
	"github.com/katalvlaran/gaussteps/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	errNoInput   = errors.New("provide a system file or at least one --row")
	errBothInput = errors.New("use either a system file or --row, not both")
)

func (a *app) newSolveCmd() *cobra.Command {
	var (
		rows      []string
		format    string
		title     string
		tolerance float64
	)

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve systems and print every elimination step",
		Long: `Solve one system given with --row flags, or every system of a YAML file,
printing the elimination trace in the configured format.`,
		Example: `  gaussteps solve -r "2 1 5" -r "1 3 10"
  gaussteps solve system.yaml --format markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyFlags(cmd, format, tolerance); err != nil {
				return err
			}
			systems, err := readSystems(args, rows, title)
			if err != nil {
				return err
			}
			f, err := a.cfg.OutputFormat()
			if err != nil {
				return err
			}

			for _, sys := range systems {
				id := uuid.NewString()
				a.logger.Info("solving system",
					zap.String("solve_id", id),
					zap.String("name", sys.Name),
					zap.Int("equations", sys.Matrix.Rows()),
					zap.Int("variables", sys.Matrix.Vars()),
				)
				sol, err := gauss.Solve(sys.Matrix, a.solveOptions(id)...)
				if err != nil {
					return fmt.Errorf("%s: %w", sys.Name, err)
				}
				if err := report.Write(cmd.OutOrStdout(), f, sys.Name, sol); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&rows, "row", "r", nil, `one equation row, e.g. "2 1 5" (repeatable)`)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, markdown, pretty, json")
	cmd.Flags().StringVarP(&title, "title", "t", "", "title for a system given with --row")
	cmd.Flags().Float64Var(&tolerance, "tolerance", gauss.Tolerance, "magnitude treated as zero")

	return cmd
}

// applyFlags lets explicit flags override the configuration file.
func (a *app) applyFlags(cmd *cobra.Command, format string, tolerance float64) error {
	if cmd.Flags().Changed("format") {
		a.cfg.Format = format
	}
	if cmd.Flags().Changed("tolerance") {
		a.cfg.Tolerance = tolerance
	}

	return a.cfg.Validate()
}

// readSystems resolves the input source of solve.
func readSystems(args, rows []string, title string) ([]batch.System, error) {
	switch {
	case len(args) == 1 && len(rows) > 0:
		return nil, errBothInput
	case len(args) == 1:
		return input.LoadFile(args[0])
	case len(rows) > 0:
		m, err := input.ParseRowArgs(rows)
		if err != nil {
			return nil, err
		}
		return []batch.System{{Name: title, Matrix: m}}, nil
	default:
		return nil, errNoInput
	}
}
