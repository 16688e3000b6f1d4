// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/gaussteps/batch"
	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/katalvlaran/gaussteps/internal/input"
	"github.com/katalvlaran/gaussteps/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newBatchCmd() *cobra.Command {
	var (
		format    string
		tolerance float64
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Solve every system of one or more files concurrently",
		Example: `  gaussteps batch homework.yaml --workers 4 --format json`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyFlags(cmd, format, tolerance); err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Workers = workers
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			f, err := a.cfg.OutputFormat()
			if err != nil {
				return err
			}

			var systems []batch.System
			for _, path := range args {
				s, err := input.LoadFile(path)
				if err != nil {
					return err
				}
				systems = append(systems, s...)
			}

			id := uuid.NewString()
			opts := []batch.Option{
				batch.WithSolveOptions(gauss.WithTolerance(a.cfg.Tolerance)),
				batch.WithLogger(a.logger.With(zap.String("batch_id", id))),
			}
			if a.cfg.Workers > 0 {
				opts = append(opts, batch.WithWorkers(a.cfg.Workers))
			}
			a.logger.Info("solving batch", zap.String("batch_id", id), zap.Int("systems", len(systems)))

			outcomes, err := batch.Solve(cmd.Context(), systems, opts...)
			if err != nil {
				return err
			}

			failed := 0
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", o.Name, o.Err)
					continue
				}
				if err := report.Write(cmd.OutOrStdout(), f, o.Name, o.Solution); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d systems failed", failed, len(outcomes))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, markdown, pretty, json")
	cmd.Flags().Float64Var(&tolerance, "tolerance", gauss.Tolerance, "magnitude treated as zero")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent solves (0 = GOMAXPROCS)")

	return cmd
}
