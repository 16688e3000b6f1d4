// SPDX-License-Identifier: MIT

// Command gaussteps solves linear systems by Gaussian elimination and prints
// every row operation it performs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/katalvlaran/gaussteps/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by all sub-commands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "gaussteps",
		Short: "Step-by-step Gaussian elimination",
		Long: `gaussteps solves A·x = b by Gaussian elimination with partial pivoting.

Every swap, normalization and elimination is printed together with the
matrix it produced, followed by the row-echelon form and either the values
of X, Y, Z, ... or a note that the system is inconsistent.

Systems are given as rows on the command line or as YAML files:

  name: demo
  matrix:
    - [2, 1, 5]
    - [1, 3, 10]`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every step at debug level")

	root.AddCommand(a.newSolveCmd(), a.newBatchCmd(), newFormatCmd())

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// solveOptions returns the gauss options for one solve tagged with id.
func (a *app) solveOptions(id string) []gauss.Option {
	return []gauss.Option{
		gauss.WithTolerance(a.cfg.Tolerance),
		gauss.WithLogger(a.logger.With(zap.String("solve_id", id))),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
