// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/katalvlaran/gaussteps/matrix"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoSystems is returned when Solve is called with an empty batch.
var ErrNoSystems = errors.New("batch: no systems to solve")

const panicWorkersInvalid = "batch: WithWorkers: n must be >= 1"

// System is one named augmented matrix.
type System struct {
	Name   string
	Matrix *matrix.Dense
}

// Outcome is the result of solving one System.
type Outcome struct {
	Name     string
	Solution *gauss.Solution
	Err      error
}

// Option configures Solve.
type Option func(*Options)

// Options holds the effective batch configuration.
type Options struct {
	workers   int
	solveOpts []gauss.Option
	logger    *zap.Logger
}

// WithWorkers bounds the number of concurrent solves. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSolveOptions forwards options to every gauss.Solve call.
func WithSolveOptions(opts ...gauss.Option) Option {
	return func(o *Options) { o.solveOpts = append(o.solveOpts, opts...) }
}

// WithLogger sets the logger used for per-system progress entries.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: runtime.GOMAXPROCS(0), logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Solve solves every system with at most the configured number of workers.
//
// Returns:
//   - []Outcome: one per system, same order as the input.
//   - error: ErrNoSystems for an empty batch; the context error when
//     cancellation skipped at least one system; nil otherwise. Per-system
//     failures are reported in Outcome.Err only.
//
// Complexity: sum of the individual solves, divided across workers.
func Solve(ctx context.Context, systems []System, opts ...Option) ([]Outcome, error) {
	if len(systems) == 0 {
		return nil, ErrNoSystems
	}
	o := gatherOptions(opts...)

	out := make([]Outcome, len(systems))
	var (
		g       errgroup.Group
		skipped atomic.Pointer[error]
	)
	g.SetLimit(o.workers)

	for i, sys := range systems {
		i, sys := i, sys // per-iteration copies for the goroutine (pre-Go 1.22 loop semantics)
		out[i].Name = sys.Name
		if err := ctx.Err(); err != nil {
			out[i].Err = err
			skipped.CompareAndSwap(nil, &err)
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				skipped.CompareAndSwap(nil, &err)
				return nil
			}
			sol, err := gauss.Solve(sys.Matrix, o.solveOpts...)
			out[i].Solution, out[i].Err = sol, err
			o.logger.Debug("batch: solved",
				zap.Int("index", i),
				zap.String("name", sys.Name),
				zap.Bool("singular", sol != nil && sol.Singular),
				zap.Error(err),
			)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in Outcome.Err

	if err := skipped.Load(); err != nil {
		return out, *err
	}

	return out, nil
}
