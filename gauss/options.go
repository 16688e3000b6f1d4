// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"go.uber.org/zap"
)

// Tolerance is the default magnitude below which a value is treated as zero.
const Tolerance = 1e-12

const panicToleranceInvalid = "gauss: WithTolerance: eps must be finite, non-negative"

// Option configures Eliminate, BackSubstitute and Solve.
type Option func(*Options)

// Options holds the effective configuration; fields are unexported.
type Options struct {
	tol    float64
	logger *zap.Logger
}

// WithTolerance overrides Tolerance for one call.
// Panics when eps is negative, NaN or infinite (programmer error).
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = eps }
}

// WithLogger attaches a logger that receives one debug entry per step.
// A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{tol: Tolerance, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
