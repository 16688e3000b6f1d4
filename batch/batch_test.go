package batch_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/gaussteps/batch"
	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/katalvlaran/gaussteps/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestSolve_Empty rejects an empty batch.
func TestSolve_Empty(t *testing.T) {
	_, err := batch.Solve(context.Background(), nil)
	require.ErrorIs(t, err, batch.ErrNoSystems)
}

// TestSolve_OrderAndIsolation mixes good, singular and nil systems.
func TestSolve_OrderAndIsolation(t *testing.T) {
	systems := []batch.System{
		{Name: "unique", Matrix: mustDense(t, [][]float64{{2, 1, 5}, {1, 3, 10}})},
		{Name: "inconsistent", Matrix: mustDense(t, [][]float64{{1, 0, 0}, {0, 0, 5}})},
		{Name: "missing", Matrix: nil},
		{Name: "free", Matrix: mustDense(t, [][]float64{{1, 1, 3}})},
	}

	out, err := batch.Solve(context.Background(), systems, batch.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, out, len(systems))

	for i, sys := range systems {
		assert.Equal(t, sys.Name, out[i].Name)
	}
	require.NoError(t, out[0].Err)
	assert.InDeltaSlice(t, []float64{1, 3}, out[0].Solution.Values, 1e-9)

	require.NoError(t, out[1].Err)
	assert.True(t, out[1].Solution.Singular)

	require.ErrorIs(t, out[2].Err, matrix.ErrNilMatrix)
	assert.Nil(t, out[2].Solution)

	require.NoError(t, out[3].Err)
	assert.Equal(t, []float64{3, 0}, out[3].Solution.Values)
}

// TestSolve_Many runs more systems than workers.
func TestSolve_Many(t *testing.T) {
	systems := make([]batch.System, 64)
	for i := range systems {
		k := float64(i + 1)
		systems[i] = batch.System{
			Name:   fmt.Sprintf("s%d", i),
			Matrix: mustDense(t, [][]float64{{k, 0, k}, {0, 2, 2 * k}}),
		}
	}

	out, err := batch.Solve(context.Background(), systems, batch.WithWorkers(3))
	require.NoError(t, err)
	for i, o := range out {
		require.NoError(t, o.Err)
		assert.InDeltaSlice(t, []float64{1, float64(i + 1)}, o.Solution.Values, 1e-9, "system %d", i)
	}
}

// TestSolve_Cancelled reports ctx.Err() for every system of a dead context.
func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	systems := []batch.System{
		{Name: "a", Matrix: mustDense(t, [][]float64{{1, 1}})},
		{Name: "b", Matrix: mustDense(t, [][]float64{{2, 4}})},
	}
	out, err := batch.Solve(ctx, systems)
	require.ErrorIs(t, err, context.Canceled)
	for _, o := range out {
		assert.ErrorIs(t, o.Err, context.Canceled)
		assert.Nil(t, o.Solution)
	}
}

// lateCancelCtx reports cancellation only after its Err has been consulted
// `after` times, i.e. once every system has already been dispatched.
type lateCancelCtx struct {
	context.Context
	after int32
	calls atomic.Int32
}

func (c *lateCancelCtx) Err() error {
	if c.calls.Add(1) > c.after {
		return context.Canceled
	}

	return nil
}

// TestSolve_CancelAfterCompletion keeps a fully solved batch error-free even
// when the context is cancelled by the time Solve returns.
func TestSolve_CancelAfterCompletion(t *testing.T) {
	ctx := &lateCancelCtx{Context: context.Background(), after: 2}

	out, err := batch.Solve(ctx, []batch.System{{Name: "only", Matrix: mustDense(t, [][]float64{{2, 4}})}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NoError(t, out[0].Err)
	require.NotNil(t, out[0].Solution)
	assert.Equal(t, []float64{2}, out[0].Solution.Values)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

// TestSolve_ForwardsOptions passes a coarse tolerance through to the solver.
func TestSolve_ForwardsOptions(t *testing.T) {
	systems := []batch.System{{Name: "x", Matrix: mustDense(t, [][]float64{{0.1, 1, 1}, {1, 0, 2}})}}

	out, err := batch.Solve(context.Background(), systems, batch.WithSolveOptions(gauss.WithTolerance(0.5)))
	require.NoError(t, err)
	require.NoError(t, out[0].Err)
	assert.Equal(t, gauss.KindSwap, out[0].Solution.Result.Steps[0].Kind())
}

// TestSolve_Logs emits one entry per system.
func TestSolve_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	systems := []batch.System{
		{Name: "a", Matrix: mustDense(t, [][]float64{{1, 1}})},
		{Name: "b", Matrix: mustDense(t, [][]float64{{0, 4}})},
	}

	_, err := batch.Solve(context.Background(), systems, batch.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, 2, logs.FilterMessage("batch: solved").Len())
}

func TestWithWorkers_Panics(t *testing.T) {
	assert.Panics(t, func() { batch.WithWorkers(0) })
}
