package gauss_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/katalvlaran/gaussteps/matrix"
	"github.com/stretchr/testify/require"
)

// denseComparer lets cmp walk Steps, whose snapshots have unexported storage.
var denseComparer = cmp.Comparer(func(a, b *matrix.Dense) bool { return a.Equal(b) })

// mustDense builds a Dense or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// kinds lists the variant tags of steps in order.
func kinds(steps []gauss.Step) []gauss.Kind {
	out := make([]gauss.Kind, len(steps))
	for i, s := range steps {
		out[i] = s.Kind()
	}

	return out
}

// maths lists the rendered math strings of steps in order.
func maths(steps []gauss.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Math()
	}

	return out
}
