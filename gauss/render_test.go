package gauss_test

import (
	"testing"

	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/stretchr/testify/assert"
)

// TestFormatOp covers every branch of the math renderer without running
// elimination at all.
func TestFormatOp(t *testing.T) {
	cases := []struct {
		name string
		op   gauss.Op
		want string
	}{
		{"swap", gauss.Swap{A: 0, B: 2}, "(R1 <=> R3)"},
		{"normalize", gauss.Normalize{Row: 1, Pivot: 2}, "(R2 => (1/2) * R2)"},
		{"normalize fraction", gauss.Normalize{Row: 0, Pivot: 1.0 / 3.0}, "(R1 => (1/0.333333) * R1)"},
		{"normalize negative", gauss.Normalize{Row: 0, Pivot: -4}, "(R1 => (1/-4) * R1)"},
		{"normalize by one is silent", gauss.Normalize{Row: 0, Pivot: 1}, ""},
		{"eliminate k=1", gauss.Elimination{Row: 1, PivotRow: 0, Factor: -1}, "(R2 + R1 => R2)"},
		{"eliminate k=-1", gauss.Elimination{Row: 1, PivotRow: 0, Factor: 1}, "(R2 - R1 => R2)"},
		{"eliminate k=-0.5", gauss.Elimination{Row: 2, PivotRow: 1, Factor: 0.5}, "(R3 + (-0.5) * R2 => R3)"},
		{"eliminate k=3", gauss.Elimination{Row: 3, PivotRow: 0, Factor: -3}, "(R4 + (3) * R1 => R4)"},
		{"eliminate k third", gauss.Elimination{Row: 1, PivotRow: 0, Factor: -1.0 / 3.0}, "(R2 + (0.333333) * R1 => R2)"},
		{"contradiction", gauss.Contradiction{Row: 1, Value: 5}, "(0 => 5)"},
		{"contradiction fraction", gauss.Contradiction{Row: 0, Value: -2.5}, "(0 => -2.5)"},
		{"nil op", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gauss.FormatOp(tc.op))
		})
	}
}

// TestDescribe checks the purpose sentences.
func TestDescribe(t *testing.T) {
	assert.Equal(t, "Swap rows to bring pivot into row 2.", gauss.Describe(gauss.Swap{A: 1, B: 3}))
	assert.Equal(t, "Normalize pivot at row 1 (make pivot = 1).", gauss.Describe(gauss.Normalize{Row: 0, Pivot: 2}))
	assert.Equal(t, "Eliminate entry in row 3, column 2.", gauss.Describe(gauss.Elimination{Row: 2, PivotRow: 1, Column: 1}))
	assert.Equal(t, "Inconsistent row detected at row 4: no solution.", gauss.Describe(gauss.Contradiction{Row: 3, Value: 1}))
	assert.Equal(t, "", gauss.Describe(nil))
}

// TestStepDisplayFallback shows Display falling back to the description.
func TestStepDisplayFallback(t *testing.T) {
	silent := gauss.Step{Op: gauss.Normalize{Row: 0, Pivot: 1}}
	assert.Equal(t, "Normalize pivot at row 1 (make pivot = 1).", silent.Display())

	loud := gauss.Step{Op: gauss.Swap{A: 0, B: 1}}
	assert.Equal(t, "(R1 <=> R2)", loud.Display())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "swap", gauss.KindSwap.String())
	assert.Equal(t, "normalize", gauss.KindNormalize.String())
	assert.Equal(t, "eliminate", gauss.KindEliminate.String())
	assert.Equal(t, "contradiction", gauss.KindContradiction.String())
	assert.Equal(t, "unknown", gauss.Kind(42).String())
}

func TestEliminateCoefficient(t *testing.T) {
	assert.Equal(t, -0.5, gauss.Elimination{Factor: 0.5}.Coefficient())
}
