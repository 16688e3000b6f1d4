package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/katalvlaran/gaussteps/matrix"
	"github.com/katalvlaran/gaussteps/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solve(t *testing.T, rows [][]float64) *gauss.Solution {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	sol, err := gauss.Solve(m)
	require.NoError(t, err)

	return sol
}

func TestParseFormat(t *testing.T) {
	for _, f := range report.Formats() {
		got, err := report.ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	got, err := report.ParseFormat("MD")
	require.NoError(t, err)
	assert.Equal(t, report.FormatMarkdown, got)

	got, err = report.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, report.FormatText, got)

	_, err = report.ParseFormat("html")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestNilSolution(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, report.Text(&buf, "", nil), report.ErrNilSolution)
	require.ErrorIs(t, report.JSON(&buf, "", &gauss.Solution{}), report.ErrNilSolution)
	_, err := report.Markdown("", nil)
	require.ErrorIs(t, err, report.ErrNilSolution)
	require.ErrorIs(t, report.Write(&buf, report.Format("nope"), "", nil), report.ErrUnknownFormat)
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, "demo", solve(t, [][]float64{{2, 1, 5}, {1, 3, 10}})))
	out := buf.String()

	for _, want := range []string{
		"demo",
		"Step 1:", "(R1 => (1/2) * R1)", "Matrix after step 1",
		"Step 2:", "(R2 - R1 => R2)",
		"Step 3:", "(R2 => (1/2.5) * R2)",
		"0.5", "2.5",
		"Final matrix",
		"X = 1", "Y = 3",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Step 1:"), strings.Index(out, "Step 2:"))
}

func TestText_Singular(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, "", solve(t, [][]float64{{1, 0, 0}, {0, 0, 5}})))
	out := buf.String()
	assert.Contains(t, out, "(0 => 5)")
	assert.Contains(t, out, gauss.SingularNote)
	assert.NotContains(t, out, "X =")
}

func TestText_NoSteps(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, "", solve(t, [][]float64{{1, 1, 3}})))
	out := buf.String()
	assert.NotContains(t, out, "Step 1:")
	assert.Contains(t, out, "X = 3")
	assert.Contains(t, out, "Y = 0")
}

func TestMarkdown(t *testing.T) {
	md, err := report.Markdown("", solve(t, [][]float64{{2, 1, 5}, {1, 3, 10}}))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# Gaussian elimination\n"))
	assert.Contains(t, md, "## Step 1\n\n`(R1 => (1/2) * R1)`\n\nNormalize pivot at row 1 (make pivot = 1).")
	assert.Contains(t, md, "| X | Y | = |\n| ---: | ---: | ---: |\n| 1 | 0.5 | 2.5 |\n| 1 | 3 | 10 |\n")
	assert.Contains(t, md, "- **X** = 1\n- **Y** = 3\n")
}

func TestMarkdown_Singular(t *testing.T) {
	md, err := report.Markdown("bad", solve(t, [][]float64{{0, 0, 2}}))
	require.NoError(t, err)
	assert.Contains(t, md, "# bad")
	assert.Contains(t, md, "> "+gauss.SingularNote)
}

func TestPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Pretty(&buf, "demo", solve(t, [][]float64{{2, 1, 5}, {1, 3, 10}}), "notty"))
	out := buf.String()
	assert.Contains(t, out, "Step 1")
	assert.Contains(t, out, "Final matrix")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatJSON, "demo", solve(t, [][]float64{{2, 1, 5}, {1, 3, 10}})))

	var rep report.JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	assert.Equal(t, "demo", rep.Title)
	require.Len(t, rep.Steps, 3)
	assert.Equal(t, report.JSONStep{
		Index:       1,
		Kind:        "normalize",
		Math:        "(R1 => (1/2) * R1)",
		Description: "Normalize pivot at row 1 (make pivot = 1).",
		Matrix:      [][]string{{"1", "0.5", "2.5"}, {"1", "3", "10"}},
	}, rep.Steps[0])
	assert.Equal(t, [][]string{{"1", "0.5", "2.5"}, {"0", "1", "3"}}, rep.Echelon)
	assert.False(t, rep.Singular)
	assert.Equal(t, []report.JSONVariable{{Name: "X", Value: "1"}, {Name: "Y", Value: "3"}}, rep.Variables)
	assert.Empty(t, rep.Note)
}

func TestJSON_Singular(t *testing.T) {
	rep, err := report.NewJSONReport("", solve(t, [][]float64{{1, 0, 0}, {0, 0, 5}}))
	require.NoError(t, err)
	assert.True(t, rep.Singular)
	assert.Equal(t, gauss.SingularNote, rep.Note)
	assert.Empty(t, rep.Variables)
	assert.Equal(t, "contradiction", rep.Steps[len(rep.Steps)-1].Kind)
}

func TestWrite_AllFormats(t *testing.T) {
	sol := solve(t, [][]float64{{1, 1, 3}})
	for _, f := range []report.Format{report.FormatText, report.FormatMarkdown, report.FormatJSON} {
		var buf bytes.Buffer
		require.NoError(t, report.Write(&buf, f, "", sol), "format %s", f)
		assert.NotEmpty(t, buf.String())
	}
}
