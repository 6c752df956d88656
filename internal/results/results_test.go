package results

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() *Results {
	r := New("Flat Betting - Max Caution - No Card Count", 500, 16, 3, 5000)
	r.Notes = "baseline run"
	r.Busts = 1
	r.Scores = [][]int{
		{5000, 4500, 5500},
		{5000, 5500},
		{5000, 4500, 4000, 3500},
	}
	return r
}

func TestNewFillsMetadata(t *testing.T) {
	r := New("test", 100, 2, 10, 1_000)

	assert.NotEmpty(t, r.RunID)
	assert.NotEmpty(t, r.CreatedAt)
	assert.NotEqual(t, r.RunID, New("test", 100, 2, 10, 1_000).RunID)
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	r := sampleResults()

	path, err := r.WriteFile(filepath.Join(dir, "run.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "run.json"), path)

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, r, loaded)
}

func TestWriteFileRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	r := sampleResults()

	for i, want := range []string{"run.json", "run_1.json", "run_2.json"} {
		path, err := r.WriteFile(filepath.Join(dir, "run.json"))
		require.NoErrorf(t, err, "write %d", i)
		assert.Equal(t, filepath.Join(dir, want), path)
	}
}

func TestEncodeIsValidJSON(t *testing.T) {
	data, err := sampleResults().encode()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "scores")
	assert.Contains(t, decoded, "run_id")
}

func TestEncodeOneGamePerLine(t *testing.T) {
	data, err := sampleResults().encode()
	require.NoError(t, err)

	assert.Contains(t, string(data), "    [5000,4500,5500],\n")
	assert.Contains(t, string(data), "    [5000,4500,4000,3500]\n")
}

func TestEncodeEmptyScores(t *testing.T) {
	r := New("empty", 100, 2, 0, 1_000)
	data, err := r.encode()
	require.NoError(t, err)

	var decoded Results
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Empty(t, decoded.Scores)
}

func TestReadFileErrors(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = ReadFile(bad)
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(sampleResults())
	require.NoError(t, err)

	assert.Equal(t, 3, s.Games)
	assert.Equal(t, 4, s.Rounds)

	// Finals are 5500, 5500 and 3500.
	assert.InDelta(t, 4833.333, s.MeanFinal, 0.001)
	assert.InDelta(t, -166.667, s.MeanProfit, 0.001)
	assert.InDelta(t, 942.809, s.StdDevFinal, 0.001)
	assert.InDelta(t, 3.0, s.MeanRounds, 1e-9)
	assert.InDelta(t, 100.0/3, s.BustPercent, 1e-9)

	// After padding: col 0 = 5000, col 3 = (5500+5500+3500)/3.
	require.Len(t, s.RoundAverages, 4)
	assert.InDelta(t, 5000, s.RoundAverages[0], 1e-9)
	assert.InDelta(t, 4833.333, s.RoundAverages[3], 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	r := New("empty", 100, 2, 0, 1_000)
	_, err := Summarize(r)
	assert.Error(t, err)
}

func TestLoadAllPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"alpha", "beta", "gamma"} {
		r := New(name, 100, 2, 1, 1_000)
		r.Scores = [][]int{{1_000}}
		path, err := r.WriteFile(filepath.Join(dir, name+".json"))
		require.NoError(t, err)
		paths = append(paths, path)
	}

	loaded, err := LoadAll(paths)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	for i, name := range []string{"alpha", "beta", "gamma"} {
		assert.Equal(t, name, loaded[i].Name)
	}
}

func TestLoadAllReportsFirstFailure(t *testing.T) {
	_, err := LoadAll([]string{filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, err)
}

func TestPadScores(t *testing.T) {
	padded, longest := padScores([][]int{
		{10, 20},
		{5},
		{1, 2, 3},
	})

	assert.Equal(t, 3, longest)
	assert.Equal(t, [][]int{
		{10, 20, 20},
		{5, 5, 5},
		{1, 2, 3},
	}, padded)
}

func TestLinearFit(t *testing.T) {
	slope, intercept := linearFit([]float64{3, 5, 7, 9})
	assert.InDelta(t, 2, slope, 1e-9)
	assert.InDelta(t, 3, intercept, 1e-9)

	slope, intercept = linearFit([]float64{42})
	assert.Zero(t, slope)
	assert.InDelta(t, 42, intercept, 1e-9)

	slope, intercept = linearFit(nil)
	assert.Zero(t, slope)
	assert.Zero(t, intercept)
}
