package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
)

func okResult(mrr, power, vf float64) cncengine.BatchResult {
	return cncengine.BatchResult{Preset: cncengine.Preset{MRR_cm3_min: mrr, Power_kW: power, Vf_mm_min: vf}}
}

func TestSummarize_ExcludesFailedFromSeriesButCountsThem(t *testing.T) {
	results := []cncengine.BatchResult{
		okResult(10, 1, 1000),
		okResult(30, 3, 3000),
		{Err: assert.AnError},
	}

	summary, err := Summarize(results)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)

	assert.Equal(t, 2, summary.MRR.Count)
	assert.InDelta(t, 20.0, summary.MRR.Mean, 1e-9)
	assert.InDelta(t, 20.0, summary.MRR.Median, 1e-9)
	assert.InDelta(t, 10.0, summary.MRR.Min, 1e-9)
	assert.InDelta(t, 30.0, summary.MRR.Max, 1e-9)
	assert.Greater(t, summary.MRR.StdDev, 0.0)

	assert.InDelta(t, 2.0, summary.Power.Mean, 1e-9)
	assert.InDelta(t, 2000.0, summary.Vf.Mean, 1e-9)
}

func TestSummarize_AllFailedReturnsError(t *testing.T) {
	results := []cncengine.BatchResult{
		{Err: assert.AnError},
		{Err: assert.AnError},
	}

	summary, err := Summarize(results)
	require.Error(t, err)
	assert.Equal(t, 0, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
}
