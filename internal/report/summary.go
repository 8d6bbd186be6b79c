// Package report turns a batch of cncengine results into the summary
// statistics, terminal sparkline and chart exports the CLI's report
// command surfaces. It never feeds anything back into the engine — it
// is strictly a presentation layer over cncengine.BatchResult.
package report

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
)

// Summary holds descriptive statistics for one numeric series across a
// batch of calculations.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

func summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("report: no values to summarize")
	}
	data := stats.Float64Data(values)

	mean, err := data.Mean()
	if err != nil {
		return Summary{}, fmt.Errorf("report: mean: %w", err)
	}
	median, err := data.Median()
	if err != nil {
		return Summary{}, fmt.Errorf("report: median: %w", err)
	}
	stddev, err := data.StandardDeviation()
	if err != nil {
		return Summary{}, fmt.Errorf("report: stddev: %w", err)
	}
	min, err := data.Min()
	if err != nil {
		return Summary{}, fmt.Errorf("report: min: %w", err)
	}
	max, err := data.Max()
	if err != nil {
		return Summary{}, fmt.Errorf("report: max: %w", err)
	}

	return Summary{Count: len(values), Mean: mean, Median: median, StdDev: stddev, Min: min, Max: max}, nil
}

// BatchSummary is the full descriptive-statistics report over one
// CalculateBatch run, covering the quantities an operator cares about
// when scanning a large parameter sweep for outliers.
type BatchSummary struct {
	MRR   Summary
	Power Summary
	Vf    Summary

	Succeeded int
	Failed    int
}

// Summarize computes BatchSummary over the successful results in
// results, silently excluding failed requests from the numeric series
// (their count is still reported via Failed).
func Summarize(results []cncengine.BatchResult) (BatchSummary, error) {
	var mrr, power, vf []float64
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		succeeded++
		mrr = append(mrr, r.Preset.MRR_cm3_min)
		power = append(power, r.Preset.Power_kW)
		vf = append(vf, r.Preset.Vf_mm_min)
	}

	if succeeded == 0 {
		return BatchSummary{Succeeded: succeeded, Failed: failed}, fmt.Errorf("report: all %d requests failed", failed)
	}

	mrrSummary, err := summarize(mrr)
	if err != nil {
		return BatchSummary{}, err
	}
	powerSummary, err := summarize(power)
	if err != nil {
		return BatchSummary{}, err
	}
	vfSummary, err := summarize(vf)
	if err != nil {
		return BatchSummary{}, err
	}

	return BatchSummary{
		MRR:       mrrSummary,
		Power:     powerSummary,
		Vf:        vfSummary,
		Succeeded: succeeded,
		Failed:    failed,
	}, nil
}
