package report

import (
	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
)

// MRRSparkline renders a terminal ASCII chart of material removal rate
// across a batch, so an operator scanning a parameter sweep can spot
// outliers without leaving the shell.
func MRRSparkline(results []cncengine.BatchResult) string {
	var series []float64
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		series = append(series, r.Preset.MRR_cm3_min)
	}
	if len(series) < 2 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Caption("MRR (cm3/min) across batch"),
	)
}
