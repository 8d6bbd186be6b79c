package report

import (
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
)

// ExportEngagementSVG writes a lightweight SVG rendering of a single
// preset's radial/axial engagement rectangle against the tool diameter,
// for operators who want a quick inline preview without pulling in a
// full gonum/plot chart.
func ExportEngagementSVG(p cncengine.Preset, dc float64, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("report: creating %s: %w", filename, err)
	}
	defer f.Close()

	const (
		width  = 400
		height = 300
		margin = 40
		scale  = 12.0
	)

	canvas := svg.New(f)
	canvas.Start(width, height)
	canvas.Title(p.Name)

	canvas.Rect(margin, margin, int(dc*scale), int(dc*scale), "fill:none;stroke:#888;stroke-width:1")
	canvas.Text(margin, margin-8, fmt.Sprintf("DC = %.1f mm", dc), "font-size:12px")

	aeW := int(p.Ae_mm * scale)
	apH := int(p.Ap_mm * scale)
	canvas.Rect(margin, margin, aeW, apH, "fill:#2e8b57;fill-opacity:0.5")
	canvas.Text(margin, margin+apH+16, fmt.Sprintf("ae = %.3f mm, ap = %.3f mm", p.Ae_mm, p.Ap_mm), "font-size:12px")

	canvas.End()
	return nil
}
