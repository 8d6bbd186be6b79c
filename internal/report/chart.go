package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
)

// ExportEngagementChart plots each successful batch result as a point
// in (ae, ap) space, colouring by validation status, and saves it to
// filename. The file format is chosen from the extension (.png, .svg
// or .pdf), matching gonum/plot's own backend dispatch.
func ExportEngagementChart(results []cncengine.BatchResult, filename string) error {
	p := plot.New()
	p.Title.Text = "Radial / axial engagement envelope"
	p.X.Label.Text = "ae (mm)"
	p.Y.Label.Text = "ap (mm)"

	green := plotter.XYs{}
	yellow := plotter.XYs{}
	red := plotter.XYs{}

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		pt := plotter.XY{X: r.Preset.Ae_mm, Y: r.Preset.Ap_mm}
		switch r.Validation.Status {
		case cncengine.StatusGreen:
			green = append(green, pt)
		case cncengine.StatusYellow:
			yellow = append(yellow, pt)
		default:
			red = append(red, pt)
		}
	}

	if len(green)+len(yellow)+len(red) == 0 {
		return fmt.Errorf("report: no successful results to chart")
	}

	if err := addScatter(p, green, color.RGBA{G: 150, A: 255}); err != nil {
		return err
	}
	if err := addScatter(p, yellow, color.RGBA{R: 220, G: 180, A: 255}); err != nil {
		return err
	}
	if err := addScatter(p, red, color.RGBA{R: 200, A: 255}); err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("report: creating %s: %w", dir, err)
		}
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}

func addScatter(p *plot.Plot, pts plotter.XYs, col color.Color) error {
	if len(pts) == 0 {
		return nil
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("report: building scatter: %w", err)
	}
	scatter.GlyphStyle.Color = col
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	return nil
}
