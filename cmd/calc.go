package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
	"github.com/alexiusacademia/gocnc/internal/display"
	"github.com/alexiusacademia/gocnc/internal/report"
	"github.com/spf13/cobra"
)

var (
	calcDC       float64
	calcLCF      float64
	calcOAL      float64
	calcShankDia float64
	calcNOF      int
	calcCorner   float64
	calcAngle    float64

	calcMaterial string
	calcOp       string

	calcCoating      string
	calcQuality      string
	calcCoolant      string
	calcThreadPitch  float64
	calcSpindlePower float64

	calcSVGPath string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate cutting parameters for one tool/material/operation combination",
	Long: `Run the full calculation pipeline for a single tool, material and
operation, and print the resulting preset and its safety validation.

Examples:
  gocnc calc --dc 10 --lcf 25 --nof 4 --material aluminium --op PARTIAL_SLOT_OP

  gocnc calc --dc 6 --lcf 18 --nof 2 --material steel_mild --op TROCHOIDAL_SLOT_OP \
    --coating TiAlN --quality finishing --coolant mql`,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().Float64Var(&calcDC, "dc", 0, "cutting diameter (mm)")
	calcCmd.Flags().Float64Var(&calcLCF, "lcf", 0, "length of cut / usable flute length (mm)")
	calcCmd.Flags().Float64Var(&calcOAL, "oal", 0, "overall length (mm), optional")
	calcCmd.Flags().Float64Var(&calcShankDia, "shank", 0, "shank diameter (mm), optional")
	calcCmd.Flags().IntVar(&calcNOF, "nof", 2, "number of flutes (1-12)")
	calcCmd.Flags().Float64Var(&calcCorner, "corner-radius", 0, "corner radius (mm), for radius-contour operations")
	calcCmd.Flags().Float64Var(&calcAngle, "included-angle", 0, "included angle (deg), for V-groove/chamfer operations")

	calcCmd.Flags().StringVar(&calcMaterial, "material", "", "material id (see 'gocnc materials')")
	calcCmd.Flags().StringVar(&calcOp, "op", "", "operation id (see 'gocnc operations')")

	calcCmd.Flags().StringVar(&calcCoating, "coating", "none", "tool coating: none, TiN, TiAlN, AlTiN, diamond, carbide")
	calcCmd.Flags().StringVar(&calcQuality, "quality", "standard", "surface quality: roughing, standard, finishing, high-finish")
	calcCmd.Flags().StringVar(&calcCoolant, "coolant", "wet", "coolant mode: wet, dry, mql")
	calcCmd.Flags().Float64Var(&calcThreadPitch, "thread-pitch", 0, "thread pitch (mm), required for THREADING_OP")
	calcCmd.Flags().Float64Var(&calcSpindlePower, "spindle-power", 0, "available spindle power (kW), default 6.0")
	calcCmd.Flags().StringVar(&calcSVGPath, "svg", "", "optional path to export an ae/ap engagement rectangle as SVG")

	calcCmd.MarkFlagRequired("dc")
	calcCmd.MarkFlagRequired("lcf")
	calcCmd.MarkFlagRequired("material")
	calcCmd.MarkFlagRequired("op")
}

func runCalc(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}

	tool := cncengine.Tool{
		ID: "cli-tool",
		Geometry: cncengine.Geometry{
			DC_mm:             calcDC,
			LCF_mm:            calcLCF,
			OAL_mm:            calcOAL,
			ShankDiameter_mm:  calcShankDia,
			NOF:               calcNOF,
			CornerRadius_mm:   calcCorner,
			IncludedAngle_deg: calcAngle,
		},
	}

	opts := cncengine.Options{
		Coating:        cncengine.Coating(calcCoating),
		SurfaceQuality: cncengine.SurfaceQuality(calcQuality),
		Coolant:        cncengine.CoolantMode(calcCoolant),
		ThreadPitch_mm: calcThreadPitch,
		SpindlePower:   calcSpindlePower,
	}

	preset, validation, err := engine.Calculate(tool, calcMaterial, calcOp, opts)
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}

	printPreset(preset)
	printValidation(validation)

	if calcSVGPath != "" {
		if err := report.ExportEngagementSVG(preset, calcDC, calcSVGPath); err != nil {
			return fmt.Errorf("exporting svg: %w", err)
		}
		fmt.Printf("  SVG written to %s\n\n", calcSVGPath)
	}
	return nil
}

func printPreset(p cncengine.Preset) {
	fmt.Println()
	fmt.Println(display.SummaryBox("PRESET: "+p.Name, []string{
		fmt.Sprintf("%s / %s", p.Material, p.Operation),
		fmt.Sprintf("vc %.1f m/min   n %.0f rpm   vf %.1f mm/min", p.VcFinal_m_min, p.N_rpm, p.Vf_mm_min),
	}))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s\n", p.Material)
	fmt.Fprintf(w, "  Operation:\t%s\n", p.Operation)
	fmt.Fprintf(w, "  L/D ratio:\t%.2f (%s)\n", p.LDRatio, p.LengthClass)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Cutting speed vc:\t%.1f m/min (base %.1f x coating %.2f)\n", p.VcFinal_m_min, p.VcBase_m_min, p.CoatingFactor)
	fmt.Fprintf(w, "  Spindle speed n:\t%.0f rpm\n", p.N_rpm)
	fmt.Fprintf(w, "  Chip load fz:\t%.4f mm (base %.4f)\n", p.FzFinal_mm, p.FzBase_mm)
	fmt.Fprintf(w, "  Feed rate vf:\t%.1f mm/min\n", p.Vf_mm_min)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Radial engagement ae:\t%.3f mm\n", p.Ae_mm)
	fmt.Fprintf(w, "  Axial depth ap:\t%.3f mm (reference: %s)\n", p.Ap_mm, p.AxialReferenceUsed)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Material removal rate:\t%.2f cm3/min\n", p.MRR_cm3_min)
	fmt.Fprintf(w, "  Required power:\t%.3f kW\n", p.Power_kW)
	fmt.Fprintf(w, "  Torque:\t%.2f Nm\n", p.Torque_Nm)
	fmt.Fprintf(w, "  Chip temperature:\t%.1f C\n", p.ChipTemp_C)
	fmt.Fprintf(w, "  Chip formation:\t%s\n", p.ChipFormation)
	w.Flush()

	fmt.Println()
	fmt.Println("  AUXILIARY FEEDS:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "    Entry:\t%.1f mm/min\n", p.Aux.Entry_mm_min)
	fmt.Fprintf(w, "    Exit:\t%.1f mm/min\n", p.Aux.Exit_mm_min)
	fmt.Fprintf(w, "    Ramp:\t%.1f mm/min (angle %.1f deg)\n", p.Aux.Ramp_mm_min, p.Aux.RampAngle_deg)
	fmt.Fprintf(w, "    Plunge:\t%.1f mm/min\n", p.Aux.Plunge_mm_min)
	fmt.Fprintf(w, "    Transition:\t%.1f mm/min\n", p.Aux.Transition_mm_min)
	w.Flush()

	if len(p.StabilityWarnings) > 0 {
		fmt.Println()
		fmt.Println("  STABILITY WARNINGS:")
		for _, sw := range p.StabilityWarnings {
			fmt.Printf("    [%s] %s\n", sw.Code, sw.Message)
		}
	}
	fmt.Println()
}

func printValidation(v cncengine.ValidationResult) {
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  VALIDATION: %s\n", v.Status)
	fmt.Println("───────────────────────────────────────────────────────────────")

	printDiagnostics("ERRORS", v.Errors)
	printDiagnostics("WARNINGS", v.Warnings)
	printDiagnostics("RECOMMENDATIONS", v.Recommendations)

	if v.LimitsApplied.UsedDefaults {
		fmt.Println()
		fmt.Println("  (no specific limits for this combination; conservative defaults applied)")
	}
	fmt.Println()
}

func printDiagnostics(label string, diags []cncengine.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  %s:\n", label)
	for _, d := range diags {
		fmt.Printf("    [%s] %s (%.3f / %.3f %s)\n", d.Check, d.Message, d.Value, d.Limit, d.Unit)
		if d.Hint != "" {
			fmt.Printf("        hint: %s\n", d.Hint)
		}
	}
}
