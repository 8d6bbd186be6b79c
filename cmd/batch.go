package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
	"github.com/spf13/cobra"
)

var batchInputPath string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run many calculations concurrently from a JSON request file",
	Long: `Read a JSON array of calculation requests and run them concurrently
via cncengine.CalculateBatch, printing one summary row per request.

Request file shape:
  [
    {
      "tool": {"dc_mm": 10, "lcf_mm": 25, "nof": 4},
      "material": "aluminium",
      "operation": "PARTIAL_SLOT_OP",
      "options": {"coating": "TiAlN", "quality": "standard", "coolant": "wet"}
    }
  ]`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchInputPath, "input", "", "path to a JSON batch request file")
	batchCmd.MarkFlagRequired("input")
}

type batchToolInput struct {
	DC_mm             float64 `json:"dc_mm"`
	LCF_mm            float64 `json:"lcf_mm"`
	OAL_mm            float64 `json:"oal_mm"`
	ShankDiameter_mm  float64 `json:"shank_diameter_mm"`
	NOF               int     `json:"nof"`
	CornerRadius_mm   float64 `json:"corner_radius_mm"`
	IncludedAngle_deg float64 `json:"included_angle_deg"`
}

type batchOptionsInput struct {
	Coating        string  `json:"coating"`
	Quality        string  `json:"quality"`
	Coolant        string  `json:"coolant"`
	ThreadPitch_mm float64 `json:"thread_pitch_mm"`
	SpindlePower   float64 `json:"spindle_power_kw"`
}

type batchRequestInput struct {
	Tool      batchToolInput    `json:"tool"`
	Material  string            `json:"material"`
	Operation string            `json:"operation"`
	Options   batchOptionsInput `json:"options"`
}

func loadBatchRequests(path string) ([]cncengine.BatchRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var inputs []batchRequestInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	reqs := make([]cncengine.BatchRequest, 0, len(inputs))
	for _, in := range inputs {
		reqs = append(reqs, cncengine.BatchRequest{
			Tool: cncengine.Tool{
				Geometry: cncengine.Geometry{
					DC_mm:             in.Tool.DC_mm,
					LCF_mm:            in.Tool.LCF_mm,
					OAL_mm:            in.Tool.OAL_mm,
					ShankDiameter_mm:  in.Tool.ShankDiameter_mm,
					NOF:               in.Tool.NOF,
					CornerRadius_mm:   in.Tool.CornerRadius_mm,
					IncludedAngle_deg: in.Tool.IncludedAngle_deg,
				},
			},
			MaterialID:  in.Material,
			OperationID: in.Operation,
			Options: cncengine.Options{
				Coating:        cncengine.Coating(in.Options.Coating),
				SurfaceQuality: cncengine.SurfaceQuality(in.Options.Quality),
				Coolant:        cncengine.CoolantMode(in.Options.Coolant),
				ThreadPitch_mm: in.Options.ThreadPitch_mm,
				SpindlePower:   in.Options.SpindlePower,
			},
		})
	}
	return reqs, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}
	reqs, err := loadBatchRequests(batchInputPath)
	if err != nil {
		return err
	}

	results := engine.CalculateBatch(reqs)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tMATERIAL\tOPERATION\tSTATUS\tVF (mm/min)\tMRR (cm3/min)\tPOWER (kW)")
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%d\t-\t-\tERROR\t-\t-\t-\n", i)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.1f\t%.2f\t%.3f\n",
			i, r.Preset.Material, r.Preset.Operation, r.Validation.Status,
			r.Preset.Vf_mm_min, r.Preset.MRR_cm3_min, r.Preset.Power_kW)
	}
	w.Flush()

	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "request %d failed: %v\n", i, r.Err)
		}
	}
	return nil
}
