package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocnc/internal/display"
	"github.com/alexiusacademia/gocnc/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportInputPath string
	reportChartPath string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a batch run: descriptive statistics, sparkline, optional chart export",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportInputPath, "input", "", "path to a JSON batch request file (same shape as 'gocnc batch --input')")
	reportCmd.Flags().StringVar(&reportChartPath, "chart", "", "optional path to export an ae/ap engagement chart (.png, .svg or .pdf)")
	reportCmd.MarkFlagRequired("input")
}

func runReport(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}
	reqs, err := loadBatchRequests(reportInputPath)
	if err != nil {
		return err
	}

	results := engine.CalculateBatch(reqs)

	summary, err := report.Summarize(results)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(display.SummaryBox("BATCH REPORT", []string{
		fmt.Sprintf("Succeeded: %d   Failed: %d", summary.Succeeded, summary.Failed),
	}))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMEAN\tMEDIAN\tSTDDEV\tMIN\tMAX")
	fmt.Fprintf(w, "MRR (cm3/min)\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n", summary.MRR.Mean, summary.MRR.Median, summary.MRR.StdDev, summary.MRR.Min, summary.MRR.Max)
	fmt.Fprintf(w, "Power (kW)\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n", summary.Power.Mean, summary.Power.Median, summary.Power.StdDev, summary.Power.Min, summary.Power.Max)
	fmt.Fprintf(w, "Vf (mm/min)\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n", summary.Vf.Mean, summary.Vf.Median, summary.Vf.StdDev, summary.Vf.Min, summary.Vf.Max)
	w.Flush()

	if spark := report.MRRSparkline(results); spark != "" {
		fmt.Println()
		fmt.Println(spark)
	}

	if reportChartPath != "" {
		if err := report.ExportEngagementChart(results, reportChartPath); err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		fmt.Println()
		fmt.Printf("  Chart written to %s\n", reportChartPath)
	}
	fmt.Println()
	return nil
}
