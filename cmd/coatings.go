package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
	"github.com/spf13/cobra"
)

var coatingsCmd = &cobra.Command{
	Use:   "coatings",
	Short: "List the available tool coatings and surface quality levels",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("COATINGS (vc multiplier):")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, c := range cncengine.Coatings() {
			note := ""
			if c.Coating.ForbiddenOnFerrous() {
				note = "(non-ferrous only)"
			}
			fmt.Fprintf(w, "  %s\t%.2fx\t%s\n", c.Coating, c.Factor, note)
		}
		w.Flush()

		fmt.Println()
		fmt.Println("SURFACE QUALITY (ae / ap / feed multipliers):")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, q := range cncengine.SurfaceQualities() {
			fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\n", q.Quality, q.Multipliers.Ae, q.Multipliers.Ap, q.Multipliers.Feed)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(coatingsCmd)
}
