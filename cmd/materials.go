package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the available materials",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tVC BASE (m/min)\tKC (N/mm2)")
		for _, m := range engine.Materials() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%.0f\n", m.ID, m.Name, m.Category, m.VcBase_m_min, m.Kc_N_mm2)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
