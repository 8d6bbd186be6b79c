package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
	"github.com/spf13/cobra"
)

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List the available operations, grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		grouped := engine.OperationsByCategory()
		for _, category := range []cncengine.OperationCategory{
			cncengine.CatFace, cncengine.CatSlot, cncengine.CatGeometry, cncengine.CatSpecial,
		} {
			ops := grouped[category]
			if len(ops) == 0 {
				continue
			}
			fmt.Printf("%s:\n", category)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, op := range ops {
				fmt.Fprintf(w, "  %s\t%s\n", op.ID, op.Name)
			}
			w.Flush()
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(operationsCmd)
}
