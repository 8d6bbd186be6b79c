package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocnc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocnc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gocnc v%s\n", version.Version)
		fmt.Println("Go CNC Cutting Parameter Engine")

		if version.GitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			fmt.Printf("Built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
