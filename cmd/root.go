package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocnc/internal/version"
	"github.com/spf13/cobra"
)

// configDir, when set via --config-dir, points at a YAML override
// directory loaded instead of the embedded tables (see internal/cncengine/config).
var configDir string

var rootCmd = &cobra.Command{
	Use:   "gocnc",
	Short: "CNC Cutting Parameter Engine",
	Long: `gocnc - Go CNC Cutting Parameter Engine

A CLI tool that derives safe, material- and tool-aware cutting
parameters for CNC milling operations.

This tool helps machinists and CAM programmers compute:
  - Spindle speed, feed rate and chip load
  - Radial and axial depth of cut
  - Material removal rate and required spindle power
  - Auxiliary feed rates (entry, exit, ramp, plunge)
  - Multi-level safety validation against a configurable limit matrix

All calculations are deterministic and derived from the built-in
material, operation and limit tables (overridable with --config-dir).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocnc v%-49s║\n", version.Version)
		fmt.Println("  ║   Go CNC Cutting Parameter Engine                         ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Derives safe cutting parameters for CNC milling operations.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Spindle speed, feed rate and chip load calculation")
		fmt.Println("    • Depth-of-cut resolution with a tool/material decision tree")
		fmt.Println("    • Material removal rate and spindle power estimation")
		fmt.Println("    • Multi-level parameter validation (V1-V5)")
		fmt.Println("    • Batch calculation and chart/report export")
		fmt.Println()
		fmt.Println("  Use 'gocnc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory of materials.yaml/operations.yaml/operation_limits.yaml to use instead of the built-in tables")
}
