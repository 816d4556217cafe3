package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/stlviewer/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stlview",
	Short: "Inspect, convert and render STL files",
	Long: `stlview reads ASCII and binary STL files and reports their mesh statistics:
facet and point counts, bounding box, volume and surface area.
It converts between the two STL encodings and renders snapshots to PNG or BMP.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default is the user config directory)")
	rootCmd.PersistentFlags().IntVar(&maxFacets, "max-facets", 0, "Refuse files with more facets than this (0 = no limit)")
	rootCmd.PersistentFlags().BoolVar(&strictASCII, "strict", false, "Reject ASCII records with unexpected keywords")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
