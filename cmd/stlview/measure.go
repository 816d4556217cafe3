package main

import (
	"fmt"

	"github.com/philipparndt/stlviewer/pkg/analysis"
	"github.com/philipparndt/stlviewer/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure distance between two points",
	Long: `Measure the straight-line distance between two 3D points
and between the mesh vertices nearest to them.`,
	Args: cobra.ExactArgs(1),
	RunE: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runMeasure(cmd *cobra.Command, args []string) error {
	filename := args[0]

	prefs, err := loadSettings()
	if err != nil {
		return err
	}

	p1 := geometry.NewVector(float32(point1X), float32(point1Y), float32(point1Z))
	p2 := geometry.NewVector(float32(point2X), float32(point2Y), float32(point2Z))

	s, err := loadFile(cmd, filename, false)
	if err != nil {
		return err
	}
	defer s.Close()

	format := func(v float64) string {
		return analysis.FormatMeasurement(v, prefs.Precision, prefs.Units)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Point-to-Point Measurement")
	fmt.Fprintln(out, "==========================")

	nearest1, dist1, ok1 := analysis.FindNearestVertex(s.Mesh().Facets, p1)
	nearest2, dist2, ok2 := analysis.FindNearestVertex(s.Mesh().Facets, p2)

	fmt.Fprintf(out, "\nPoint 1: %s\n", analysis.FormatVector(p1))
	if ok1 && dist1 > 0 {
		fmt.Fprintf(out, "  Nearest vertex: %s (distance: %s)\n", analysis.FormatVector(nearest1), format(dist1))
	}

	fmt.Fprintf(out, "\nPoint 2: %s\n", analysis.FormatVector(p2))
	if ok2 && dist2 > 0 {
		fmt.Fprintf(out, "  Nearest vertex: %s (distance: %s)\n", analysis.FormatVector(nearest2), format(dist2))
	}

	fmt.Fprintf(out, "\nDirect distance: %s\n", format(float64(p1.Distance(p2))))

	if ok1 && ok2 && (dist1 > 0 || dist2 > 0) {
		fmt.Fprintf(out, "Distance between nearest vertices: %s\n", format(float64(nearest1.Distance(nearest2))))
	}
	return nil
}
