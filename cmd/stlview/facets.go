package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/stlviewer/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	facetCount    int
	facetLargest  bool
	facetSmallest bool
	facetNormals  bool
)

type facetInfo struct {
	Index     int
	Area      float64
	Perimeter float64
	Vertices  string
	// NormalDeviation is the angle in degrees between the stored and the
	// computed normal, or NaN when the stored normal is zero.
	NormalDeviation float64
}

var facetsCmd = &cobra.Command{
	Use:     "facets [file]",
	Aliases: []string{"triangles"},
	Short:   "Analyze facets in an STL file",
	Long:    "Display information about facets including area, perimeter, and vertex positions.",
	Args:    cobra.ExactArgs(1),
	RunE:    runFacets,
}

func init() {
	rootCmd.AddCommand(facetsCmd)

	facetsCmd.Flags().IntVarP(&facetCount, "count", "n", 10, "Number of facets to display")
	facetsCmd.Flags().BoolVarP(&facetLargest, "largest", "l", false, "Show largest facets by area")
	facetsCmd.Flags().BoolVarP(&facetSmallest, "smallest", "s", false, "Show smallest facets by area")
	facetsCmd.Flags().BoolVar(&facetNormals, "normals", false, "Show how far stored normals deviate from computed ones")

	facetsCmd.MarkFlagsMutuallyExclusive("largest", "smallest")
}

func runFacets(cmd *cobra.Command, args []string) error {
	filename := args[0]

	s, err := loadFile(cmd, filename, false)
	if err != nil {
		return err
	}
	defer s.Close()

	facets := make([]facetInfo, 0, s.Mesh().FacetCount())
	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0

	for i, f := range s.Mesh().Facets {
		area := f.Area()

		deviation := math.NaN()
		if stored := f.Normal.Normalize(); stored.Magnitude() > 0 {
			cos := math.Max(-1, math.Min(1, float64(stored.Dot(f.CalculateNormal()))))
			deviation = math.Acos(cos) * 180 / math.Pi
		}

		facets = append(facets, facetInfo{
			Index:     i,
			Area:      area,
			Perimeter: f.Perimeter(),
			Vertices: fmt.Sprintf("%s, %s, %s",
				analysis.FormatVector(f.Vertices[0]),
				analysis.FormatVector(f.Vertices[1]),
				analysis.FormatVector(f.Vertices[2])),
			NormalDeviation: deviation,
		})

		totalArea += area
		minArea = math.Min(minArea, area)
		maxArea = math.Max(maxArea, area)
	}

	if facetLargest {
		sort.SliceStable(facets, func(i, j int) bool {
			return facets[i].Area > facets[j].Area
		})
	} else if facetSmallest {
		sort.SliceStable(facets, func(i, j int) bool {
			return facets[i].Area < facets[j].Area
		})
	}

	count := min(facetCount, len(facets))

	var title string
	if facetLargest {
		title = fmt.Sprintf("Top %d Largest Facets", count)
	} else if facetSmallest {
		title = fmt.Sprintf("Top %d Smallest Facets", count)
	} else {
		title = fmt.Sprintf("First %d Facets", count)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total facets: %d\n", len(facets))
	if len(facets) == 0 {
		return nil
	}
	fmt.Fprintf(out, "Total surface area: %.6f square units\n", totalArea)
	fmt.Fprintf(out, "Min facet area: %.6f square units\n", minArea)
	fmt.Fprintf(out, "Max facet area: %.6f square units\n", maxArea)
	fmt.Fprintf(out, "Avg facet area: %.6f square units\n\n", totalArea/float64(len(facets)))

	for _, f := range facets[:count] {
		fmt.Fprintf(out, "Facet #%d:\n", f.Index)
		fmt.Fprintf(out, "  Area: %.6f square units\n", f.Area)
		fmt.Fprintf(out, "  Perimeter: %.6f units\n", f.Perimeter)
		fmt.Fprintf(out, "  Vertices: %s\n", f.Vertices)
		if facetNormals {
			if math.IsNaN(f.NormalDeviation) {
				fmt.Fprintln(out, "  Normal deviation: no stored normal")
			} else {
				fmt.Fprintf(out, "  Normal deviation: %.3f degrees\n", f.NormalDeviation)
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}
