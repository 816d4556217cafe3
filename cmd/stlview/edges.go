package main

import (
	"fmt"

	"github.com/philipparndt/stlviewer/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	edgesCount     int
	edgesLongest   bool
	edgesShortest  bool
	edgesMinLength float64
	edgesMaxLength float64
	edgesHistogram string
	edgesBins      int
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "Analyze and measure edges in an STL file",
	Long: `Find and measure edges, including longest, shortest, or edges within a specific length range.
Edges shared by two facets are listed once per facet.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.Flags().Float64Var(&edgesMinLength, "min", 0.0, "Minimum edge length filter")
	edgesCmd.Flags().Float64Var(&edgesMaxLength, "max", 0.0, "Maximum edge length filter")
	edgesCmd.Flags().StringVar(&edgesHistogram, "histogram", "", "Plot the edge length distribution to this image (png, svg, pdf)")
	edgesCmd.Flags().IntVar(&edgesBins, "bins", 20, "Number of histogram bins")

	edgesCmd.MarkFlagsMutuallyExclusive("longest", "shortest")
}

func runEdges(cmd *cobra.Command, args []string) error {
	filename := args[0]

	s, err := loadFile(cmd, filename, false)
	if err != nil {
		return err
	}
	defer s.Close()

	report := analysis.AnalyzeEdges(s.Mesh().Facets)
	out := cmd.OutOrStdout()

	var edges []analysis.EdgeInfo
	var title string

	if edgesLongest {
		edges = report.Longest(edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	} else if edgesShortest {
		edges = report.Shortest(edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	} else if edgesMaxLength > 0 {
		edges = report.ByLength(edgesMinLength, edgesMaxLength)
		title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", edgesMinLength, edgesMaxLength, len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	} else {
		edges = report.Edges
		title = fmt.Sprintf("All Edges (showing first %d of %d)", min(edgesCount, len(edges)), len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total edges in model: %d\n", report.Count())
	fmt.Fprintf(out, "Min edge length: %.6f units\n", report.Min)
	fmt.Fprintf(out, "Max edge length: %.6f units\n", report.Max)
	fmt.Fprintf(out, "Avg edge length: %.6f units\n", report.Mean)
	fmt.Fprintf(out, "Std deviation: %.6f units\n\n", report.StdDev)

	if len(edges) > 0 {
		fmt.Fprintf(out, "%-6s %-6s %-35s %-35s %-15s\n", "Index", "Facet", "Start", "End", "Length")
		fmt.Fprintln(out, "------------------------------------------------------------------------------------------------------------------")
		for i, edge := range edges {
			fmt.Fprintf(out, "%-6d %-6d %-35s %-35s %-15.6f\n",
				i+1,
				edge.FacetID,
				analysis.FormatVector(edge.Start),
				analysis.FormatVector(edge.End),
				edge.Length)
		}
	} else {
		fmt.Fprintln(out, "No edges found matching the criteria.")
	}

	if edgesHistogram != "" {
		if err := report.SaveHistogram(edgesHistogram, edgesBins); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nHistogram saved to %s\n", edgesHistogram)
	}
	return nil
}
