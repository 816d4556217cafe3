package analysis

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/philipparndt/stlviewer/pkg/geometry"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EdgeInfo contains information about an edge in the model
type EdgeInfo struct {
	Start   geometry.Vector
	End     geometry.Vector
	Length  float64
	FacetID int
}

// EdgeReport summarizes the edges of all facets. Shared edges are listed
// once per facet.
type EdgeReport struct {
	Edges  []EdgeInfo
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// AnalyzeEdges collects the three edges of every facet
func AnalyzeEdges(facets []geometry.Facet) *EdgeReport {
	report := &EdgeReport{
		Edges: make([]EdgeInfo, 0, 3*len(facets)),
	}

	for i, f := range facets {
		lengths := f.EdgeLengths()
		for j := 0; j < 3; j++ {
			report.Edges = append(report.Edges, EdgeInfo{
				Start:   f.Vertices[j],
				End:     f.Vertices[(j+1)%3],
				Length:  lengths[j],
				FacetID: i,
			})
		}
	}

	if len(report.Edges) == 0 {
		return report
	}

	lengths := report.Lengths()
	report.Min = floats.Min(lengths)
	report.Max = floats.Max(lengths)
	report.Mean, report.StdDev = stat.MeanStdDev(lengths, nil)
	return report
}

// Count returns the number of edges in the report
func (r *EdgeReport) Count() int {
	return len(r.Edges)
}

// Lengths returns the edge lengths in facet order
func (r *EdgeReport) Lengths() []float64 {
	lengths := make([]float64, len(r.Edges))
	for i, e := range r.Edges {
		lengths[i] = e.Length
	}
	return lengths
}

// ByLength finds all edges within a length range
func (r *EdgeReport) ByLength(minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range r.Edges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// Longest returns the N longest edges in the model
func (r *EdgeReport) Longest(count int) []EdgeInfo {
	return r.sorted(count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// Shortest returns the N shortest edges in the model
func (r *EdgeReport) Shortest(count int) []EdgeInfo {
	return r.sorted(count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func (r *EdgeReport) sorted(count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(r.Edges))
	copy(edges, r.Edges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	if count < 0 {
		count = 0
	}
	return edges[:count]
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
