package analysis

import (
	"math"
	"slices"

	"github.com/philipparndt/stlviewer/pkg/geometry"
	"github.com/philipparndt/stlviewer/pkg/stl"
)

// Stats is the geometric summary of a mesh.
type Stats struct {
	Header     string
	Format     stl.Format
	FacetCount int
	// NumPoints counts distinct vertex positions. Positions are compared
	// exactly, so vertices that differ only by rounding are not merged.
	NumPoints int
	Min       geometry.Vector
	Max       geometry.Vector
	Size      geometry.Vector
	// BoundingDiameter is the length of the bounding box diagonal.
	BoundingDiameter float64
	// ShortestEdge is a rough scale estimate: the largest per-axis distance
	// between the first two vertices of the first facet. It is not the
	// shortest edge of the mesh.
	ShortestEdge float64
	// Volume is only meaningful for a closed, consistently oriented mesh.
	Volume  float64
	Surface float64
}

// Center returns the center of the bounding box
func (s Stats) Center() geometry.Vector {
	return geometry.NewVector(
		(s.Min.X+s.Max.X)/2,
		(s.Min.Y+s.Max.Y)/2,
		(s.Min.Z+s.Max.Z)/2,
	)
}

// Compute derives the statistics of a mesh in one pass over its facets
func Compute(m *stl.Mesh) Stats {
	acc := NewAccumulator(len(m.Facets))
	for _, f := range m.Facets {
		acc.Add(f)
	}
	return acc.Stats(m.Header, m.Format)
}

// Accumulator computes Stats facet by facet, so that a mesh can be
// summarized while it is streamed without keeping its facets.
// Only vertex positions are retained, for the distinct point count, so
// memory use is still linear in the number of facets.
type Accumulator struct {
	bbox         geometry.BoundingBox
	ref          geometry.Vector
	count        int
	shortestEdge float64
	area         float64
	volume       float64
	points       []geometry.Vector
}

// NewAccumulator creates an accumulator sized for about n facets
func NewAccumulator(n int) *Accumulator {
	if n < 0 {
		n = 0
	}
	return &Accumulator{points: make([]geometry.Vector, 0, 3*n)}
}

// Add folds one facet into the running statistics
func (a *Accumulator) Add(f geometry.Facet) {
	if a.count == 0 {
		// Any point works as the volume reference; use the first one.
		a.ref = f.Vertices[0]
		a.shortestEdge = float64(f.Vertices[0].Sub(f.Vertices[1]).Abs().MaxComponent())
	}
	a.count++

	for _, v := range f.Vertices {
		a.bbox.Extend(v)
		a.points = append(a.points, v)
	}

	a.area += f.Area()
	a.volume += f.SignedVolume(a.ref)
}

// Count returns the number of facets added so far
func (a *Accumulator) Count() int {
	return a.count
}

// Stats returns the statistics of all facets added so far.
// With no facets every value is zero.
func (a *Accumulator) Stats(header string, format stl.Format) Stats {
	s := Stats{
		Header:     header,
		Format:     format,
		FacetCount: a.count,
	}
	if a.count == 0 {
		return s
	}

	s.Min = a.bbox.Min
	s.Max = a.bbox.Max
	s.Size = a.bbox.Size()
	s.BoundingDiameter = a.bbox.Diagonal()
	s.ShortestEdge = a.shortestEdge
	s.NumPoints = CountPoints(a.points)
	s.Surface = math.Abs(a.area)
	s.Volume = math.Abs(a.volume)
	return s
}

// CountPoints returns the number of distinct positions in points.
// points is sorted in place. A position with a NaN coordinate is never
// equal to another one and counts on its own.
func CountPoints(points []geometry.Vector) int {
	if len(points) == 0 {
		return 0
	}
	slices.SortFunc(points, geometry.Vector.Compare)

	distinct := 1
	for i := 1; i < len(points); i++ {
		if !samePosition(points[i-1], points[i]) {
			distinct++
		}
	}
	return distinct
}

func samePosition(a, b geometry.Vector) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

