package analysis

import (
	"math"
	"math/rand"
	"testing"

	"github.com/philipparndt/stlviewer/internal/fixture"
	"github.com/philipparndt/stlviewer/pkg/geometry"
	"github.com/philipparndt/stlviewer/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeMesh(side float32) *stl.Mesh {
	return &stl.Mesh{Header: "cube", Format: stl.Binary, Facets: fixture.Cube(side)}
}

func TestComputeCube(t *testing.T) {
	s := Compute(cubeMesh(2))

	assert.Equal(t, "cube", s.Header)
	assert.Equal(t, stl.Binary, s.Format)
	assert.Equal(t, 12, s.FacetCount)
	assert.Equal(t, 8, s.NumPoints)
	assert.InDelta(t, 24.0, s.Surface, 1e-9)
	assert.InDelta(t, 8.0, s.Volume, 1e-9)
	assert.InDelta(t, 2*math.Sqrt(3), s.BoundingDiameter, 1e-6)
	assert.Equal(t, geometry.NewVector(-1, -1, -1), s.Min)
	assert.Equal(t, geometry.NewVector(1, 1, 1), s.Max)
	assert.Equal(t, geometry.NewVector(2, 2, 2), s.Size)
	assert.Equal(t, geometry.NewVector(0, 0, 0), s.Center())
}

func TestShortestEdgeIsFirstFacetEstimate(t *testing.T) {
	// Known approximation: only the first two vertices of the first facet
	// are looked at, and the largest axis delta is taken.
	facets := fixture.Cube(2)
	small := fixture.Triangle(
		geometry.NewVector(5, 5, 5),
		geometry.NewVector(5.1, 5, 5),
		geometry.NewVector(5, 5.1, 5),
	)
	s := Compute(&stl.Mesh{Facets: append(facets, small)})
	assert.Equal(t, 2.0, s.ShortestEdge, "later, shorter edges are ignored")

	diagonal := fixture.Triangle(
		geometry.NewVector(0, 0, 0),
		geometry.NewVector(3, -4, 1),
		geometry.NewVector(0, 1, 0),
	)
	s = Compute(&stl.Mesh{Facets: []geometry.Facet{diagonal}})
	assert.Equal(t, 4.0, s.ShortestEdge, "max per-axis delta, not the euclidean length")
}

func TestVolumeDoesNotDependOnPosition(t *testing.T) {
	s := Compute(&stl.Mesh{Facets: fixture.Translate(fixture.Cube(2), 10, -20, 30)})
	assert.InDelta(t, 8.0, s.Volume, 1e-6)
	assert.InDelta(t, 24.0, s.Surface, 1e-6)
}

func TestVolumeOfInvertedMeshIsPositive(t *testing.T) {
	facets := fixture.Cube(2)
	for i, f := range facets {
		facets[i].Vertices[1], facets[i].Vertices[2] = f.Vertices[2], f.Vertices[1]
	}
	s := Compute(&stl.Mesh{Facets: facets})
	assert.InDelta(t, 8.0, s.Volume, 1e-9)
}

func TestSurfaceIgnoresStoredNormals(t *testing.T) {
	facets := fixture.Cube(2)
	for i := range facets {
		facets[i].Normal = geometry.Vector{}
	}
	s := Compute(&stl.Mesh{Facets: facets})
	assert.InDelta(t, 24.0, s.Surface, 1e-9)
	assert.InDelta(t, 8.0, s.Volume, 1e-9)
}

func TestBoundingBoxIndependentOfOrder(t *testing.T) {
	facets := fixture.Translate(fixture.Cube(3), 1.5, 0.25, -4)
	facets = append(facets, fixture.Triangle(
		geometry.NewVector(9, 0, 0),
		geometry.NewVector(0, -9, 0),
		geometry.NewVector(0, 0, 9),
	))
	want := Compute(&stl.Mesh{Facets: facets})

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]geometry.Facet(nil), facets...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Compute(&stl.Mesh{Facets: shuffled})
		assert.Equal(t, want.Min, got.Min)
		assert.Equal(t, want.Max, got.Max)
		assert.Equal(t, want.Size, got.Size)
		assert.Equal(t, want.NumPoints, got.NumPoints)
	}
}

func TestNumPointsBounds(t *testing.T) {
	// disjoint triangles: every vertex is distinct
	var facets []geometry.Facet
	for i := 0; i < 5; i++ {
		o := float32(10 * i)
		facets = append(facets, fixture.Triangle(
			geometry.NewVector(o, 0, 0),
			geometry.NewVector(o+1, 0, 0),
			geometry.NewVector(o, 1, 0),
		))
	}
	s := Compute(&stl.Mesh{Facets: facets})
	assert.Equal(t, 3*len(facets), s.NumPoints)

	// sharing one vertex drops the count below 3N
	facets[1].Vertices[0] = facets[0].Vertices[0]
	s = Compute(&stl.Mesh{Facets: facets})
	assert.Equal(t, 3*len(facets)-1, s.NumPoints)
}

func TestNumPointsUsesExactEquality(t *testing.T) {
	a := geometry.NewVector(0.1, 0.2, 0.3)
	b := geometry.NewVector(math.Nextafter32(0.1, 1), 0.2, 0.3)
	assert.Equal(t, 2, CountPoints([]geometry.Vector{a, b, a}))
}

func TestComputeEmptyMesh(t *testing.T) {
	s := Compute(stl.NewMesh("empty", stl.ASCII))

	assert.Equal(t, Stats{Header: "empty", Format: stl.ASCII}, s)
}

func TestAccumulatorMatchesCompute(t *testing.T) {
	m := &stl.Mesh{Header: "shifted", Format: stl.ASCII, Facets: fixture.Translate(fixture.Cube(1.5), 0.1, 0.2, 0.3)}

	acc := NewAccumulator(0)
	for _, f := range m.Facets {
		acc.Add(f)
	}
	require.Equal(t, len(m.Facets), acc.Count())
	assert.Equal(t, Compute(m), acc.Stats(m.Header, m.Format))
}

func TestNumPointsWithNaNCoordinates(t *testing.T) {
	a := geometry.NewVector(1, 2, 3)
	b := geometry.NewVector(-4, 5, 6)
	nan := geometry.NewVector(float32(math.NaN()), 0, 0)

	points := []geometry.Vector{a, nan, b, a, nan, b, a, b}
	// a, b and each NaN on its own
	assert.Equal(t, 4, CountPoints(points))
}
