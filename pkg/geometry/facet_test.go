package geometry

import (
	"math"
	"testing"
)

func TestFacetArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	f := NewFacet(
		NewVector4(0, 0, 1, 0),
		NewVector(0, 0, 0),
		NewVector(3, 0, 0),
		NewVector(0, 4, 0),
	)

	area := f.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestFacetAreaIgnoresStoredNormal(t *testing.T) {
	good := NewFacet(NewVector4(0, 0, 1, 0), NewVector(0, 0, 0), NewVector(3, 0, 0), NewVector(0, 4, 0))
	bad := good
	bad.Normal = NewVector4(0, 0, 0, 0)

	if good.Area() != bad.Area() {
		t.Errorf("Area depends on stored normal: %v vs %v", good.Area(), bad.Area())
	}
}

func TestFacetAreaOffOrigin(t *testing.T) {
	f := NewFacet(
		Vector{},
		NewVector(10, 10, 10),
		NewVector(10, 12, 10),
		NewVector(10, 10, 12),
	)

	if math.Abs(f.Area()-2) > 1e-10 {
		t.Errorf("Area failed: expected 2, got %v", f.Area())
	}
}

func TestFacetCalculateNormal(t *testing.T) {
	f := NewFacet(Vector{}, NewVector(0, 0, 0), NewVector(2, 0, 0), NewVector(0, 2, 0))

	expected := NewVector4(0, 0, 1, 0)
	if n := f.CalculateNormal(); n != expected {
		t.Errorf("CalculateNormal failed: expected %v, got %v", expected, n)
	}
}

func TestFacetDegenerateNormalFallsBackToX(t *testing.T) {
	f := NewFacet(Vector{}, NewVector(1, 1, 1), NewVector(1, 1, 1), NewVector(2, 2, 2))

	expected := NewVector4(1, 0, 0, 0)
	if n := f.CalculateNormal(); n != expected {
		t.Errorf("CalculateNormal failed: expected %v, got %v", expected, n)
	}
	if a := f.Area(); a != 0 {
		t.Errorf("degenerate facet should have zero area, got %v", a)
	}
}

func TestFacetSignedVolume(t *testing.T) {
	// Facet in the plane z=1, normal +z, reference at origin:
	// tetrahedron volume = area * height / 3 = 2 * 1 / 3
	f := NewFacet(Vector{}, NewVector(0, 0, 1), NewVector(2, 0, 1), NewVector(0, 2, 1))

	got := f.SignedVolume(NewVector(0, 0, 0))
	if math.Abs(got-2.0/3.0) > 1e-10 {
		t.Errorf("SignedVolume failed: expected %v, got %v", 2.0/3.0, got)
	}

	flipped := NewFacet(Vector{}, f.Vertices[0], f.Vertices[2], f.Vertices[1])
	if math.Abs(flipped.SignedVolume(NewVector(0, 0, 0))+2.0/3.0) > 1e-10 {
		t.Errorf("flipped facet should give negative volume, got %v", flipped.SignedVolume(NewVector(0, 0, 0)))
	}
}

func TestFacetEdgeLengths(t *testing.T) {
	f := NewFacet(
		Vector{},
		NewVector(0, 0, 0),
		NewVector(3, 0, 0),
		NewVector(0, 4, 0),
	)

	lengths := f.EdgeLengths()

	// Expected lengths: 3, 5, 4 (Pythagorean triple)
	if math.Abs(lengths[0]-3.0) > 1e-6 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-6 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-6 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
	if math.Abs(f.Perimeter()-12.0) > 1e-6 {
		t.Errorf("Perimeter failed: expected 12.0, got %v", f.Perimeter())
	}
}

func TestFacetCenter(t *testing.T) {
	f := NewFacet(
		Vector{},
		NewVector(0, 0, 0),
		NewVector(3, 0, 0),
		NewVector(0, 3, 0),
	)

	center := f.Center()
	expected := NewVector(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}
