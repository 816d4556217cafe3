package geometry

import "math"

// minNormalLength is the length below which a computed normal is
// considered degenerate and replaced by the x axis.
const minNormalLength = 1e-12

// Facet is one triangle of a mesh.
type Facet struct {
	// Normal is the normal as stored in the file. It may be zero or wrong;
	// calculations use CalculateNormal instead.
	Normal   Vector
	Vertices [3]Vector
	// Extra holds the two attribute bytes of a binary record verbatim.
	Extra [2]byte
}

// NewFacet creates a new facet with zero attribute bytes
func NewFacet(normal, v0, v1, v2 Vector) Facet {
	return Facet{
		Normal:   normal,
		Vertices: [3]Vector{v0, v1, v2},
	}
}

// CalculateNormal computes the unit normal (v1-v0) x (v2-v0).
// A degenerate facet yields (1, 0, 0).
func (f Facet) CalculateNormal() Vector {
	n := f.unitNormal()
	return NewVector4(float32(n[0]), float32(n[1]), float32(n[2]), 0)
}

func (f Facet) unitNormal() [3]float64 {
	a := f.Vertices[1].Sub(f.Vertices[0])
	b := f.Vertices[2].Sub(f.Vertices[0])
	n := [3]float64{
		float64(a.Y)*float64(b.Z) - float64(a.Z)*float64(b.Y),
		float64(a.Z)*float64(b.X) - float64(a.X)*float64(b.Z),
		float64(a.X)*float64(b.Y) - float64(a.Y)*float64(b.X),
	}
	length := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if length < minNormalLength {
		return [3]float64{1, 0, 0}
	}
	return [3]float64{n[0] / length, n[1] / length, n[2] / length}
}

// Area returns the signed area of the facet: half the dot product of the
// recomputed normal with the sum of the cross products of consecutive vertices.
func (f Facet) Area() float64 {
	var sum [3]float64
	for i := 0; i < 3; i++ {
		p, q := f.Vertices[i], f.Vertices[(i+1)%3]
		sum[0] += float64(p.Y)*float64(q.Z) - float64(p.Z)*float64(q.Y)
		sum[1] += float64(p.Z)*float64(q.X) - float64(p.X)*float64(q.Z)
		sum[2] += float64(p.X)*float64(q.Y) - float64(p.Y)*float64(q.X)
	}
	n := f.unitNormal()
	return 0.5 * (n[0]*sum[0] + n[1]*sum[1] + n[2]*sum[2])
}

// SignedVolume returns the volume of the tetrahedron spanned by the facet and
// ref, signed by the facet orientation.
func (f Facet) SignedVolume(ref Vector) float64 {
	n := f.unitNormal()
	p := f.Vertices[0].Sub(ref)
	height := n[0]*float64(p.X) + n[1]*float64(p.Y) + n[2]*float64(p.Z)
	return f.Area() * height / 3
}

// EdgeLengths returns the lengths of all three edges
func (f Facet) EdgeLengths() [3]float64 {
	return [3]float64{
		float64(f.Vertices[0].Distance(f.Vertices[1])),
		float64(f.Vertices[1].Distance(f.Vertices[2])),
		float64(f.Vertices[2].Distance(f.Vertices[0])),
	}
}

// Perimeter returns the total length of all edges
func (f Facet) Perimeter() float64 {
	lengths := f.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the facet
func (f Facet) Center() Vector {
	v := f.Vertices
	return NewVector(
		(v[0].X+v[1].X+v[2].X)/3,
		(v[0].Y+v[1].Y+v[2].Y)/3,
		(v[0].Z+v[1].Z+v[2].Z)/3,
	)
}
