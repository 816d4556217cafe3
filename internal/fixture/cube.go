// Package fixture builds small meshes with known geometry for tests.
package fixture

import "github.com/philipparndt/stlviewer/pkg/geometry"

// Cube returns the 12 outward-facing facets of an axis-aligned cube with
// the given side length, centered at the origin.
func Cube(side float32) []geometry.Facet {
	h := side / 2
	quads := [6][4][3]float32{
		{{h, -h, -h}, {h, h, -h}, {h, h, h}, {h, -h, h}},     // +X
		{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, // -X
		{{-h, h, -h}, {-h, h, h}, {h, h, h}, {h, h, -h}},     // +Y
		{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, // -Y
		{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},     // +Z
		{{-h, -h, -h}, {-h, h, -h}, {h, h, -h}, {h, -h, -h}}, // -Z
	}

	facets := make([]geometry.Facet, 0, 12)
	for _, q := range quads {
		p := [4]geometry.Vector{}
		for i, c := range q {
			p[i] = geometry.NewVector(c[0], c[1], c[2])
		}
		facets = append(facets, Triangle(p[0], p[1], p[2]), Triangle(p[0], p[2], p[3]))
	}
	return facets
}

// Triangle returns a facet whose stored normal is the computed one
func Triangle(v0, v1, v2 geometry.Vector) geometry.Facet {
	f := geometry.NewFacet(geometry.Vector{}, v0, v1, v2)
	f.Normal = f.CalculateNormal()
	return f
}

// Translate returns a copy of facets moved by (dx, dy, dz)
func Translate(facets []geometry.Facet, dx, dy, dz float32) []geometry.Facet {
	offset := geometry.NewVector4(dx, dy, dz, 0)
	out := make([]geometry.Facet, len(facets))
	for i, f := range facets {
		for j := range f.Vertices {
			f.Vertices[j] = f.Vertices[j].Add(offset)
		}
		out[i] = f
	}
	return out
}

// WithAttributes returns a copy of facets whose attribute bytes count up
// from zero, so that attribute preservation can be observed.
func WithAttributes(facets []geometry.Facet) []geometry.Facet {
	out := make([]geometry.Facet, len(facets))
	for i, f := range facets {
		f.Extra = [2]byte{byte(i), byte(0x80 | i)}
		out[i] = f
	}
	return out
}
