package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box.
// The zero value is an empty box; the first Extend sets Min and Max to that point.
type BoundingBox struct {
	Min   Vector
	Max   Vector
	valid bool
}

// NewBoundingBox creates a new empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector) {
	if !b.valid {
		b.Min = NewVector(point.X, point.Y, point.Z)
		b.Max = b.Min
		b.valid = true
		return
	}
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// IsEmpty reports whether no point has been added yet
func (b BoundingBox) IsEmpty() bool {
	return !b.valid
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector {
	return NewVector(b.Max.X-b.Min.X, b.Max.Y-b.Min.Y, b.Max.Z-b.Min.Z)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector {
	return NewVector(
		(b.Min.X+b.Max.X)/2,
		(b.Min.Y+b.Max.Y)/2,
		(b.Min.Z+b.Max.Z)/2,
	)
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	size := b.Size()
	x, y, z := float64(size.X), float64(size.Y), float64(size.Z)
	return math.Sqrt(x*x + y*y + z*z)
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return float64(size.X) * float64(size.Y) * float64(size.Z)
}
