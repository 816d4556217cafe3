package geometry

import (
	"cmp"

	"github.com/chewxy/math32"
)

// Vector represents a homogeneous point or direction.
// W defaults to 1 for points and is carried through all arithmetic.
type Vector struct {
	X, Y, Z, W float32
}

// NewVector creates a new point with W set to 1
func NewVector(x, y, z float32) Vector {
	return Vector{X: x, Y: y, Z: z, W: 1}
}

// NewVector4 creates a new vector with an explicit W component
func NewVector4(x, y, z, w float32) Vector {
	return Vector{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

// Sub returns the difference between two vectors
func (v Vector) Sub(other Vector) Vector {
	return Vector{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector) Mul(scalar float32) Vector {
	return Vector{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
		W: v.W * scalar,
	}
}

// Div divides the vector by a scalar
func (v Vector) Div(scalar float32) Vector {
	return Vector{
		X: v.X / scalar,
		Y: v.Y / scalar,
		Z: v.Z / scalar,
		W: v.W / scalar,
	}
}

// MulVec multiplies two vectors component by component
func (v Vector) MulVec(other Vector) Vector {
	return Vector{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
		W: v.W * other.W,
	}
}

// DivVec divides two vectors component by component
func (v Vector) DivVec(other Vector) Vector {
	return Vector{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
		W: v.W / other.W,
	}
}

// Scale is Mul under the name used by the rendering code
func (v Vector) Scale(factor float32) Vector {
	return v.Mul(factor)
}

// Dot returns the dot product of the x, y and z components
func (v Vector) Dot(other Vector) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors. The result is a direction (W=0).
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Magnitude returns the length of the x, y and z components
func (v Vector) Magnitude() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the distance between two points
func (v Vector) Distance(other Vector) float32 {
	return v.Sub(other).Magnitude()
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return Vector{X: v.X / m, Y: v.Y / m, Z: v.Z / m, W: v.W}
}

// Equal reports whether all four components are exactly equal.
// There is no tolerance: 0.1+0.2 and 0.3 are different points.
func (v Vector) Equal(other Vector) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}

// Compare orders vectors lexicographically by x, then y, then z, and
// returns -1, 0 or +1. NaN sorts before every number and equal to NaN,
// so the order stays consistent for any input.
//
// The ordering has no geometric meaning. It only exists so that vertices
// can be sorted and runs of equal points counted.
func (v Vector) Compare(other Vector) int {
	if c := cmp.Compare(v.X, other.X); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Y, other.Y); c != 0 {
		return c
	}
	return cmp.Compare(v.Z, other.Z)
}

// Less reports whether v sorts before other under Compare
func (v Vector) Less(other Vector) bool {
	return v.Compare(other) < 0
}

// Min returns a vector with the minimum x, y and z of two vectors
func (v Vector) Min(other Vector) Vector {
	return Vector{
		X: math32.Min(v.X, other.X),
		Y: math32.Min(v.Y, other.Y),
		Z: math32.Min(v.Z, other.Z),
		W: v.W,
	}
}

// Max returns a vector with the maximum x, y and z of two vectors
func (v Vector) Max(other Vector) Vector {
	return Vector{
		X: math32.Max(v.X, other.X),
		Y: math32.Max(v.Y, other.Y),
		Z: math32.Max(v.Z, other.Z),
		W: v.W,
	}
}

// Abs returns the component-wise absolute value of x, y and z
func (v Vector) Abs() Vector {
	return Vector{X: math32.Abs(v.X), Y: math32.Abs(v.Y), Z: math32.Abs(v.Z), W: v.W}
}

// MaxComponent returns the largest of x, y and z
func (v Vector) MaxComponent() float32 {
	return math32.Max(v.X, math32.Max(v.Y, v.Z))
}
