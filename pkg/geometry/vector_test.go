package geometry

import (
	"math"
	"sort"
	"testing"
)

func TestVectorDefaultsToPoint(t *testing.T) {
	v := NewVector(1, 2, 3)
	if v.W != 1 {
		t.Errorf("NewVector failed: expected W=1, got %v", v.W)
	}
}

func TestVectorAddCarriesW(t *testing.T) {
	v1 := NewVector(1, 2, 3)
	v2 := NewVector(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector4(5, 7, 9, 2)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVectorSub(t *testing.T) {
	v1 := NewVector(5, 7, 9)
	v2 := NewVector(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector4(4, 5, 6, 0)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVectorScalarOps(t *testing.T) {
	v := NewVector(2, 4, 6)

	if got, want := v.Mul(0.5), NewVector4(1, 2, 3, 0.5); got != want {
		t.Errorf("Mul failed: expected %v, got %v", want, got)
	}
	if got, want := v.Div(2), NewVector4(1, 2, 3, 0.5); got != want {
		t.Errorf("Div failed: expected %v, got %v", want, got)
	}
	if got, want := v.MulVec(NewVector4(1, 2, 3, 4)), NewVector4(2, 8, 18, 4); got != want {
		t.Errorf("MulVec failed: expected %v, got %v", want, got)
	}
	if got, want := v.DivVec(NewVector4(2, 4, 6, 1)), NewVector4(1, 1, 1, 1); got != want {
		t.Errorf("DivVec failed: expected %v, got %v", want, got)
	}
}

func TestVectorMagnitude(t *testing.T) {
	v := NewVector(3, 4, 0)
	magnitude := v.Magnitude()

	expected := float32(5.0)
	if math.Abs(float64(magnitude-expected)) > 1e-6 {
		t.Errorf("Magnitude failed: expected %v, got %v", expected, magnitude)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := NewVector(3, 4, 0)
	normalized := v.Normalize()

	if math.Abs(float64(normalized.Magnitude())-1) > 1e-6 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Magnitude())
	}

	zero := NewVector(0, 0, 0)
	if zero.Normalize() != zero {
		t.Errorf("Normalize of zero vector changed it: %v", zero.Normalize())
	}
}

func TestVectorCross(t *testing.T) {
	v1 := NewVector(1, 0, 0)
	v2 := NewVector(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector4(0, 0, 1, 0)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVectorDot(t *testing.T) {
	v1 := NewVector(1, 2, 3)
	v2 := NewVector(4, 5, 6)
	result := v1.Dot(v2)

	expected := float32(32.0) // 1*4 + 2*5 + 3*6 = 32
	if result != expected {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVectorEqualIsExact(t *testing.T) {
	a := NewVector(0.1, 0.2, 0.3)
	b := NewVector(0.1, 0.2, 0.3)
	if !a.Equal(b) {
		t.Errorf("Equal failed: %v and %v should be equal", a, b)
	}

	c := NewVector(math.Nextafter32(0.1, 1), 0.2, 0.3)
	if a.Equal(c) {
		t.Errorf("Equal should not merge neighbouring floats: %v and %v", a, c)
	}

	if a.Equal(NewVector4(0.1, 0.2, 0.3, 0)) {
		t.Errorf("Equal should compare W")
	}
}

func TestVectorLess(t *testing.T) {
	tests := []struct {
		a, b Vector
		want bool
	}{
		{NewVector(0, 9, 9), NewVector(1, 0, 0), true},
		{NewVector(1, 0, 9), NewVector(1, 1, 0), true},
		{NewVector(1, 1, 0), NewVector(1, 1, 1), true},
		{NewVector(1, 1, 1), NewVector(1, 1, 1), false},
		{NewVector(2, 0, 0), NewVector(1, 9, 9), false},
	}

	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVectorLessSortsEqualPointsTogether(t *testing.T) {
	points := []Vector{
		NewVector(1, 0, 0),
		NewVector(0, 0, 1),
		NewVector(1, 0, 0),
		NewVector(0, 0, 1),
		NewVector(0, 1, 0),
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })

	for i := 1; i < len(points); i++ {
		if points[i].Less(points[i-1]) {
			t.Fatalf("not sorted at %d: %v", i, points)
		}
	}
	if points[0] != points[1] || points[3] != points[4] {
		t.Errorf("equal points not adjacent: %v", points)
	}
}

func TestVectorMinMax(t *testing.T) {
	a := NewVector(1, 5, -2)
	b := NewVector(3, -1, 0)

	if got, want := a.Min(b), NewVector(1, -1, -2); got != want {
		t.Errorf("Min failed: expected %v, got %v", want, got)
	}
	if got, want := a.Max(b), NewVector(3, 5, 0); got != want {
		t.Errorf("Max failed: expected %v, got %v", want, got)
	}
	if got := NewVector(-4, 2, 3).Abs().MaxComponent(); got != 4 {
		t.Errorf("Abs/MaxComponent failed: expected 4, got %v", got)
	}
}

func TestVectorCompareOrdersNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := NewVector(nan, 0, 0)
	b := NewVector(-1, 0, 0)

	if a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Errorf("expected NaN before numbers, got %d and %d", a.Compare(b), b.Compare(a))
	}
	if a.Compare(a) != 0 {
		t.Errorf("expected NaN to compare equal to NaN, got %d", a.Compare(a))
	}

	points := []Vector{b, a, NewVector(1, 0, 0), a, b}
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })
	if !math.IsNaN(float64(points[0].X)) || !math.IsNaN(float64(points[1].X)) {
		t.Errorf("expected NaN points first, got %v", points)
	}
	if points[2] != b || points[3] != b {
		t.Errorf("expected equal points adjacent, got %v", points)
	}
}
