package analysis

import (
	"testing"

	"github.com/philipparndt/stlviewer/internal/fixture"
	"github.com/philipparndt/stlviewer/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestFindNearestVertex(t *testing.T) {
	nearest, distance, ok := FindNearestVertex(fixture.Cube(2), geometry.NewVector(2, 1, 1))
	assert.True(t, ok)
	assert.Equal(t, geometry.NewVector(1, 1, 1), nearest)
	assert.InDelta(t, 1.0, distance, 1e-6)

	_, _, ok = FindNearestVertex(nil, geometry.NewVector(0, 0, 0))
	assert.False(t, ok)
}

func TestFormatMeasurement(t *testing.T) {
	assert.Equal(t, "1.500 mm", FormatMeasurement(1.5, 3, "mm"))
	assert.Equal(t, "2 units", FormatMeasurement(2, 0, ""))
}
