package analysis

import (
	"math"

	"github.com/philipparndt/stlviewer/pkg/geometry"
)

// FindNearestVertex finds the vertex nearest to a given point.
// ok is false when there are no facets.
func FindNearestVertex(facets []geometry.Facet, point geometry.Vector) (nearest geometry.Vector, distance float64, ok bool) {
	distance = math.MaxFloat64
	for _, f := range facets {
		for _, v := range f.Vertices {
			d := float64(point.Distance(v))
			if d < distance {
				distance = d
				nearest = v
				ok = true
			}
		}
	}
	if !ok {
		return geometry.Vector{}, 0, false
	}
	return nearest, distance, true
}

// FormatMeasurement formats a measurement with a unit and precision
func FormatMeasurement(value float64, precision int, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return formatFloat(value, precision) + " " + unit
}
