package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenPoint is a projected vertex
type screenPoint struct {
	x, y, z float64
}

// depthBuffer holds the closest depth drawn so far for every pixel
type depthBuffer struct {
	width  int
	values []float64
}

func newDepthBuffer(width, height int) *depthBuffer {
	values := make([]float64, width*height)
	for i := range values {
		values[i] = math.Inf(1)
	}
	return &depthBuffer{width: width, values: values}
}

// test stores z at (x, y) and reports true if it is closer than what is there
func (d *depthBuffer) test(x, y int, z float64) bool {
	idx := y*d.width + x
	if idx < 0 || idx >= len(d.values) || z >= d.values[idx] {
		return false
	}
	d.values[idx] = z
	return true
}

// fillTriangle fills a triangle with depth testing using a scanline algorithm
func fillTriangle(img *image.RGBA, depth *depthBuffer, p [3]screenPoint, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if p[0].y > p[1].y {
		p[0], p[1] = p[1], p[0]
	}
	if p[1].y > p[2].y {
		p[1], p[2] = p[2], p[1]
	}
	if p[0].y > p[1].y {
		p[0], p[1] = p[1], p[0]
	}

	bounds := img.Bounds()
	yMin := int(math.Max(0, math.Ceil(p[0].y)))
	yMax := int(math.Min(float64(bounds.Max.Y-1), p[2].y))

	for y := yMin; y <= yMax; y++ {
		fy := float64(y)

		var hits [2]screenPoint
		n := 0
		// the long edge first, so that the middle vertex row still spans the triangle
		for _, e := range [3][2]int{{0, 2}, {0, 1}, {1, 2}} {
			a, b := p[e[0]], p[e[1]]
			if n == 2 || a.y == b.y || fy < a.y || fy > b.y {
				continue
			}
			t := (fy - a.y) / (b.y - a.y)
			hits[n] = screenPoint{x: a.x + t*(b.x-a.x), z: a.z + t*(b.z-a.z)}
			n++
		}
		if n < 2 {
			continue
		}

		start, end := hits[0], hits[1]
		if start.x > end.x {
			start, end = end, start
		}

		xStart := int(math.Max(0, math.Ceil(start.x)))
		xEnd := int(math.Min(float64(bounds.Max.X-1), end.x))
		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if end.x != start.x {
				t = (float64(x) - start.x) / (end.x - start.x)
			}
			if depth.test(x, y, start.z+t*(end.z-start.z)) {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
