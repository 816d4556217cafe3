package viewer

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/stlviewer/pkg/geometry"
)

// maxElevation keeps the camera off the poles, where the up vector and the
// view direction would be parallel.
const maxElevation = math.Pi/2 - 0.1

// View is a preset camera orientation
type View int

const (
	ViewIso View = iota
	ViewFront
	ViewBack
	ViewLeft
	ViewRight
	ViewTop
	ViewBottom
)

var viewNames = map[View]string{
	ViewIso:    "iso",
	ViewFront:  "front",
	ViewBack:   "back",
	ViewLeft:   "left",
	ViewRight:  "right",
	ViewTop:    "top",
	ViewBottom: "bottom",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// ParseView parses a view name such as "iso" or "top"
func ParseView(s string) (View, error) {
	for v, name := range viewNames {
		if strings.EqualFold(s, name) {
			return v, nil
		}
	}
	return ViewIso, fmt.Errorf("unknown view %q", s)
}

// Camera orbits a target point
type Camera struct {
	Position  mgl64.Vec3
	Target    mgl64.Vec3
	Up        mgl64.Vec3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Elevation
	RotationY float64 // Azimuth
	// ReverseY mirrors the elevation, so the model is seen from the
	// opposite side of the horizontal plane.
	ReverseY bool
}

// NewCamera creates a camera looking at center from far enough away to
// see a box of the given size
func NewCamera(center, size geometry.Vector) *Camera {
	extent := float64(size.MaxComponent())
	if extent <= 0 {
		extent = 1
	}

	c := &Camera{
		Target:   mgl64.Vec3{float64(center.X), float64(center.Y), float64(center.Z)},
		Up:       mgl64.Vec3{0, 1, 0},
		FOV:      math.Pi / 4, // 45 degrees
		Distance: extent * 2.2,
	}
	c.UpdatePosition()
	return c
}

// SetView moves the camera to a preset orientation
func (c *Camera) SetView(v View) {
	switch v {
	case ViewFront:
		c.RotationX, c.RotationY = 0, 0
	case ViewBack:
		c.RotationX, c.RotationY = 0, math.Pi
	case ViewLeft:
		c.RotationX, c.RotationY = 0, -math.Pi/2
	case ViewRight:
		c.RotationX, c.RotationY = 0, math.Pi/2
	case ViewTop:
		c.RotationX, c.RotationY = maxElevation, 0
	case ViewBottom:
		c.RotationX, c.RotationY = -maxElevation, 0
	default:
		// top, front, left
		c.RotationX, c.RotationY = math.Pi/6, -math.Pi/4
	}
	c.UpdatePosition()
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	elevation := c.RotationX
	if c.ReverseY {
		elevation = -elevation
	}

	x := c.Distance * math.Cos(elevation) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(elevation)
	z := c.Distance * math.Cos(elevation) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(mgl64.Vec3{x, y, z})
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX = mgl64.Clamp(c.RotationX+deltaX, -maxElevation, maxElevation)
	c.RotationY += deltaY
	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Forward returns the unit view direction
func (c *Camera) Forward() mgl64.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// ViewMatrix returns the world to camera transform
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective transform for a viewport
func (c *Camera) ProjectionMatrix(width, height int) mgl64.Mat4 {
	return mgl64.Perspective(c.FOV, float64(width)/float64(height), c.Distance/100, c.Distance*100)
}

// Project projects a point to screen coordinates with y pointing down.
// depth is in [0, 1] for points between the clipping planes, smaller is closer.
func (c *Camera) Project(point geometry.Vector, width, height int) (x, y, depth float64) {
	return c.project(toVec3(point), c.ViewMatrix(), c.ProjectionMatrix(width, height), width, height)
}

func (c *Camera) project(p mgl64.Vec3, view, projection mgl64.Mat4, width, height int) (x, y, depth float64) {
	win := mgl64.Project(p, view, projection, 0, 0, width, height)
	return win.X(), float64(height) - win.Y(), win.Z()
}

func toVec3(v geometry.Vector) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}
