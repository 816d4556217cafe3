// Package viewer renders meshes to images without a window.
package viewer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/nfnt/resize"
	"github.com/philipparndt/stlviewer/pkg/analysis"
	"github.com/philipparndt/stlviewer/pkg/geometry"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Options controls a snapshot
type Options struct {
	Width      int
	Height     int
	Background color.RGBA
	Foreground color.RGBA
	View       View
	ReverseY   bool
	// Wireframe draws facet edges on top of the shaded surface.
	Wireframe bool
	// Caption is drawn in the lower left corner when not empty.
	Caption string
	// Supersample renders at this multiple of the size and scales down.
	// Values below 2 disable it.
	Supersample int
}

// DefaultOptions returns an 800x600 isometric view
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Background:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Foreground:  color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff},
		View:        ViewIso,
		Supersample: 2,
	}
}

// Render draws facets as seen by a camera centered on the bounding box in stats
func Render(facets []geometry.Facet, stats analysis.Stats, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	scale := opts.Supersample
	if scale < 2 {
		scale = 1
	}
	width, height := opts.Width*scale, opts.Height*scale

	camera := NewCamera(stats.Center(), stats.Size)
	camera.ReverseY = opts.ReverseY
	camera.SetView(opts.View)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	depth := newDepthBuffer(width, height)

	view := camera.ViewMatrix()
	projection := camera.ProjectionMatrix(width, height)
	forward := camera.Forward()
	edge := shade(opts.Foreground, 0.3)

	for _, f := range facets {
		var p [3]screenPoint
		for i, v := range f.Vertices {
			p[i].x, p[i].y, p[i].z = camera.project(toVec3(v), view, projection, width, height)
		}

		n := toVec3(f.CalculateNormal())
		intensity := 0.25 + 0.75*math.Abs(n.Dot(forward))
		fillTriangle(img, depth, p, shade(opts.Foreground, intensity))

		if opts.Wireframe {
			for i := 0; i < 3; i++ {
				a, b := p[i], p[(i+1)%3]
				drawLine(img, int(a.x), int(a.y), int(b.x), int(b.y), edge)
			}
		}
	}

	if scale > 1 {
		img = toRGBA(resize.Resize(uint(opts.Width), uint(opts.Height), img, resize.Bilinear))
	}

	if opts.Caption != "" {
		if err := drawCaption(img, opts.Caption, contrast(opts.Background)); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// shade scales the color channels by intensity in [0, 1]
func shade(c color.RGBA, intensity float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * intensity),
		G: uint8(float64(c.G) * intensity),
		B: uint8(float64(c.B) * intensity),
		A: c.A,
	}
}

// contrast returns black or white, whichever is readable on c
func contrast(c color.RGBA) color.RGBA {
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma > 128 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

func toRGBA(src image.Image) *image.RGBA {
	if img, ok := src.(*image.RGBA); ok {
		return img
	}
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img
}

func drawCaption(img *image.RGBA, text string, col color.RGBA) error {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse caption font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: 14, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()

	padding := 6
	descent := face.Metrics().Descent.Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(padding), Y: fixed.I(img.Bounds().Dy() - padding - descent)},
	}
	d.DrawString(text)
	return nil
}

// Save encodes img as PNG or BMP depending on the extension of path
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".bmp" {
		return fmt.Errorf("unsupported image format %q (use .png or .bmp)", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	if ext == ".bmp" {
		err = bmp.Encode(file, img)
	} else {
		err = png.Encode(file, img)
	}
	return errors.Join(err, file.Close())
}
