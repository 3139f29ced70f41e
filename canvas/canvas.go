/*
Package canvas implements the pixel operations used to assemble packed
flipbook textures: allocating a blank canvas, pasting frames into it and
splitting and merging its channel planes.

A canvas stores 8-bit non-premultiplied samples. In RGB mode the alpha sample
is held at 0xff and never takes part in a split or merge, so an RGB canvas
splits into three planes and an RGBA canvas into four.

TIFF is written with golang.org/x/image/tiff, which always stores four samples
for colour images and only compresses with Deflate, so an RGB canvas saved as
TIFF opens in other tools as RGBA with a fully opaque alpha channel.
*/
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Mode is the channel layout of a canvas.
type Mode int

const (
	// RGB is a three channel canvas.
	RGB Mode = iota
	// RGBA is a four channel canvas.
	RGBA
)

var (
	// ErrPlaneCount is returned by Merge when the number of planes doesn't
	// match the mode.
	ErrPlaneCount = errors.New("canvas: wrong number of planes")
	// ErrPlaneSize is returned by Merge when the planes differ in size.
	ErrPlaneSize = errors.New("canvas: planes differ in size")
)

// Channels returns the number of planes a canvas of this mode splits into.
func (m Mode) Channels() int {
	if m == RGBA {
		return 4
	}
	return 3
}

func (m Mode) String() string {
	if m == RGBA {
		return "RGBA"
	}
	return "RGB"
}

// Canvas is an image being assembled. It implements image.Image so it can be
// handed straight to an encoder.
type Canvas struct {
	mode Mode
	pix  *image.NRGBA
}

// New returns a blank canvas of the given size. Every sample is zero apart
// from the alpha of an RGB canvas.
func New(mode Mode, width, height int) *Canvas {
	c := &Canvas{
		mode: mode,
		pix:  image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
	if mode == RGB {
		for i := 3; i < len(c.pix.Pix); i += 4 {
			c.pix.Pix[i] = 0xff
		}
	}
	return c
}

// FromImage returns a canvas the same size as m with m pasted into it.
func FromImage(mode Mode, m image.Image) *Canvas {
	size := m.Bounds().Size()
	c := New(mode, size.X, size.Y)
	c.Paste(m, image.Point{})
	return c
}

// Mode returns the channel layout of the canvas.
func (c *Canvas) Mode() Mode {
	return c.mode
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return c.pix.Rect
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	return c.pix.At(x, y)
}

// NRGBAAt returns the samples at (x, y).
func (c *Canvas) NRGBAAt(x, y int) color.NRGBA {
	return c.pix.NRGBAAt(x, y)
}

// Paste replaces the pixels of the canvas covered by src placed with its
// top-left corner at p. Anything falling outside the canvas is clipped. An
// RGB canvas drops the alpha of src.
func (c *Canvas) Paste(src image.Image, p image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: p, Max: p.Add(sb.Size())}.Intersect(c.pix.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			n := color.NRGBAModel.Convert(src.At(sb.Min.X+x-p.X, sb.Min.Y+y-p.Y)).(color.NRGBA)
			if c.mode == RGB {
				n.A = 0xff
			}
			c.pix.SetNRGBA(x, y, n)
		}
	}
}

// Split returns a copy of each channel of the canvas as a separate plane, in
// R, G, B(, A) order.
func (c *Canvas) Split() []*image.Gray {
	planes := make([]*image.Gray, c.mode.Channels())
	for i := range planes {
		planes[i] = image.NewGray(c.pix.Rect)
	}

	w, h := c.pix.Rect.Dx(), c.pix.Rect.Dy()
	for y := 0; y < h; y++ {
		row := c.pix.Pix[y*c.pix.Stride : y*c.pix.Stride+w*4]
		for x := 0; x < w; x++ {
			for i, plane := range planes {
				plane.Pix[y*plane.Stride+x] = row[x*4+i]
			}
		}
	}

	return planes
}

// Merge builds a new canvas from planes in R, G, B(, A) order. All planes
// must be the same size and there must be exactly one per channel of mode.
func Merge(mode Mode, planes ...*image.Gray) (*Canvas, error) {
	if len(planes) != mode.Channels() {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrPlaneCount, mode, mode.Channels(), len(planes))
	}

	size := planes[0].Rect.Size()
	for _, plane := range planes[1:] {
		if plane.Rect.Size() != size {
			return nil, ErrPlaneSize
		}
	}

	c := New(mode, size.X, size.Y)
	for i, plane := range planes {
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				c.pix.Pix[y*c.pix.Stride+x*4+i] = plane.Pix[y*plane.Stride+x]
			}
		}
	}

	return c, nil
}
