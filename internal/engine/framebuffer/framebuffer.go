// Package framebuffer provides the CPU pixel buffer the software
// rasterizer draws into. Pixels hold light-level indices, not colors;
// a palette maps them to RGBA when the frame is presented.
package framebuffer

import (
	"image"

	"github.com/Faultbox/goraster/internal/engine/lighting"
)

// Background marks pixels no span has touched since the last Clear.
const Background = 0xFF

// Framebuffer is an indexed offscreen render target. It implements
// raster.SpanFiller, clipping spans to its bounds.
type Framebuffer struct {
	width   int
	height  int
	pixels  []uint8
	palette Palette
}

// New creates a framebuffer with the specified dimensions.
func New(width, height int, palette Palette) *Framebuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	fb := &Framebuffer{
		width:   width,
		height:  height,
		pixels:  make([]uint8, width*height),
		palette: palette,
	}
	fb.Clear()

	return fb
}

// FillSpan writes one horizontal run of pixels at light level level.
// Coordinates outside the buffer are clipped, not an error.
func (fb *Framebuffer) FillSpan(x1, x2, y, level int) {
	if y < 0 || y >= fb.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 >= fb.width {
		x2 = fb.width - 1
	}
	if x1 > x2 {
		return
	}

	if level < 0 {
		level = 0
	}
	if level >= lighting.Levels {
		level = lighting.Levels - 1
	}

	row := fb.pixels[y*fb.width : y*fb.width+fb.width]
	for x := x1; x <= x2; x++ {
		row[x] = uint8(level)
	}
}

// Clear resets every pixel to the background marker.
func (fb *Framebuffer) Clear() {
	for i := range fb.pixels {
		fb.pixels[i] = Background
	}
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// At returns the light-level index at (x, y), or Background when the
// coordinates are out of bounds.
func (fb *Framebuffer) At(x, y int) uint8 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return Background
	}
	return fb.pixels[y*fb.width+x]
}

// Resize reallocates the buffer if the dimensions have changed. The
// contents after a resize are cleared.
func (fb *Framebuffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == fb.width && height == fb.height {
		return
	}

	fb.width = width
	fb.height = height
	fb.pixels = make([]uint8, width*height)
	fb.Clear()
}

// Image resolves the index buffer through the palette into an RGBA
// image suitable for presenting or encoding.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))

	for i, idx := range fb.pixels {
		c := fb.palette.Background
		if idx < lighting.Levels {
			c = fb.palette.Levels[idx]
		}

		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}

	return img
}
