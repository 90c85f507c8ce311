// Package framebuffer implements an in-memory RGBA surface that images are rendered onto
// before they are handed to an output stage.
//
// Pixels are stored as packed [pixel.RGBA] values, 4 bytes per pixel in R, G, B, A order,
// row-major and without padding between rows. [Framebuffer.Rows] exposes that memory row by
// row for consumers that stream it elsewhere.
package framebuffer

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/BeatGlow/framebuffer/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("FRAMEBUFFER_DEBUG") != ""
}

// Errors
var (
	ErrSize = errors.New("framebuffer: width and height must be positive")
)

// Framebuffer is a fixed size grid of packed RGBA pixels.
//
// A Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	pixel.Buffer
}

// New allocates a width x height framebuffer with all pixels transparent black.
func New(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w, got %dx%d", ErrSize, width, height)
	}
	stride := width * pixel.BytesPerPixel
	return &Framebuffer{
		Buffer: pixel.MakeBuffer(width, height, stride, stride*height),
	}, nil
}

// Width in pixels.
func (fb *Framebuffer) Width() int {
	return fb.Rect.Dx()
}

// Height in pixels.
func (fb *Framebuffer) Height() int {
	return fb.Rect.Dy()
}

func (fb *Framebuffer) ColorModel() color.Model {
	return pixel.RGBAModel
}

// SetPixel sets the pixel at (x, y). Coordinates outside of the framebuffer are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c pixel.RGBA) {
	if !fb.In(x, y) {
		return
	}
	copy(fb.Pix[fb.PixOffset(x, y):], c[:])
}

// Pixel returns the pixel at (x, y). It panics if (x, y) is outside of the framebuffer.
func (fb *Framebuffer) Pixel(x, y int) pixel.RGBA {
	if !fb.In(x, y) {
		panic(fmt.Sprintf("framebuffer: pixel (%d,%d) out of bounds %s", x, y, fb.Rect))
	}
	i := fb.PixOffset(x, y)
	return pixel.RGBA(fb.Pix[i : i+pixel.BytesPerPixel])
}

// At returns the color of the pixel at (x, y), or [color.Transparent] outside of the framebuffer.
func (fb *Framebuffer) At(x, y int) color.Color {
	if !fb.In(x, y) {
		return color.Transparent
	}
	return fb.Pixel(x, y)
}

// Set the pixel at (x, y) to c, converted to the framebuffer's color model.
func (fb *Framebuffer) Set(x, y int, c color.Color) {
	if !fb.In(x, y) {
		return
	}
	fb.SetPixel(x, y, pixel.RGBAModel.Convert(c).(pixel.RGBA))
}

// Fill every pixel with c.
func (fb *Framebuffer) Fill(c color.Color) {
	value := pixel.RGBAModel.Convert(c).(pixel.RGBA)
	for i, l := 0, len(fb.Pix); i < l; i += pixel.BytesPerPixel {
		copy(fb.Pix[i:], value[:])
	}
}

// Interface checks.
var (
	_ pixel.Image = (*Framebuffer)(nil)
)
