package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// BytesPerPixel is the size of one packed [RGBA] pixel in memory.
const BytesPerPixel = 4

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values of an image.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int

	// rows is built on first use by Rows.
	rows [][]byte
}

// MakeBuffer allocates a zeroed w x h buffer of size bytes, with stride bytes per row.
func MakeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

// In reports whether (x, y) is inside the buffer.
func (p *Buffer) In(x, y int) bool {
	return (image.Point{X: x, Y: y}).In(p.Rect)
}

// PixOffset is the index of the first byte of pixel (x, y) in Pix.
func (p *Buffer) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*BytesPerPixel
}

func (p *Buffer) Clear() {
	clear(p.Pix)
}

// Rows returns one slice per row of the buffer, top to bottom.
//
// The rows share memory with Pix; writes through either are visible in both. The slice is
// computed once and reused by subsequent calls.
func (p *Buffer) Rows() [][]byte {
	if p.rows == nil {
		h := p.Rect.Dy()
		p.rows = make([][]byte, h)
		for y := 0; y < h; y++ {
			i := y * p.Stride
			p.rows[y] = p.Pix[i : i+p.Stride : i+p.Stride]
		}
	}
	return p.rows
}
