package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points, both inclusive.
func Line(dst Image, a, b image.Point, c color.Color) {
	dx, sx := abs(b.X-a.X), sign(b.X-a.X)
	dy, sy := -abs(b.Y-a.Y), sign(b.Y-a.Y)
	e := dx + dy
	for p := a; ; {
		dst.Set(p.X, p.Y, c)
		if p == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of rect, on the pixels just inside its bounds.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	w, h := rect.Dx(), rect.Dy()
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Box draws a filled rectangle, replacing the pixels it covers.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon().Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// Checkerboard fills rect with size x size cells of alternating colors, starting with a in
// the top left cell.
func Checkerboard(dst Image, rect image.Rectangle, size int, a, b color.Color) {
	if size < 1 {
		size = 1
	}
	rect = rect.Canon()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x-rect.Min.X)/size+(y-rect.Min.Y)/size)%2 == 0 {
				dst.Set(x, y, a)
			} else {
				dst.Set(x, y, b)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
