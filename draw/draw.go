// Package draw provides drawing primitives for framebuffers and other images.
package draw

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// Interpolator is an alias for [golang.org/x/image/draw.Interpolator].
type Interpolator = xdraw.Interpolator

// Interpolators by name, from fastest to best looking.
var Interpolators = map[string]Interpolator{
	"nearest":    xdraw.NearestNeighbor,
	"approx":     xdraw.ApproxBiLinear,
	"bilinear":   xdraw.BiLinear,
	"catmullrom": xdraw.CatmullRom,
}

// Scale resamples all of src to cover all of dst. A nil interpolator uses nearest neighbor.
//
// Pixels are replaced, not composed, so transparency in src carries over to dst.
func Scale(dst Image, src image.Image, interp Interpolator) {
	if interp == nil {
		interp = xdraw.NearestNeighbor
	}
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), Src, nil)
}
