package draw

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrFont is returned for font data that can't be used.
var ErrFont = errors.New("draw: invalid font")

// Face is a TrueType font at a fixed size in pixels.
type Face struct {
	font *truetype.Font
	size float64
}

// NewFace parses TrueType font data.
func NewFace(ttf []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %g", ErrFont, size)
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFont, err)
	}
	return &Face{font: f, size: size}, nil
}

// DefaultFace is the Go Regular font.
func DefaultFace(size float64) (*Face, error) {
	return NewFace(goregular.TTF, size)
}

// Size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Text draws s over dst with its top left corner at pt, and returns the point where the next
// glyph would start.
func Text(dst Image, face *Face, pt image.Point, s string, c color.Color) (image.Point, error) {
	ctx := freetype.NewContext()
	ctx.SetDPI(72) // one point per pixel
	ctx.SetFont(face.font)
	ctx.SetFontSize(face.size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))

	baseline := freetype.Pt(pt.X, pt.Y)
	baseline.Y += ctx.PointToFixed(face.size)
	end, err := ctx.DrawString(s, baseline)
	if err != nil {
		return pt, err
	}
	return image.Pt(end.X.Round(), pt.Y), nil
}
