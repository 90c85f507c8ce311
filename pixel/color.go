package pixel

import (
	"encoding/binary"
	"image/color"
	"math"
)

// RGBAModel is the color model for packed RGBA colors.
var RGBAModel color.Model = color.ModelFunc(rgbaModel)

// Transparent is fully transparent black, the zero value.
var Transparent = RGBA{}

// RGBA is a packed 32-bit non-alpha-premultiplied color.
//
// The channels are stored in R, G, B, A byte order, which is also the order in which
// they appear in a framebuffer's pixel memory.
type RGBA [4]uint8

// R is the red channel.
func (c RGBA) R() uint8 { return c[0] }

// G is the green channel.
func (c RGBA) G() uint8 { return c[1] }

// B is the blue channel.
func (c RGBA) B() uint8 { return c[2] }

// A is the alpha channel, 0 is fully transparent and 0xff fully opaque.
func (c RGBA) A() uint8 { return c[3] }

// Opaque reports whether the alpha channel is at its maximum.
func (c RGBA) Opaque() bool { return c[3] == 0xff }

func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c[0])
	r |= r << 8
	r *= uint32(c[3])
	r /= 0xff
	g = uint32(c[1])
	g |= g << 8
	g *= uint32(c[3])
	g /= 0xff
	b = uint32(c[2])
	b |= b << 8
	b *= uint32(c[3])
	b /= 0xff
	a = uint32(c[3])
	a |= a << 8
	return
}

// Uint32 packs the color with red in the least significant byte and alpha in the most
// significant byte, independent of the host byte order.
func (c RGBA) Uint32() uint32 {
	return binary.LittleEndian.Uint32(c[:])
}

// FromUint32 is the inverse of [RGBA.Uint32].
func FromUint32(v uint32) (c RGBA) {
	binary.LittleEndian.PutUint32(c[:], v)
	return
}

func rgbaModel(c color.Color) color.Color {
	switch c := c.(type) {
	case RGBA:
		return c
	case color.NRGBA:
		return RGBA{c.R, c.G, c.B, c.A}
	default:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		return RGBA{n.R, n.G, n.B, n.A}
	}
}

// Linear holds the squared red, green and blue channels of a color.
//
// Squaring is a cheap stand-in for converting display values to linear light; the
// square root takes a blended value back.
type Linear [3]uint32

// Linear returns the squared channels of c, alpha is ignored.
func (c RGBA) Linear() Linear {
	return Linear{
		uint32(c[0]) * uint32(c[0]),
		uint32(c[1]) * uint32(c[1]),
		uint32(c[2]) * uint32(c[2]),
	}
}

// Blend flattens fg onto an opaque background given in its [Linear] form.
//
// Opaque colors are returned unchanged. Otherwise the squares of the foreground channels
// are weighted by alpha against the background by the inverse alpha, and the square root
// of the sum is the resulting channel. The result is always opaque.
func Blend(bg Linear, fg RGBA) RGBA {
	alpha := uint32(fg[3])
	if alpha == 0xff {
		return fg
	}

	out := RGBA{3: 0xff}
	for i := 0; i < 3; i++ {
		v := uint32(fg[i])
		out[i] = uint8(math.Sqrt(float64((v*v*alpha + bg[i]*(0xff-alpha)) / 0xff)))
	}
	return out
}
