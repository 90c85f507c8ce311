package framebuffer

import (
	"fmt"
	"log"

	"github.com/BeatGlow/framebuffer/pixel"
)

// ComposeBackground flattens the framebuffer onto an opaque background.
//
// A transparent bg leaves the framebuffer untouched. If pattern is opaque, it replaces bg on
// every pixel where x+y is odd, giving a checkerboard that makes transparency visible.
// Opaque pixels keep their color, all other pixels are blended with [pixel.Blend] and
// become opaque.
//
// It panics if bg is neither fully transparent nor fully opaque.
func (fb *Framebuffer) ComposeBackground(bg, pattern pixel.RGBA) {
	switch bg.A() {
	case 0x00:
		return
	case 0xff:
	default:
		panic(fmt.Sprintf("framebuffer: translucent background %v is not supported", bg))
	}

	choice := [2]pixel.Linear{bg.Linear(), bg.Linear()}
	if pattern.Opaque() {
		choice[1] = pattern.Linear()
	}
	if debug {
		log.Printf("framebuffer: compose %s onto background %v, pattern %v", fb.Rect.Size(), bg, pattern)
	}

	var (
		w = fb.Width()
		h = fb.Height()
	)
	for y := 0; y < h; y++ {
		row := fb.Pix[y*fb.Stride:]
		for x := 0; x < w; x++ {
			i := x * pixel.BytesPerPixel
			c := pixel.Blend(choice[(x+y)%2], pixel.RGBA(row[i:i+pixel.BytesPerPixel]))
			copy(row[i:], c[:])
		}
	}
}
