package framebuffer

import (
	"bytes"
	"testing"

	"github.com/BeatGlow/framebuffer/pixel"
)

func testFramebuffer(t *testing.T, w, h int, fill pixel.RGBA) *Framebuffer {
	t.Helper()
	fb, err := New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	fb.Fill(fill)
	return fb
}

func TestComposeTransparentBackground(t *testing.T) {
	fb := testFramebuffer(t, 7, 5, pixel.Transparent)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			fb.SetPixel(x, y, testRandomColor())
		}
	}
	want := bytes.Clone(fb.Pix)

	fb.ComposeBackground(pixel.Transparent, pixel.RGBA{0xff, 0xff, 0xff, 0xff})
	fb.ComposeBackground(pixel.RGBA{0x10, 0x20, 0x30, 0x00}, pixel.Transparent)
	if !bytes.Equal(fb.Pix, want) {
		t.Errorf("expected framebuffer to be unchanged")
	}
}

func TestComposeOpaque(t *testing.T) {
	fb := testFramebuffer(t, 6, 6, pixel.Transparent)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			c := testRandomColor()
			c[3] = 0xff
			fb.SetPixel(x, y, c)
		}
	}
	want := bytes.Clone(fb.Pix)

	fb.ComposeBackground(pixel.RGBA{0x80, 0x40, 0x20, 0xff}, pixel.RGBA{0xff, 0xff, 0xff, 0xff})
	if !bytes.Equal(fb.Pix, want) {
		t.Errorf("expected opaque pixels to be unchanged")
	}
}

func TestComposeBackground(t *testing.T) {
	bg := pixel.RGBA{0x12, 0x34, 0x56, 0xff}
	for _, pattern := range []pixel.RGBA{
		pixel.Transparent,
		{0xff, 0xff, 0xff, 0x80}, // not opaque, not a pattern
	} {
		fb := testFramebuffer(t, 5, 3, pixel.Transparent)
		fb.ComposeBackground(bg, pattern)
		testAll(t, fb, bg)
	}
}

func TestComposeCheckerboard(t *testing.T) {
	var (
		bg      = pixel.RGBA{0x66, 0x66, 0x66, 0xff}
		pattern = pixel.RGBA{0x99, 0x99, 0x99, 0xff}
		fb      = testFramebuffer(t, 4, 4, pixel.Transparent)
	)
	fb.ComposeBackground(bg, pattern)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := bg
			if (x+y)%2 == 1 {
				want = pattern
			}
			if v := fb.Pixel(x, y); v != want {
				t.Errorf("pixel (%d,%d) is %v, expected %v", x, y, v, want)
			}
		}
	}
}

func TestComposeBlend(t *testing.T) {
	var (
		bg      = pixel.RGBA{0x00, 0x00, 0x00, 0xff}
		pattern = pixel.RGBA{0xff, 0xff, 0xff, 0xff}
		fb      = testFramebuffer(t, 2, 1, pixel.RGBA{0xff, 0x00, 0x00, 0x80})
	)
	fb.ComposeBackground(bg, pattern)

	want := []pixel.RGBA{
		pixel.Blend(bg.Linear(), pixel.RGBA{0xff, 0x00, 0x00, 0x80}),
		pixel.Blend(pattern.Linear(), pixel.RGBA{0xff, 0x00, 0x00, 0x80}),
	}
	for x, c := range want {
		if v := fb.Pixel(x, 0); v != c {
			t.Errorf("pixel (%d,0) is %v, expected %v", x, v, c)
		}
		if v := fb.Pixel(x, 0); !v.Opaque() {
			t.Errorf("pixel (%d,0) is not opaque: %v", x, v)
		}
	}
	if v := fb.Pixel(0, 0); v != (pixel.RGBA{180, 0, 0, 0xff}) {
		t.Errorf("expected half transparent red over black to be %v, got %v", pixel.RGBA{180, 0, 0, 0xff}, v)
	}
}

func TestComposeTranslucentBackground(t *testing.T) {
	fb := testFramebuffer(t, 2, 2, pixel.Transparent)
	defer func() {
		if recover() == nil {
			t.Errorf("expected translucent background to panic")
		}
	}()
	fb.ComposeBackground(pixel.RGBA{0xff, 0xff, 0xff, 0x80}, pixel.Transparent)
}
