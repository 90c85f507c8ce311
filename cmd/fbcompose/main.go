package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/BeatGlow/framebuffer"
	"github.com/BeatGlow/framebuffer/draw"
	"github.com/BeatGlow/framebuffer/pixel"
)

func main() {
	widthFlag := flag.Int("width", 64, "Framebuffer width")
	heightFlag := flag.Int("height", 32, "Framebuffer height")
	bgFlag := flag.String("bg", "black", "Background color (name, #rrggbb, rgb(r, g, b) or rgb(0xrr, 0xgg, 0xbb))")
	patternFlag := flag.String("pattern", "", "Checkerboard pattern color, alternating with the background")
	textFlag := flag.String("text", "Go", "Text to draw")
	sizeFlag := flag.Float64("size", 12, "Font size in pixels")
	scaleFlag := flag.String("scale", "none", "Interpolator: none, nearest, approx, bilinear or catmullrom")
	factorFlag := flag.Int("factor", 2, "Integer scale factor, used with -scale")
	outFlag := flag.String("o", "-", "Output file for raw RGBA rows, - for stdout")
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	var (
		bg      = framebuffer.ParseColor(*bgFlag)
		pattern = framebuffer.ParseColor(*patternFlag)
	)
	fmt.Fprintf(os.Stderr, "using background %v, pattern %v\n", bg, pattern)

	fb, err := framebuffer.New(*widthFlag, *heightFlag)
	if err != nil {
		fatal(err)
	}
	if err = drawScene(fb, *textFlag, *sizeFlag); err != nil {
		fatal(err)
	}

	if scale := strings.ToLower(*scaleFlag); scale != "none" {
		interp, ok := draw.Interpolators[scale]
		if !ok {
			fatal(fmt.Errorf("unsupported interpolator %q", scale))
		}
		scaled, err := framebuffer.New(fb.Width()**factorFlag, fb.Height()**factorFlag)
		if err != nil {
			fatal(err)
		}
		draw.Scale(scaled, fb, interp)
		fmt.Fprintf(os.Stderr, "scaled %s to %s using %s\n", fb.Bounds().Size(), scaled.Bounds().Size(), scale)
		fb = scaled
	}

	fb.ComposeBackground(bg, pattern)

	var w io.Writer = os.Stdout
	if *outFlag != "-" {
		f, err := os.Create(*outFlag)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		w = f
	}
	if err = writeRows(w, fb); err != nil {
		fatal(err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s RGBA frame (%d bytes per row)\n", fb.Bounds().Size(), fb.Stride)
}

// drawScene renders a translucent test image, so the background shows through.
func drawScene(fb *framebuffer.Framebuffer, text string, size float64) error {
	r := fb.Bounds()

	// Horizontal alpha ramp
	for y := 0; y < r.Max.Y; y++ {
		for x := 0; x < r.Max.X; x++ {
			fb.SetPixel(x, y, pixel.RGBA{
				uint8(x * 255 / r.Max.X),
				uint8(y * 255 / r.Max.Y),
				0x80,
				uint8(x * 255 / r.Max.X),
			})
		}
	}

	// Opaque border with translucent diagonals
	draw.Rectangle(fb, r, color.White)
	draw.Line(fb, r.Min, r.Max.Sub(image.Pt(1, 1)), color.NRGBA{R: 0xff, A: 0x80})
	draw.Line(fb, image.Pt(r.Max.X-1, 0), image.Pt(0, r.Max.Y-1), color.NRGBA{B: 0xff, A: 0x80})

	// Punch a fully transparent hole in the middle
	hole := image.Rect(0, 0, r.Dx()/4, r.Dy()/4).Add(r.Size().Div(2)).Sub(image.Pt(r.Dx()/8, r.Dy()/8))
	draw.Box(fb, hole, color.Transparent)

	if text == "" {
		return nil
	}
	face, err := draw.DefaultFace(size)
	if err != nil {
		return err
	}
	_, err = draw.Text(fb, face, image.Pt(2, 2), text, color.NRGBA{R: 0xff, G: 0xff, A: 0xc0})
	return err
}

// writeRows streams the framebuffer row by row.
func writeRows(w io.Writer, fb *framebuffer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	for _, row := range fb.Rows() {
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
