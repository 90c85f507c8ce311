package framebuffer

import (
	"log"

	"github.com/BeatGlow/framebuffer/pixel"
)

// ParseColor converts a textual color specification as understood by [pixel.Parse].
//
// Unparseable text is logged and yields [pixel.Transparent], so callers can pass the result
// straight on to [Framebuffer.ComposeBackground].
func ParseColor(text string) pixel.RGBA {
	c, err := pixel.Parse(text)
	if err != nil {
		log.Printf("framebuffer: couldn't parse color: %v", err)
	}
	return c
}
