package pixel

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by [Parse] for text that is not a color.
var ErrInvalidColor = errors.New("pixel: invalid color")

var (
	hexPattern       = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	rgbPattern       = regexp.MustCompile(`(?i)^rgb\(\s*([+-]?[0-9]+)\s*,\s*([+-]?[0-9]+)\s*,\s*([+-]?[0-9]+)\s*\)$`)
	rgbPrefixPattern = regexp.MustCompile(`(?i)^rgb\(\s*0x([0-9a-f]+)\s*,\s*0x([0-9a-f]+)\s*,\s*0x([0-9a-f]+)\s*\)$`)
)

// matcher attempts to read an opaque color from the whole of s.
type matcher func(s string) (RGBA, bool)

// Tried in order, the first match wins.
var matchers = []matcher{
	matchHex,
	matchRGB,
	matchRGBPrefixed,
}

// Parse converts a textual color specification to a packed color.
//
// Accepted are color names such as "red" or "DarkSlateGray" (case-insensitive), "#rrggbb",
// "rgb(r, g, b)" with decimal components and "rgb(0xrr, 0xgg, 0xbb)" with hexadecimal
// components. Components outside of 0-255 are clamped. Parsed colors are always opaque.
//
// Empty text yields [Transparent] without error. Anything else that can't be parsed
// yields [Transparent] and an error wrapping [ErrInvalidColor].
func Parse(text string) (RGBA, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Transparent, nil
	}

	if hex, ok := lookupName(s); ok {
		s = hex
	}

	for _, match := range matchers {
		if c, ok := match(s); ok {
			return c, nil
		}
	}
	return Transparent, fmt.Errorf("%w %q", ErrInvalidColor, text)
}

// lookupName translates a color name to its #rrggbb notation.
func lookupName(name string) (string, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
}

func matchHex(s string) (RGBA, bool) {
	if !hexPattern.MatchString(s) {
		return Transparent, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Transparent, false
	}
	r, g, b := c.RGB255()
	return RGBA{r, g, b, 0xff}, true
}

func matchRGB(s string) (RGBA, bool) {
	return matchComponents(rgbPattern, s, 10)
}

func matchRGBPrefixed(s string) (RGBA, bool) {
	return matchComponents(rgbPrefixPattern, s, 16)
}

func matchComponents(pattern *regexp.Regexp, s string, base int) (RGBA, bool) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Transparent, false
	}

	c := RGBA{3: 0xff}
	for i, v := range m[1:] {
		var ok bool
		if c[i], ok = component(v, base); !ok {
			return Transparent, false
		}
	}
	return c, true
}

// component parses one channel value, clamped to 0-255.
func component(s string, base int) (uint8, bool) {
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		// ParseInt saturates to the nearest representable value.
	}
	switch {
	case v < 0:
		return 0, true
	case v > 0xff:
		return 0xff, true
	default:
		return uint8(v), true
	}
}
