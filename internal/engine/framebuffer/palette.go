package framebuffer

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/Faultbox/goraster/internal/engine/lighting"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Palette maps light-level indices and the background marker to colors.
type Palette struct {
	Levels     [lighting.Levels]color.RGBA
	Background color.RGBA
}

// DefaultPalette is a dark-to-bright ramp on a near-black background.
func DefaultPalette() Palette {
	return Palette{
		Levels: [lighting.Levels]color.RGBA{
			{R: 0x1a, G: 0x1a, B: 0x24, A: 0xff},
			{R: 0x45, G: 0x45, B: 0x5a, A: 0xff},
			{R: 0x70, G: 0x70, B: 0x90, A: 0xff},
			{R: 0x9f, G: 0x9f, B: 0xc0, A: 0xff},
			{R: 0xd8, G: 0xd8, B: 0xf0, A: 0xff},
		},
		Background: color.RGBA{R: 0x0e, G: 0x0e, B: 0x14, A: 0xff},
	}
}

// ParsePalette builds a palette from "#rrggbb" strings, one per light
// level plus the background.
func ParsePalette(levels []string, background string) (Palette, error) {
	if len(levels) != lighting.Levels {
		return Palette{}, fmt.Errorf("expected %d palette colors, got %d", lighting.Levels, len(levels))
	}

	var p Palette
	for i, s := range levels {
		c, err := ParseColor(s)
		if err != nil {
			return Palette{}, fmt.Errorf("palette level %d: %w", i, err)
		}
		p.Levels[i] = c
	}

	c, err := ParseColor(background)
	if err != nil {
		return Palette{}, fmt.Errorf("palette background: %w", err)
	}
	p.Background = c

	return p, nil
}

// ParseColor parses a "#rrggbb" hex color string.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
