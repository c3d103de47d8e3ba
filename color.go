package trellis

import "fmt"

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// RGB returns a fully opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Standard colors used as environment defaults.
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Clear = Color{}
)

// ParseColor parses "#rrggbb" or "#rrggbbaa" hex notation.
func ParseColor(s string) (Color, error) {
	switch len(s) {
	case 7:
		var c Color
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return Color{}, fmt.Errorf("trellis: invalid color %q: %w", s, err)
		}
		c.A = 255
		return c, nil
	case 9:
		var c Color
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return Color{}, fmt.Errorf("trellis: invalid color %q: %w", s, err)
		}
		return c, nil
	default:
		return Color{}, fmt.Errorf("trellis: invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
}

// String returns the color in hex notation.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ColorScheme is the platform-level light/dark preference.
type ColorScheme uint8

const (
	// LightScheme renders dark content on light surfaces.
	LightScheme ColorScheme = iota
	// DarkScheme renders light content on dark surfaces.
	DarkScheme
)

// DefaultForeground returns the text color conventional for the scheme.
func (s ColorScheme) DefaultForeground() Color {
	if s == DarkScheme {
		return White
	}
	return Black
}
