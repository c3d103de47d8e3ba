package trellis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WidgetCalibration holds per-widget-kind fallback metrics used when a
// backend's natural-size query is degenerate before first render. The
// numbers are backend- and theme-version-specific: they are calibration
// data to be re-measured per target platform, not portable constants.
type WidgetCalibration struct {
	PaddingX  int `yaml:"paddingX"`
	PaddingY  int `yaml:"paddingY"`
	MinWidth  int `yaml:"minWidth"`
	MinHeight int `yaml:"minHeight"`
}

// Pad grows a content size by the calibrated padding, enforcing the minima.
func (c WidgetCalibration) Pad(content Size) Size {
	s := Size{W: content.W + 2*c.PaddingX, H: content.H + 2*c.PaddingY}
	if s.W < c.MinWidth {
		s.W = c.MinWidth
	}
	if s.H < c.MinHeight {
		s.H = c.MinHeight
	}
	return s
}

// Calibration bundles the per-widget-kind metrics a backend ships or a
// theme file overrides.
type Calibration struct {
	Button             WidgetCalibration `yaml:"button"`
	Picker             WidgetCalibration `yaml:"picker"`
	TextField          WidgetCalibration `yaml:"textField"`
	ScrollBarThickness int               `yaml:"scrollBarThickness"`
}

// DefaultCalibration returns conservative metrics usable by any backend
// until platform-measured numbers replace them.
func DefaultCalibration() Calibration {
	return Calibration{
		Button:             WidgetCalibration{PaddingX: 14, PaddingY: 6, MinWidth: 40, MinHeight: 28},
		Picker:             WidgetCalibration{PaddingX: 24, PaddingY: 6, MinWidth: 60, MinHeight: 28},
		TextField:          WidgetCalibration{PaddingX: 8, PaddingY: 6, MinWidth: 100, MinHeight: 28},
		ScrollBarThickness: 12,
	}
}

// Theme is the human-edited YAML description of fonts, palette, and widget
// calibration a scene applies over a backend's root environment.
type Theme struct {
	ColorScheme string `yaml:"colorScheme"` // "light" or "dark"
	Font        struct {
		Name string `yaml:"name"`
		Size int    `yaml:"size"`
	} `yaml:"font"`
	Palette struct {
		Foreground string `yaml:"foreground"`
		Tint       string `yaml:"tint"`
	} `yaml:"palette"`
	Calibration *Calibration `yaml:"calibration"`
}

// LoadTheme reads and parses a theme file.
func LoadTheme(path string) (*Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trellis: reading theme: %w", err)
	}
	return ParseTheme(raw)
}

// ParseTheme parses YAML theme bytes.
func ParseTheme(raw []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("trellis: parsing theme: %w", err)
	}
	return &t, nil
}

// Apply overlays the theme onto env, leaving unset fields alone.
func (t *Theme) Apply(env Environment) (Environment, error) {
	switch t.ColorScheme {
	case "":
	case "light":
		env = env.WithColorScheme(LightScheme)
	case "dark":
		env = env.WithColorScheme(DarkScheme)
	default:
		return env, fmt.Errorf("trellis: unknown color scheme %q", t.ColorScheme)
	}
	if t.Font.Name != "" {
		env.Font.Name = t.Font.Name
	}
	if t.Font.Size > 0 {
		env.Font.Size = t.Font.Size
	}
	if t.Palette.Foreground != "" {
		c, err := ParseColor(t.Palette.Foreground)
		if err != nil {
			return env, err
		}
		env.ForegroundColor = c
	}
	if t.Palette.Tint != "" {
		c, err := ParseColor(t.Palette.Tint)
		if err != nil {
			return env, err
		}
		env.Tint = c
	}
	if t.Calibration != nil {
		env.Calibration = *t.Calibration
	}
	return env, nil
}
