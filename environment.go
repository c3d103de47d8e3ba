package trellis

// Environment is the inherited configuration propagated top-down through the
// view tree. It is passed by value on every BuildChildren/Layout/Commit
// call; a view wanting to affect its descendants derives a copy with one of
// the With methods before recursing and never mutates the value it received.
type Environment struct {
	// Font is the typeface text-bearing views render with.
	Font Font
	// ForegroundColor is the color text and shapes default to.
	ForegroundColor Color
	// Tint colors interactive controls (buttons, pickers, selections).
	Tint Color
	// ColorScheme is the platform light/dark preference.
	ColorScheme ColorScheme
	// LayoutAxis is the major axis of the nearest enclosing stack. Axis-
	// relative views such as Spacer read it to know which way to expand.
	LayoutAxis Axis
	// Spacing is the default gap stacks place between children.
	Spacing int
	// Calibration carries per-widget-kind fallback metrics for backends
	// whose native size queries are degenerate before first render.
	Calibration Calibration
	// Window identifies the hosting window, for views that need to reach
	// native window services. Opaque to the engine.
	Window any
	// Backend is the backend rendering this tree.
	Backend Backend
}

// WithFont returns a copy of e using the given font.
func (e Environment) WithFont(f Font) Environment {
	e.Font = f
	return e
}

// WithForegroundColor returns a copy of e using the given foreground color.
func (e Environment) WithForegroundColor(c Color) Environment {
	e.ForegroundColor = c
	return e
}

// WithTint returns a copy of e using the given control tint.
func (e Environment) WithTint(c Color) Environment {
	e.Tint = c
	return e
}

// WithColorScheme returns a copy of e using the given scheme, resetting the
// foreground color to the scheme's conventional default.
func (e Environment) WithColorScheme(s ColorScheme) Environment {
	e.ColorScheme = s
	e.ForegroundColor = s.DefaultForeground()
	return e
}

// WithLayoutAxis returns a copy of e whose enclosing-stack axis is a.
func (e Environment) WithLayoutAxis(a Axis) Environment {
	e.LayoutAxis = a
	return e
}

// WithSpacing returns a copy of e using the given default stack spacing.
func (e Environment) WithSpacing(n int) Environment {
	e.Spacing = n
	return e
}
