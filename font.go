package trellis

// Font describes the typeface views render text with. Font is a plain value
// so environments stay comparable and text caches can diff it with ==.
type Font struct {
	Name   string
	Size   int // point size; backends map points to pixels
	Bold   bool
	Italic bool
}

// DefaultFont is used when neither the theme nor the backend supplies one.
var DefaultFont = Font{Name: "system", Size: 14}

// WithSize returns a copy of f at the given point size.
func (f Font) WithSize(size int) Font {
	f.Size = size
	return f
}

// WithBold returns a bold copy of f.
func (f Font) WithBold() Font {
	f.Bold = true
	return f
}
