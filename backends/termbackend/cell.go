package termbackend

import (
	"github.com/rivo/uniseg"

	"github.com/trellisui/trellis"
)

// Attr is a bitmask of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrUnderline
	AttrReverse
	AttrDim
)

// Style is the visual state of one cell.
type Style struct {
	Fg    trellis.Color
	Bg    trellis.Color
	Attrs Attr
}

// Has reports whether the attribute is set.
func (s Style) Has(a Attr) bool { return s.Attrs&a != 0 }

// With returns the style with the attribute added.
func (s Style) With(a Attr) Style {
	s.Attrs |= a
	return s
}

// Cell is one screen position. A wide grapheme occupies its primary cell
// plus Width-1 continuation cells (zero rune, zero width) to its right.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a cell for r, deriving the display width from the rune.
func NewCell(r rune, style Style) Cell {
	w := uniseg.StringWidth(string(r))
	if w < 1 {
		w = 1
	}
	return Cell{Rune: r, Style: style, Width: uint8(w)}
}

// continuationCell is the filler behind a wide primary cell.
func continuationCell(style Style) Cell {
	return Cell{Style: style, Width: 0}
}

// IsContinuation reports whether the cell is the trailing half of a wide
// grapheme. Continuation cells are never written to the terminal.
func (c Cell) IsContinuation() bool {
	return c.Rune == 0 && c.Width == 0
}

// CellChange is one cell that differs from the previously presented frame.
type CellChange struct {
	X, Y int
	Cell Cell
}
