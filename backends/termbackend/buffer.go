package termbackend

import "github.com/rivo/uniseg"

// Buffer is a rectangular cell grid. Rendering draws into a back buffer;
// Diff compares it against the front buffer of the previous frame so only
// changed cells reach the terminal.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a cleared buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Size returns the buffer dimensions in cells.
func (b *Buffer) Size() (width, height int) { return b.width, b.height }

// Clear resets every cell to the zero cell with the given style.
func (b *Buffer) Clear(style Style) {
	blank := Cell{Rune: ' ', Style: style, Width: 1}
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// At returns the cell at (x, y), or the zero cell out of bounds.
func (b *Buffer) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes a cell, placing continuation cells behind wide graphemes.
// Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = c
	for i := 1; i < int(c.Width); i++ {
		if x+i >= b.width {
			break
		}
		b.cells[y*b.width+x+i] = continuationCell(c.Style)
	}
}

// SetString writes s starting at (x, y), one grapheme cluster per primary
// cell, and returns the number of columns consumed.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	col := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if w < 1 {
			continue
		}
		b.Set(col, y, Cell{Rune: runes[0], Style: style, Width: uint8(w)})
		col += w
	}
	return col - x
}

// Diff returns the cells in b that differ from prev, in row-major order.
// A nil or differently sized prev yields every cell.
func (b *Buffer) Diff(prev *Buffer) []CellChange {
	var changes []CellChange
	full := prev == nil || prev.width != b.width || prev.height != b.height
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if full || c != prev.cells[y*b.width+x] {
				changes = append(changes, CellChange{X: x, Y: y, Cell: c})
			}
		}
	}
	return changes
}
