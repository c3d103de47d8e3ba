package termbackend

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/trellisui/trellis"
)

// rect is a half-open cell rectangle.
type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) intersect(o rect) rect {
	if o.x0 > r.x0 {
		r.x0 = o.x0
	}
	if o.y0 > r.y0 {
		r.y0 = o.y0
	}
	if o.x1 < r.x1 {
		r.x1 = o.x1
	}
	if o.y1 < r.y1 {
		r.y1 = o.y1
	}
	return r
}

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// painter walks the widget tree, drawing each widget clipped to its
// ancestors' bounds.
type painter struct {
	buf   *Buffer
	clip  rect
	focus *widget
}

func (p *painter) set(x, y int, c Cell) {
	if !p.clip.contains(x, y) {
		return
	}
	p.buf.Set(x, y, c)
}

func (p *painter) drawString(x, y int, s string, style Style) {
	col := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if w < 1 {
			continue
		}
		p.set(col, y, Cell{Rune: g.Runes()[0], Style: style, Width: uint8(w)})
		col += w
	}
}

func (p *painter) paint(w *widget, origin trellis.Point) {
	if w.destroyed {
		return
	}
	x, y := origin.X+w.pos.X, origin.Y+w.pos.Y
	bounds := rect{x0: x, y0: y, x1: x + w.size.W, y1: y + w.size.H}

	saved := p.clip
	p.clip = p.clip.intersect(bounds)
	defer func() { p.clip = saved }()

	switch w.kind {
	case kindText:
		p.drawText(w, x, y)
	case kindButton:
		p.drawButton(w, x, y)
	case kindTextField:
		p.drawTextField(w, x, y)
	case kindPicker:
		p.drawPicker(w, x, y)
	case kindScroll:
		p.drawScroll(w, x, y)
	case kindList:
		p.drawList(w, x, y)
	case kindPath:
		p.drawPath(w, x, y)
	}

	if w.kind != kindScroll && w.kind != kindList {
		for _, c := range w.children {
			p.paint(c, trellis.Point{X: x, Y: y})
		}
	}
}

func (p *painter) drawText(w *widget, x, y int) {
	style := Style{Fg: w.fg}
	for i, line := range wrapText(w.text, w.size.W) {
		if i >= w.size.H {
			break
		}
		p.drawString(x, y+i, line, style)
	}
}

func (p *painter) drawButton(w *widget, x, y int) {
	style := Style{Fg: w.fg}
	if p.focus == w {
		style = style.With(AttrReverse)
	}
	label := "[ " + w.text + " ]"
	p.drawString(x, y, padToWidth(label, w.size.W), style)
}

func (p *painter) drawTextField(w *widget, x, y int) {
	style := Style{Fg: w.fg}.With(AttrUnderline)
	content := w.text
	if content == "" {
		content = w.placeholder
		style = style.With(AttrDim)
	}
	if p.focus == w {
		style = style.With(AttrReverse)
	}
	p.drawString(x, y, padToWidth(" "+content, w.size.W), style)
}

func (p *painter) drawPicker(w *widget, x, y int) {
	style := Style{Fg: w.fg}
	if p.focus == w {
		style = style.With(AttrReverse)
	}
	current := ""
	if w.selected >= 0 && w.selected < len(w.options) {
		current = w.options[w.selected]
	}
	p.drawString(x, y, padToWidth("< "+current+" >", w.size.W), style)
}

func (p *painter) drawScroll(w *widget, x, y int) {
	inner := p.clip
	if w.barV {
		inner.x1--
	}
	if w.barH {
		inner.y1--
	}
	saved := p.clip
	p.clip = inner
	for _, c := range w.children {
		p.paint(c, trellis.Point{X: x, Y: y})
	}
	p.clip = saved

	bar := Style{Fg: w.fg}.With(AttrDim)
	if w.barV {
		for row := y; row < y+w.size.H; row++ {
			p.set(x+w.size.W-1, row, NewCell('│', bar))
		}
	}
	if w.barH {
		for col := x; col < x+w.size.W; col++ {
			p.set(col, y+w.size.H-1, NewCell('─', bar))
		}
	}
}

func (p *painter) drawList(w *widget, x, y int) {
	for i, row := range w.children {
		p.paint(row, trellis.Point{X: x, Y: y})
		if i == w.selectedRow {
			p.highlightRow(x, y+row.pos.Y, w.size.W, row.size.H)
		}
	}
}

// highlightRow re-styles the selected row's cells with reverse video.
func (p *painter) highlightRow(x, y, width, height int) {
	if height < 1 {
		height = 1
	}
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			if !p.clip.contains(col, row) {
				continue
			}
			c := p.buf.At(col, row)
			if c.Width == 0 && c.Rune == 0 && c.Style == (Style{}) {
				c = Cell{Rune: ' ', Width: 1}
			}
			c.Style = c.Style.With(AttrReverse)
			p.buf.Set(col, row, c)
		}
	}
}

// drawPath rasterizes the path's segments into block cells. Quadratic
// segments are flattened through the control point.
func (p *painter) drawPath(w *widget, x, y int) {
	style := Style{Fg: w.stroke}
	if w.stroke.A == 0 {
		style.Fg = w.fill
	}
	var cur, start trellis.Point
	for _, op := range w.ops {
		switch op.Kind {
		case trellis.PathMoveTo:
			cur = op.To
			start = op.To
		case trellis.PathLineTo:
			p.drawLine(x, y, cur, op.To, style)
			cur = op.To
		case trellis.PathQuadTo:
			p.drawLine(x, y, cur, op.Control, style)
			p.drawLine(x, y, op.Control, op.To, style)
			cur = op.To
		case trellis.PathClose:
			p.drawLine(x, y, cur, start, style)
			cur = start
		}
	}
}

// drawLine draws a straight cell run between two path points (Bresenham).
func (p *painter) drawLine(ox, oy int, from, to trellis.Point, style Style) {
	x0, y0 := from.X, from.Y
	x1, y1 := to.X, to.Y
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		p.set(ox+x0, oy+y0, Cell{Rune: '█', Style: style, Width: 1})
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// padToWidth pads s with spaces to exactly width cells, truncating by
// grapheme when it is too long.
func padToWidth(s string, width int) string {
	w := uniseg.StringWidth(s)
	if w == width {
		return s
	}
	if w < width {
		return s + strings.Repeat(" ", width-w)
	}
	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		gw := g.Width()
		if used+gw > width {
			break
		}
		sb.WriteString(g.Str())
		used += gw
	}
	for used < width {
		sb.WriteByte(' ')
		used++
	}
	return sb.String()
}

// wrapText greedily word-wraps text to the given cell width. Words wider
// than a full line hard-break at grapheme boundaries.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}
	return lines
}

func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}
	for _, word := range words {
		ww := uniseg.StringWidth(word)
		if ww > width {
			if lineWidth > 0 {
				flush()
			}
			for _, piece := range hardBreak(word, width) {
				lines = append(lines, piece)
			}
			continue
		}
		sep := 0
		if lineWidth > 0 {
			sep = 1
		}
		if lineWidth+sep+ww > width {
			flush()
			sep = 0
		}
		if sep > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += ww
	}
	if lineWidth > 0 {
		flush()
	}
	return lines
}

func hardBreak(word string, width int) []string {
	var pieces []string
	var piece strings.Builder
	used := 0
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		gw := g.Width()
		if gw < 1 {
			continue
		}
		if used+gw > width && used > 0 {
			pieces = append(pieces, piece.String())
			piece.Reset()
			used = 0
		}
		piece.WriteString(g.Str())
		used += gw
	}
	if used > 0 {
		pieces = append(pieces, piece.String())
	}
	return pieces
}

// widestWord returns the cell width of the widest single word, the floor
// below which wrapping cannot compress the text.
func widestWord(text string) int {
	max := 1
	for _, word := range strings.Fields(text) {
		if w := uniseg.StringWidth(word); w > max {
			max = w
		}
	}
	return max
}
