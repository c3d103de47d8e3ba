package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/trellisui/trellis"
)

// handleInput polls one tick of pointer and keyboard input and routes it to
// the widget tree. It runs from the Game adapter's Update, on the same
// goroutine as Scene.Pump, so callbacks may touch reactive state directly.
func (b *Backend) handleInput() {
	if b.root == nil {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		b.handleClick(x, y)
	}
	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		x, y := ebiten.CursorPosition()
		b.handleWheel(x, y, wx, wy)
	}
	b.handleKeys()
}

func (b *Backend) handleClick(x, y int) {
	hit := hitTest(b.root, trellis.Point{}, x, y)
	b.focus = hit
	if hit == nil {
		return
	}
	switch hit.kind {
	case kindButton:
		if hit.action != nil {
			hit.action()
		}
	case kindPicker:
		b.cyclePicker(hit)
	case kindList:
		if row := rowAt(hit, listOrigin(b.root, hit), x, y); row >= 0 {
			hit.selectedRow = row
			if hit.onSelectRow != nil {
				hit.onSelectRow(row)
			}
		}
	}
}

// cyclePicker advances to the next option, wrapping.
func (b *Backend) cyclePicker(w *widget) {
	if len(w.options) == 0 {
		return
	}
	next := (w.selected + 1) % len(w.options)
	if next < 0 {
		next = 0
	}
	w.selected = next
	if w.onChangeOption != nil {
		w.onChangeOption(next)
	}
}

// wheelStep is pixels of scroll per wheel unit.
const wheelStep = 20

func (b *Backend) handleWheel(x, y int, wx, wy float64) {
	target := scrollTargetAt(b.root, trellis.Point{}, x, y)
	if target == nil || len(target.children) == 0 {
		return
	}
	content := target.children[0].size
	target.scrollX = clampScroll(target.scrollX+int(wx*wheelStep), content.W-target.size.W)
	target.scrollY = clampScroll(target.scrollY-int(wy*wheelStep), content.H-target.size.H)
}

func clampScroll(v, max int) int {
	if max < 0 {
		max = 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// scrollTargetAt returns the innermost scroll container under (x, y).
func scrollTargetAt(w *widget, origin trellis.Point, x, y int) *widget {
	if w == nil || w.destroyed {
		return nil
	}
	x0, y0, x1, y1 := absRect(w, origin)
	if w.size.W > 0 && (x < x0 || x >= x1 || y < y0 || y >= y1) {
		return nil
	}
	childOrigin := trellis.Point{X: x0 - w.scrollX, Y: y0 - w.scrollY}
	for i := len(w.children) - 1; i >= 0; i-- {
		if hit := scrollTargetAt(w.children[i], childOrigin, x, y); hit != nil {
			return hit
		}
	}
	if w.kind == kindScroll {
		return w
	}
	return nil
}

// listOrigin walks the tree for the absolute origin of target's parent, so
// rowAt can translate the pointer into the list's coordinate space.
func listOrigin(root *widget, target *widget) trellis.Point {
	origin, _ := findOrigin(root, trellis.Point{}, target)
	return origin
}

func findOrigin(w *widget, origin trellis.Point, target *widget) (trellis.Point, bool) {
	if w == target {
		return origin, true
	}
	childOrigin := trellis.Point{X: origin.X + w.pos.X - w.scrollX, Y: origin.Y + w.pos.Y - w.scrollY}
	for _, c := range w.children {
		if found, ok := findOrigin(c, childOrigin, target); ok {
			return found, ok
		}
	}
	return trellis.Point{}, false
}

func (b *Backend) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		delta := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			delta = -1
		}
		b.moveFocus(delta)
		return
	}

	f := b.focus
	if f == nil || f.destroyed {
		return
	}
	switch f.kind {
	case kindButton:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && f.action != nil {
			f.action()
		}
	case kindTextField:
		b.editField(f)
	case kindPicker:
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			b.movePicker(f, -1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			b.movePicker(f, 1)
		}
	case kindList:
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			b.moveListSelection(f, -1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			b.moveListSelection(f, 1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && f.onSelectRow != nil && f.selectedRow >= 0 {
			f.onSelectRow(f.selectedRow)
		}
	}
}

func (b *Backend) editField(f *widget) {
	text := f.text
	for _, r := range ebiten.AppendInputChars(nil) {
		text += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && text != "" {
		runes := []rune(text)
		text = string(runes[:len(runes)-1])
	}
	if text == f.text {
		return
	}
	f.text = text
	if f.onChangeText != nil {
		f.onChangeText(text)
	}
}

func (b *Backend) movePicker(f *widget, delta int) {
	if len(f.options) == 0 {
		return
	}
	next := f.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(f.options) {
		next = len(f.options) - 1
	}
	if next == f.selected {
		return
	}
	f.selected = next
	if f.onChangeOption != nil {
		f.onChangeOption(next)
	}
}

func (b *Backend) moveListSelection(f *widget, delta int) {
	if len(f.children) == 0 {
		return
	}
	next := f.selectedRow + delta
	if next < 0 {
		next = 0
	}
	if next >= len(f.children) {
		next = len(f.children) - 1
	}
	if next == f.selectedRow {
		return
	}
	f.selectedRow = next
	if f.onSelectRow != nil {
		f.onSelectRow(next)
	}
}

// moveFocus advances the Tab focus ring in paint order.
func (b *Backend) moveFocus(delta int) {
	ring := b.focusRing()
	if len(ring) == 0 {
		b.focus = nil
		return
	}
	current := -1
	for i, w := range ring {
		if w == b.focus {
			current = i
			break
		}
	}
	next := current + delta
	switch {
	case next < 0:
		next = len(ring) - 1
	case next >= len(ring):
		next = 0
	}
	b.focus = ring[next]
}

func (b *Backend) focusRing() []*widget {
	var ring []*widget
	var walk func(w *widget)
	walk = func(w *widget) {
		if w == nil || w.destroyed {
			return
		}
		if w.interactive() {
			ring = append(ring, w)
		}
		for _, c := range w.children {
			walk(c)
		}
	}
	walk(b.root)
	return ring
}
