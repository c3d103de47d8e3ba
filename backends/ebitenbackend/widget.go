package ebitenbackend

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/trellisui/trellis"
)

type widgetKind uint8

const (
	kindContainer widgetKind = iota
	kindText
	kindButton
	kindTextField
	kindImage
	kindScroll
	kindPicker
	kindList
	kindPath
)

// widget is one node of the native tree. Geometry is parent-relative; the
// engine drives it through SetSize and SetPosition.
type widget struct {
	kind     widgetKind
	children []*widget

	pos  trellis.Point
	size trellis.Size

	text        string
	placeholder string
	options     []string
	selected    int
	selectedRow int
	barH, barV  bool

	// scrollX and scrollY offset a scroll container's content. They are
	// presentation state owned by the backend, not the engine.
	scrollX, scrollY int

	img image.Image
	tex *ebiten.Image

	font trellis.Font

	ops         []trellis.PathOp
	fill        trellis.Color
	stroke      trellis.Color
	strokeWidth int

	fg   trellis.Color
	tint trellis.Color

	action         func()
	onChangeText   func(string)
	onChangeOption func(int)
	onSelectRow    func(int)

	destroyed bool
}

func (w *widget) interactive() bool {
	switch w.kind {
	case kindButton, kindTextField, kindPicker, kindList:
		return true
	}
	return false
}

func (w *widget) removeChild(child *widget) {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			return
		}
	}
}

// absRect is a widget's screen-space rectangle given its parent's origin.
func absRect(w *widget, origin trellis.Point) (x0, y0, x1, y1 int) {
	x0 = origin.X + w.pos.X
	y0 = origin.Y + w.pos.Y
	return x0, y0, x0 + w.size.W, y0 + w.size.H
}

// hitTest returns the innermost interactive widget containing (x, y), in
// front-to-back order within each level.
func hitTest(w *widget, origin trellis.Point, x, y int) *widget {
	if w == nil || w.destroyed {
		return nil
	}
	x0, y0, x1, y1 := absRect(w, origin)
	if x < x0 || x >= x1 || y < y0 || y >= y1 {
		return nil
	}
	childOrigin := trellis.Point{X: x0 - w.scrollX, Y: y0 - w.scrollY}
	for i := len(w.children) - 1; i >= 0; i-- {
		if hit := hitTest(w.children[i], childOrigin, x, y); hit != nil {
			return hit
		}
	}
	if w.interactive() {
		return w
	}
	return nil
}

// rowAt returns the index of the list row containing (x, y), or -1.
func rowAt(list *widget, origin trellis.Point, x, y int) int {
	x0, y0, _, _ := absRect(list, origin)
	for i, row := range list.children {
		ry := y0 + row.pos.Y
		if x >= x0 && x < x0+list.size.W && y >= ry && y < ry+row.size.H {
			return i
		}
	}
	return -1
}
