package termbackend

import "github.com/trellisui/trellis"

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

// widget is one node of the native tree the backend paints. Geometry is
// relative to the parent; the engine assigns it through SetSize and
// SetPosition.
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

	ops    []trellis.PathOp
	fill   trellis.Color
	stroke trellis.Color

	fg trellis.Color

	action         func()
	onChangeText   func(string)
	onChangeOption func(int)
	onSelectRow    func(int)

	destroyed bool
}

// focusable reports whether the widget participates in the Tab focus ring.
func (w *widget) focusable() bool {
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
