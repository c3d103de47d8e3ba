package termbackend

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rivo/uniseg"

	"github.com/trellisui/trellis"
	"github.com/trellisui/trellis/internal/debug"
)

// Backend implements trellis.Backend on a terminal cell grid.
type Backend struct {
	term  terminal
	front *Buffer
	root  *widget

	in  io.Reader
	out io.Writer

	focus         *widget
	changeHandler func()
}

var _ trellis.Backend = (*Backend)(nil)

// New creates a backend on stdin/stdout. It fails when stdout is not a
// terminal.
func New() (*Backend, error) {
	out := os.Stdout
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return nil, fmt.Errorf("termbackend: stdout is not a terminal")
	}
	return NewWithIO(out, os.Stdin), nil
}

// NewWithIO creates a backend on explicit streams, typically a pty in tests.
func NewWithIO(out io.Writer, in io.Reader) *Backend {
	return &Backend{
		term: newANSITerminal(out, in),
		in:   in,
		out:  out,
	}
}

func newWithTerminal(t terminal) *Backend {
	return &Backend{term: t}
}

// --- Widget construction ---

func (b *Backend) CreateContainer() trellis.Widget { return &widget{kind: kindContainer} }
func (b *Backend) CreateTextView() trellis.Widget  { return &widget{kind: kindText} }
func (b *Backend) CreateButton() trellis.Widget    { return &widget{kind: kindButton} }
func (b *Backend) CreateTextField() trellis.Widget { return &widget{kind: kindTextField} }
func (b *Backend) CreateImageView() trellis.Widget { return &widget{kind: kindImage} }
func (b *Backend) CreatePicker() trellis.Widget {
	return &widget{kind: kindPicker, selected: -1}
}
func (b *Backend) CreateList() trellis.Widget {
	return &widget{kind: kindList, selectedRow: -1}
}
func (b *Backend) CreatePathWidget() trellis.Widget { return &widget{kind: kindPath} }

func (b *Backend) CreateScrollContainer(child trellis.Widget) trellis.Widget {
	w := &widget{kind: kindScroll}
	w.children = append(w.children, child.(*widget))
	return w
}

// --- Geometry ---

// NaturalSize is always degenerate on a cell grid: widget sizes come from
// the environment's calibration metrics instead.
func (b *Backend) NaturalSize(w trellis.Widget) trellis.Size { return trellis.Size{} }

func (b *Backend) SetSize(w trellis.Widget, size trellis.Size) {
	w.(*widget).size = size
}

func (b *Backend) SetPosition(container trellis.Widget, index int, pos trellis.Point) {
	c := container.(*widget)
	if index < 0 || index >= len(c.children) {
		panic("termbackend: SetPosition index out of range")
	}
	c.children[index].pos = pos
}

// MeasureText measures in cells using grapheme cluster widths, word-wrapping
// at proposedWidth columns. Unbounded means a single unwrapped line; zero or
// negative means the narrowest wrap, which on a cell grid is the widest
// single word.
func (b *Backend) MeasureText(text string, font trellis.Font, proposedWidth int) trellis.Size {
	if text == "" {
		return trellis.Size{}
	}
	if proposedWidth == trellis.Unbounded {
		return trellis.Size{W: uniseg.StringWidth(text), H: 1}
	}
	if proposedWidth <= 0 {
		proposedWidth = widestWord(text)
	}
	lines := wrapText(text, proposedWidth)
	width := 0
	for _, line := range lines {
		if w := uniseg.StringWidth(line); w > width {
			width = w
		}
	}
	return trellis.Size{W: width, H: len(lines)}
}

// --- Content updates ---

func (b *Backend) UpdateTextView(w trellis.Widget, text string, env trellis.Environment) {
	tw := w.(*widget)
	tw.text = text
	tw.fg = env.ForegroundColor
}

func (b *Backend) UpdateButton(w trellis.Widget, label string, action func(), env trellis.Environment) {
	bw := w.(*widget)
	bw.text = label
	bw.action = action
	bw.fg = env.Tint
}

func (b *Backend) UpdateTextField(w trellis.Widget, text, placeholder string, onChange func(string), env trellis.Environment) {
	fw := w.(*widget)
	fw.text = text
	fw.placeholder = placeholder
	fw.onChangeText = onChange
	fw.fg = env.ForegroundColor
}

func (b *Backend) SetScrollBarPresence(w trellis.Widget, horizontal, vertical bool) {
	sw := w.(*widget)
	sw.barH = horizontal
	sw.barV = vertical
}

func (b *Backend) UpdatePicker(w trellis.Widget, options []string, onChange func(int), env trellis.Environment) {
	pw := w.(*widget)
	pw.options = options
	pw.onChangeOption = onChange
	pw.fg = env.ForegroundColor
}

func (b *Backend) SetSelectedOption(w trellis.Widget, index int) {
	w.(*widget).selected = index
}

func (b *Backend) UpdateList(w trellis.Widget, onSelect func(int), env trellis.Environment) {
	lw := w.(*widget)
	lw.onSelectRow = onSelect
	lw.fg = env.ForegroundColor
}

func (b *Backend) SetSelectedRow(w trellis.Widget, index int) {
	w.(*widget).selectedRow = index
}

// UpdateImageView is a no-op: a cell grid has no raster surface. The view
// still occupies its laid-out bounds.
func (b *Backend) UpdateImageView(w trellis.Widget, img image.Image, size trellis.Size) {}

func (b *Backend) RenderPath(w trellis.Widget, path *trellis.Path, size trellis.Size, fill, stroke trellis.Color, strokeWidth int) {
	pw := w.(*widget)
	pw.ops = path.Ops()
	pw.fill = fill
	pw.stroke = stroke
}

// --- Tree management ---

func (b *Backend) AddChild(container, child trellis.Widget) {
	c := container.(*widget)
	c.children = append(c.children, child.(*widget))
}

func (b *Backend) InsertChild(container, child trellis.Widget, index int) {
	c := container.(*widget)
	cw := child.(*widget)
	if index < 0 || index > len(c.children) {
		panic("termbackend: InsertChild index out of range")
	}
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = cw
}

func (b *Backend) RemoveChild(container, child trellis.Widget) {
	container.(*widget).removeChild(child.(*widget))
}

func (b *Backend) Destroy(w trellis.Widget) {
	dw := w.(*widget)
	dw.destroyed = true
	if b.focus == dw {
		b.focus = nil
	}
}

// --- Scene integration ---

// RootEnvironment describes the cell grid: a unit font, dark scheme, and
// calibration metrics in whole cells.
func (b *Backend) RootEnvironment() trellis.Environment {
	return trellis.Environment{
		Font:            trellis.Font{Name: "cell", Size: 1},
		ColorScheme:     trellis.DarkScheme,
		ForegroundColor: trellis.White,
		Tint:            trellis.RGB(80, 200, 255),
		Calibration: trellis.Calibration{
			Button:             trellis.WidgetCalibration{PaddingX: 2, MinWidth: 4, MinHeight: 1},
			Picker:             trellis.WidgetCalibration{PaddingX: 2, MinWidth: 5, MinHeight: 1},
			TextField:          trellis.WidgetCalibration{PaddingX: 1, MinWidth: 10, MinHeight: 1},
			ScrollBarThickness: 1,
		},
	}
}

func (b *Backend) SetRootWidget(w trellis.Widget) {
	b.root = w.(*widget)
}

func (b *Backend) ViewportSize() trellis.Size {
	w, h := b.term.Size()
	return trellis.Size{W: w, H: h}
}

func (b *Backend) SetChangeHandler(fn func()) {
	b.changeHandler = fn
}

// Present paints the widget tree into a fresh back buffer and flushes the
// cells that changed since the previous frame.
func (b *Backend) Present() {
	w, h := b.term.Size()
	back := NewBuffer(w, h)
	back.Clear(Style{Fg: trellis.White})
	if b.root != nil {
		p := &painter{buf: back, clip: rect{x1: w, y1: h}, focus: b.focus}
		p.paint(b.root, trellis.Point{})
	}
	changes := back.Diff(b.front)
	debug.Log("termbackend: present %dx%d, %d changed cells", w, h, len(changes))
	b.term.Flush(changes)
	b.front = back
}
