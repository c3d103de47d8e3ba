package ebitenbackend

import (
	"image"

	"github.com/trellisui/trellis"
	"github.com/trellisui/trellis/internal/debug"
)

// Config configures a backend. FontData is required: all text is shaped
// through the supplied TrueType face.
type Config struct {
	// FontData is raw TTF/OTF bytes.
	FontData []byte
	// Width and Height are the initial window size in pixels. Zero values
	// default to 800x600.
	Width  int
	Height int
	// Scheme selects the root color scheme. Defaults to light.
	Scheme trellis.ColorScheme
}

// Backend implements trellis.Backend on an Ebitengine window.
type Backend struct {
	fonts  *fontCache
	root   *widget
	scheme trellis.ColorScheme

	viewport      trellis.Size
	changeHandler func()

	focus  *widget
	images map[*widget]imageEntry
}

type imageEntry struct {
	src image.Image
}

var _ trellis.Backend = (*Backend)(nil)

// New creates a backend from cfg.
func New(cfg Config) (*Backend, error) {
	fonts, err := newFontCache(cfg.FontData)
	if err != nil {
		return nil, err
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 600
	}
	return &Backend{
		fonts:    fonts,
		scheme:   cfg.Scheme,
		viewport: trellis.Size{W: w, H: h},
		images:   make(map[*widget]imageEntry),
	}, nil
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

// NaturalSize is degenerate before the first frame; control sizing falls
// back to the environment's calibration metrics.
func (b *Backend) NaturalSize(w trellis.Widget) trellis.Size { return trellis.Size{} }

func (b *Backend) SetSize(w trellis.Widget, size trellis.Size) {
	w.(*widget).size = size
}

func (b *Backend) SetPosition(container trellis.Widget, index int, pos trellis.Point) {
	c := container.(*widget)
	if index < 0 || index >= len(c.children) {
		panic("ebitenbackend: SetPosition index out of range")
	}
	c.children[index].pos = pos
}

func (b *Backend) MeasureText(s string, font trellis.Font, proposedWidth int) trellis.Size {
	size, _ := b.fonts.measure(s, font, proposedWidth)
	return size
}

// --- Content updates ---

func (b *Backend) UpdateTextView(w trellis.Widget, s string, env trellis.Environment) {
	tw := w.(*widget)
	tw.text = s
	tw.fg = env.ForegroundColor
	tw.font = env.Font
}

func (b *Backend) UpdateButton(w trellis.Widget, label string, action func(), env trellis.Environment) {
	bw := w.(*widget)
	bw.text = label
	bw.action = action
	bw.fg = env.ForegroundColor
	bw.font = env.Font
	bw.tint = env.Tint
}

func (b *Backend) UpdateTextField(w trellis.Widget, s, placeholder string, onChange func(string), env trellis.Environment) {
	fw := w.(*widget)
	fw.text = s
	fw.placeholder = placeholder
	fw.onChangeText = onChange
	fw.fg = env.ForegroundColor
	fw.font = env.Font
	fw.tint = env.Tint
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
	pw.font = env.Font
	pw.tint = env.Tint
}

func (b *Backend) SetSelectedOption(w trellis.Widget, index int) {
	w.(*widget).selected = index
}

func (b *Backend) UpdateList(w trellis.Widget, onSelect func(int), env trellis.Environment) {
	lw := w.(*widget)
	lw.onSelectRow = onSelect
	lw.fg = env.ForegroundColor
	lw.font = env.Font
	lw.tint = env.Tint
}

func (b *Backend) SetSelectedRow(w trellis.Widget, index int) {
	w.(*widget).selectedRow = index
}

func (b *Backend) UpdateImageView(w trellis.Widget, img image.Image, size trellis.Size) {
	iw := w.(*widget)
	iw.img = img
	// Drop the cached GPU texture when the source changes; the draw pass
	// re-uploads lazily.
	if entry, ok := b.images[iw]; !ok || entry.src != img {
		b.images[iw] = imageEntry{src: img}
		dropTexture(iw)
	}
}

func (b *Backend) RenderPath(w trellis.Widget, path *trellis.Path, size trellis.Size, fill, stroke trellis.Color, strokeWidth int) {
	pw := w.(*widget)
	pw.ops = path.Ops()
	pw.fill = fill
	pw.stroke = stroke
	pw.strokeWidth = strokeWidth
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
		panic("ebitenbackend: InsertChild index out of range")
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
	delete(b.images, dw)
	dropTexture(dw)
	if b.focus == dw {
		b.focus = nil
	}
}

// --- Scene integration ---

func (b *Backend) RootEnvironment() trellis.Environment {
	env := trellis.Environment{
		Font:        trellis.Font{Name: "default", Size: 14},
		ColorScheme: b.scheme,
		Tint:        trellis.RGB(10, 132, 255),
		Calibration: trellis.DefaultCalibration(),
	}
	env.ForegroundColor = env.ColorScheme.DefaultForeground()
	return env
}

func (b *Backend) SetRootWidget(w trellis.Widget) {
	b.root = w.(*widget)
}

func (b *Backend) ViewportSize() trellis.Size { return b.viewport }

func (b *Backend) SetChangeHandler(fn func()) {
	b.changeHandler = fn
}

// layout records the window size Ebitengine reports, firing the change
// handler when it differs from the current viewport.
func (b *Backend) layout(width, height int) {
	if b.viewport.W == width && b.viewport.H == height {
		return
	}
	debug.Log("ebitenbackend: viewport %dx%d", width, height)
	b.viewport = trellis.Size{W: width, H: height}
	if b.changeHandler != nil {
		b.changeHandler()
	}
}
