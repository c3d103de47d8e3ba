package trellis

import "image"

// MockWidget is the widget type created by MockBackend. All state a real
// toolkit would hold natively is exposed as plain fields for verification.
type MockWidget struct {
	Kind string
	ID   int

	Children []*MockWidget
	Size     Size
	Pos      Point // assigned by the parent container

	Text           string
	Label          string
	Placeholder    string
	Options        []string
	SelectedOption int
	SelectedRow    int
	ScrollBarH     bool
	ScrollBarV     bool
	Img            image.Image
	PathOps        []PathOp
	Fill           Color
	Stroke         Color

	Action         func()
	OnChangeText   func(string)
	OnChangeOption func(int)
	OnSelectRow    func(int)

	Destroyed   bool
	UpdateCount int
}

// MockBackend is an in-memory Backend for tests. It counts widget
// creations per kind, records every mutation on the widgets themselves,
// and measures text on a fixed character grid so layout results are
// deterministic.
type MockBackend struct {
	// CharW and LineH are the fixed glyph cell used by MeasureText.
	CharW int
	LineH int

	viewport      Size
	root          *MockWidget
	nextID        int
	creates       map[string]int
	destroyed     int
	naturalSizes  map[string]Size
	changeHandler func()
}

var _ Backend = (*MockBackend)(nil)

// NewMockBackend creates a mock backend with the given viewport.
func NewMockBackend(width, height int) *MockBackend {
	return &MockBackend{
		CharW:        8,
		LineH:        16,
		viewport:     Size{W: width, H: height},
		creates:      make(map[string]int),
		naturalSizes: make(map[string]Size),
	}
}

func (m *MockBackend) create(kind string) *MockWidget {
	m.nextID++
	m.creates[kind]++
	return &MockWidget{Kind: kind, ID: m.nextID, SelectedOption: -1, SelectedRow: -1}
}

func (m *MockBackend) CreateContainer() Widget  { return m.create("container") }
func (m *MockBackend) CreateTextView() Widget   { return m.create("text") }
func (m *MockBackend) CreateButton() Widget     { return m.create("button") }
func (m *MockBackend) CreateTextField() Widget  { return m.create("textfield") }
func (m *MockBackend) CreateImageView() Widget  { return m.create("image") }
func (m *MockBackend) CreatePicker() Widget     { return m.create("picker") }
func (m *MockBackend) CreateList() Widget       { return m.create("list") }
func (m *MockBackend) CreatePathWidget() Widget { return m.create("path") }

func (m *MockBackend) CreateScrollContainer(child Widget) Widget {
	w := m.create("scroll")
	w.Children = append(w.Children, child.(*MockWidget))
	return w
}

// NaturalSize returns the size scripted for the widget's kind via
// SetNaturalSize, or a degenerate zero size, which is what real toolkits
// report before first render.
func (m *MockBackend) NaturalSize(w Widget) Size {
	return m.naturalSizes[w.(*MockWidget).Kind]
}

func (m *MockBackend) SetSize(w Widget, size Size) {
	w.(*MockWidget).Size = size
}

func (m *MockBackend) SetPosition(container Widget, index int, pos Point) {
	c := container.(*MockWidget)
	if index < 0 || index >= len(c.Children) {
		panic("trellis: mock SetPosition index out of range")
	}
	c.Children[index].Pos = pos
}

// MeasureText measures on a fixed grid: every rune is CharW wide, every
// line LineH tall, wrapping at whole runes. A proposedWidth of 0 yields
// the narrowest possible wrap (one rune per line).
func (m *MockBackend) MeasureText(text string, font Font, proposedWidth int) Size {
	runes := len([]rune(text))
	if runes == 0 {
		return Size{}
	}
	if proposedWidth == Unbounded {
		return Size{W: runes * m.CharW, H: m.LineH}
	}
	perLine := proposedWidth / m.CharW
	if perLine < 1 {
		perLine = 1
	}
	lines := (runes + perLine - 1) / perLine
	width := runes
	if width > perLine {
		width = perLine
	}
	return Size{W: width * m.CharW, H: lines * m.LineH}
}

func (m *MockBackend) UpdateTextView(w Widget, text string, env Environment) {
	mw := w.(*MockWidget)
	mw.Text = text
	mw.UpdateCount++
}

func (m *MockBackend) UpdateButton(w Widget, label string, action func(), env Environment) {
	mw := w.(*MockWidget)
	mw.Label = label
	mw.Action = action
	mw.UpdateCount++
}

func (m *MockBackend) UpdateTextField(w Widget, text, placeholder string, onChange func(string), env Environment) {
	mw := w.(*MockWidget)
	mw.Text = text
	mw.Placeholder = placeholder
	mw.OnChangeText = onChange
	mw.UpdateCount++
}

func (m *MockBackend) SetScrollBarPresence(w Widget, horizontal, vertical bool) {
	mw := w.(*MockWidget)
	mw.ScrollBarH = horizontal
	mw.ScrollBarV = vertical
}

func (m *MockBackend) UpdatePicker(w Widget, options []string, onChange func(int), env Environment) {
	mw := w.(*MockWidget)
	mw.Options = options
	mw.OnChangeOption = onChange
	mw.UpdateCount++
}

func (m *MockBackend) SetSelectedOption(w Widget, index int) {
	w.(*MockWidget).SelectedOption = index
}

func (m *MockBackend) UpdateList(w Widget, onSelect func(int), env Environment) {
	mw := w.(*MockWidget)
	mw.OnSelectRow = onSelect
	mw.UpdateCount++
}

func (m *MockBackend) SetSelectedRow(w Widget, index int) {
	w.(*MockWidget).SelectedRow = index
}

func (m *MockBackend) UpdateImageView(w Widget, img image.Image, size Size) {
	w.(*MockWidget).Img = img
}

func (m *MockBackend) RenderPath(w Widget, path *Path, size Size, fill, stroke Color, strokeWidth int) {
	mw := w.(*MockWidget)
	mw.PathOps = path.Ops()
	mw.Fill = fill
	mw.Stroke = stroke
	mw.UpdateCount++
}

func (m *MockBackend) AddChild(container, child Widget) {
	c := container.(*MockWidget)
	c.Children = append(c.Children, child.(*MockWidget))
}

func (m *MockBackend) InsertChild(container, child Widget, index int) {
	c := container.(*MockWidget)
	cw := child.(*MockWidget)
	if index < 0 || index > len(c.Children) {
		panic("trellis: mock InsertChild index out of range")
	}
	c.Children = append(c.Children, nil)
	copy(c.Children[index+1:], c.Children[index:])
	c.Children[index] = cw
}

func (m *MockBackend) RemoveChild(container, child Widget) {
	c := container.(*MockWidget)
	cw := child.(*MockWidget)
	for i, w := range c.Children {
		if w == cw {
			c.Children = append(c.Children[:i], c.Children[i+1:]...)
			return
		}
	}
}

func (m *MockBackend) Destroy(w Widget) {
	w.(*MockWidget).Destroyed = true
	m.destroyed++
}

func (m *MockBackend) RootEnvironment() Environment {
	return Environment{
		Font:            DefaultFont,
		ForegroundColor: Black,
		Tint:            RGB(10, 132, 255),
		Calibration:     DefaultCalibration(),
	}
}

func (m *MockBackend) SetRootWidget(w Widget) {
	m.root = w.(*MockWidget)
}

func (m *MockBackend) ViewportSize() Size { return m.viewport }

func (m *MockBackend) SetChangeHandler(fn func()) {
	m.changeHandler = fn
}

// --- Test helper methods ---

// Root returns the installed root widget.
func (m *MockBackend) Root() *MockWidget { return m.root }

// CreateCount returns how many widgets of the given kind were created.
func (m *MockBackend) CreateCount(kind string) int { return m.creates[kind] }

// DestroyCount returns how many widgets were destroyed.
func (m *MockBackend) DestroyCount() int { return m.destroyed }

// SetNaturalSize scripts NaturalSize's answer for a widget kind.
func (m *MockBackend) SetNaturalSize(kind string, size Size) {
	m.naturalSizes[kind] = size
}

// Resize changes the viewport and fires the change handler, as a windowing
// system would.
func (m *MockBackend) Resize(width, height int) {
	m.viewport = Size{W: width, H: height}
	if m.changeHandler != nil {
		m.changeHandler()
	}
}
