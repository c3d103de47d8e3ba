package trellis

import "testing"

// proposalProbe is a rigid leaf recording the proposals its Layout receives.
type proposalProbe struct {
	w, h int
	got  *[]Proposal
}

var _ View = proposalProbe{}

func (v proposalProbe) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return NoChildren{}
}

func (v proposalProbe) BuildWidget(children Children, b Backend) Widget {
	return b.CreateContainer()
}

func (v proposalProbe) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	*v.got = append(*v.got, proposal)
	return FixedViewSize(Size{W: v.w, H: v.h})
}

func (v proposalProbe) Commit(w Widget, children Children, env Environment, b Backend) {}

func TestScrollView_VerticalOverflowShowsBar(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	var rows []View
	for i := 0; i < 10; i++ {
		rows = append(rows, Text{Content: "row"})
	}
	view := Scrolling(VStack{Children: rows}) // content ideal 160 tall
	n := NewNode(view, b, env, nil)
	vs := n.Update(view, Concrete(200, 100), env, false)

	if vs.Size != (Size{W: 200, H: 100}) {
		t.Errorf("scroll view size = %+v, want the 200x100 viewport", vs.Size)
	}
	w := n.Widget().(*MockWidget)
	if !w.ScrollBarV {
		t.Error("vertical scroll bar absent despite overflow")
	}
	if w.ScrollBarH {
		t.Error("horizontal scroll bar shown on a vertical-only scroll view")
	}
}

func TestScrollView_NoOverflowNoBar(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := Scrolling(Text{Content: "short"})
	n := NewNode(view, b, env, nil)
	n.Update(view, Concrete(200, 300), env, false)

	w := n.Widget().(*MockWidget)
	if w.ScrollBarV || w.ScrollBarH {
		t.Errorf("scroll bars shown without overflow: h=%v v=%v", w.ScrollBarH, w.ScrollBarV)
	}
}

func TestScrollView_HorizontalContentKeepsIdealWidth(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := ScrollView{Content: Text{Content: "abcdefghij"}, Horizontal: true} // ideal 80 wide
	n := NewNode(view, b, env, nil)
	vs := n.Update(view, Concrete(40, 50), env, false)

	w := n.Widget().(*MockWidget)
	if !w.ScrollBarH {
		t.Error("horizontal scroll bar absent despite overflow")
	}
	if vs.Size.W != 40 {
		t.Errorf("scroll view width = %d, want the 40px viewport", vs.Size.W)
	}
	// The text must not wrap: it scrolls at its ideal width instead.
	if got := w.Children[0].Size; got != (Size{W: 80, H: 16}) {
		t.Errorf("content size = %+v, want unwrapped 80x16", got)
	}
}

func TestScrollView_BarThicknessShrinksViewport(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	var proposals []Proposal
	view := Scrolling(proposalProbe{w: 200, h: 400, got: &proposals})
	n := NewNode(view, b, env, nil)
	n.Update(view, Concrete(100, 100), env, true)

	if len(proposals) != 2 {
		t.Fatalf("content laid out %d times, want 2 (probe then final)", len(proposals))
	}
	// Final pass: width shrunk by the 12px bar, height free for scrolling.
	final := proposals[1]
	if got := final.Width.Resolve(0); got != 88 {
		t.Errorf("final content width proposal = %d, want 88 (100 - bar thickness)", got)
	}
	if final.Height != Ideal() {
		t.Errorf("final content height proposal = %+v, want Ideal along the scroll axis", final.Height)
	}
}
