package trellis

import (
	"testing"

	"github.com/trellisui/trellis/internal/layout"
)

// flexView is a test leaf with explicit major-axis flexibility on the
// horizontal axis and a rigid 10px height.
type flexView struct {
	ideal int
	min   int
	max   int // Unbounded for no maximum
}

var _ View = flexView{}

func (v flexView) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return &leafStorage{}
}

func (v flexView) BuildWidget(children Children, b Backend) Widget {
	return b.CreateContainer()
}

func (v flexView) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	width := layout.Clamp(proposal.Width.Resolve(v.ideal), v.min, v.max)
	size := Size{W: width, H: 10}
	children.(*leafStorage).size = size
	return ViewSize{
		Size:                size,
		Ideal:               Size{W: v.ideal, H: 10},
		IdealWidthForHeight: v.ideal,
		IdealHeightForWidth: 10,
		MinWidth:            v.min,
		MinHeight:           10,
		MaxWidth:            v.max,
		MaxHeight:           10,
	}
}

func (v flexView) Commit(w Widget, children Children, env Environment, b Backend) {
	b.SetSize(w, children.(*leafStorage).size)
}

func TestHStack_FlexDistribution(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	stack := HStack{Children: []View{
		flexView{ideal: 50, min: 0, max: 100},
		flexView{ideal: 100, min: 0, max: Unbounded},
		flexView{ideal: 150, min: 0, max: 150},
	}}
	n := NewNode(stack, b, env, nil)
	vs := n.Update(stack, Concrete(400, 50), env, false)

	container := n.Widget().(*MockWidget)
	wantWidths := []int{100, 150, 150}
	wantX := []int{0, 100, 250}
	for i, c := range container.Children {
		if c.Size.W != wantWidths[i] {
			t.Errorf("child %d width = %d, want %d", i, c.Size.W, wantWidths[i])
		}
		if c.Pos.X != wantX[i] {
			t.Errorf("child %d x = %d, want %d", i, c.Pos.X, wantX[i])
		}
	}
	if vs.Size.W != 400 {
		t.Errorf("stack width = %d, want 400 (children sum to the proposal)", vs.Size.W)
	}
}

func TestVStack_StacksWithSpacing(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	stack := VStack{Spacing: 4, Children: []View{
		Text{Content: "aa"},   // 16x16 on the mock grid
		Text{Content: "bbbb"}, // 32x16
	}}
	n := NewNode(stack, b, env, nil)
	vs := n.Update(stack, IdealProposal(), env, false)

	if vs.Size.H != 36 {
		t.Errorf("stack height = %d, want 36 (16+4+16)", vs.Size.H)
	}
	if vs.Size.W != 32 {
		t.Errorf("stack width = %d, want 32 (widest child)", vs.Size.W)
	}
	container := n.Widget().(*MockWidget)
	if got := container.Children[1].Pos.Y; got != 20 {
		t.Errorf("second child y = %d, want 20", got)
	}
}

func TestVStack_CrossAxisAlignment(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	type tc struct {
		align Alignment
		wantX int
	}
	tests := map[string]tc{
		"leading":  {AlignLeading, 0},
		"center":   {AlignCenter, 42}, // round((100-16)/2)
		"trailing": {AlignTrailing, 84},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stack := VStack{Alignment: tt.align, Children: []View{Text{Content: "aa"}}}
			n := NewNode(stack, b, env, nil)
			n.Update(stack, Concrete(100, 100), env, false)
			container := n.Widget().(*MockWidget)
			if got := container.Children[0].Pos.X; got != tt.wantX {
				t.Errorf("child x = %d, want %d", got, tt.wantX)
			}
		})
	}
}

func TestHStack_SpacerPushesSiblingsApart(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	stack := HStack{Children: []View{
		Text{Content: "ab"}, // 16 wide
		Spacer{},
		Text{Content: "cd"}, // 16 wide
	}}
	n := NewNode(stack, b, env, nil)
	n.Update(stack, Concrete(200, 20), env, false)

	container := n.Widget().(*MockWidget)
	if got := container.Children[2].Pos.X; got != 184 {
		t.Errorf("trailing text x = %d, want 184 (pushed to the far edge)", got)
	}
	if got := container.Children[1].Size.W; got != 168 {
		t.Errorf("spacer width = %d, want 168", got)
	}
}

func TestStack_ChildCountChangeReconciled(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	three := VStack{Children: []View{Text{Content: "a"}, Text{Content: "b"}, Text{Content: "c"}}}
	n := NewNode(three, b, env, nil)
	n.Update(three, Concrete(200, 200), env, false)

	two := VStack{Children: []View{Text{Content: "a"}, Text{Content: "b"}}}
	n.Update(two, Concrete(200, 200), env, false)
	if got := len(n.Widget().(*MockWidget).Children); got != 2 {
		t.Errorf("container children after truncation = %d, want 2", got)
	}

	four := VStack{Children: []View{Text{Content: "a"}, Text{Content: "b"}, Text{Content: "c"}, Text{Content: "d"}}}
	n.Update(four, Concrete(200, 200), env, false)
	if got := len(n.Widget().(*MockWidget).Children); got != 4 {
		t.Errorf("container children after growth = %d, want 4", got)
	}
	// a, b survived; c, d are fresh; total text widgets: 3 + 2 new.
	if got := b.CreateCount("text"); got != 5 {
		t.Errorf("text widgets created = %d, want 5", got)
	}
}

func TestStack_SizeContainment(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	stack := HStack{Children: []View{
		flexView{ideal: 50, min: 30, max: 100},
		flexView{ideal: 100, min: 50, max: 200},
	}}
	n := NewNode(stack, b, env, nil)

	for _, width := range []int{10, 80, 150, 300, 500} {
		vs := n.Update(stack, Concrete(width, 50), env, true)
		if vs.MinWidth > vs.Size.W {
			t.Errorf("proposal %d: size %d below minimum %d", width, vs.Size.W, vs.MinWidth)
		}
		if vs.MaxWidth != Unbounded && vs.Size.W > vs.MaxWidth {
			t.Errorf("proposal %d: size %d above maximum %d", width, vs.Size.W, vs.MaxWidth)
		}
	}
}
