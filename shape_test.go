package trellis

import "testing"

func triangle() *Path {
	return new(Path).MoveTo(0, 40).LineTo(20, 0).LineTo(40, 40).Close()
}

func TestPath_Bounds(t *testing.T) {
	type tc struct {
		path *Path
		want Size
	}
	tests := map[string]tc{
		"empty":    {path: new(Path), want: Size{}},
		"triangle": {path: triangle(), want: Size{W: 40, H: 40}},
		"control point extends": {
			path: new(Path).MoveTo(0, 0).QuadTo(60, 10, 30, 20),
			want: Size{W: 60, H: 20},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.path.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPath_Equal(t *testing.T) {
	a := triangle()
	b := triangle()
	if !a.Equal(b) {
		t.Error("identical paths compare unequal")
	}
	c := new(Path).MoveTo(0, 40).LineTo(20, 0).LineTo(41, 40).Close()
	if a.Equal(c) {
		t.Error("different paths compare equal")
	}
	var nilPath *Path
	if !nilPath.Equal(new(Path)) {
		t.Error("nil path and empty path compare unequal")
	}
}

func TestShape_RendersOnceWhileUnchanged(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := Shape{Path: triangle(), Fill: RGB(200, 0, 0)}
	n := NewNode(view, b, env, nil)
	n.Update(view, IdealProposal(), env, false)
	n.Update(view, IdealProposal(), env, false)
	n.Update(view, IdealProposal(), env, false)

	w := n.Widget().(*MockWidget)
	if w.UpdateCount != 1 {
		t.Errorf("path rendered %d times, want 1 (unchanged geometry skips re-render)", w.UpdateCount)
	}
	if w.Fill != RGB(200, 0, 0) {
		t.Errorf("fill = %+v, want red", w.Fill)
	}
	if w.Size != (Size{W: 40, H: 40}) {
		t.Errorf("widget size = %+v, want the path bounds 40x40", w.Size)
	}
}

func TestShape_RerendersOnValueChange(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := Shape{Path: triangle(), Fill: RGB(200, 0, 0)}
	n := NewNode(view, b, env, nil)
	n.Update(view, IdealProposal(), env, false)

	w := n.Widget().(*MockWidget)

	// Same geometry under a fresh but equal Path value: still no re-render.
	n.Update(Shape{Path: triangle(), Fill: RGB(200, 0, 0)}, IdealProposal(), env, false)
	if w.UpdateCount != 1 {
		t.Errorf("equal path re-rendered (count %d, want 1)", w.UpdateCount)
	}

	// A fill change must re-render.
	n.Update(Shape{Path: triangle(), Fill: RGB(0, 0, 200)}, IdealProposal(), env, false)
	if w.UpdateCount != 2 {
		t.Errorf("fill change did not re-render (count %d, want 2)", w.UpdateCount)
	}

	// A size change must re-render too.
	n.Update(Shape{Path: triangle(), Fill: RGB(0, 0, 200)}, Concrete(80, 80), env, false)
	if w.UpdateCount != 3 {
		t.Errorf("size change did not re-render (count %d, want 3)", w.UpdateCount)
	}
}
