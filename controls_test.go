package trellis

import "testing"

func TestButton_CalibrationFallbackSize(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := Button{Label: "OK"} // label measures 16x16
	n := NewNode(view, b, env, nil)
	vs := n.Update(view, Concrete(300, 300), env, true)

	// Padded by the button calibration: 16+2*14 x 16+2*6.
	if vs.Size != (Size{W: 44, H: 28}) {
		t.Errorf("button size = %+v, want 44x28 from calibration", vs.Size)
	}
	if vs.MinWidth != 44 || vs.MaxWidth != 44 {
		t.Errorf("button width bounds = [%d,%d], want rigid", vs.MinWidth, vs.MaxWidth)
	}
}

func TestButton_NaturalSizePreferred(t *testing.T) {
	b := NewMockBackend(800, 600)
	b.SetNaturalSize("button", Size{W: 90, H: 30})
	env := testEnv(b)

	view := Button{Label: "OK"}
	n := NewNode(view, b, env, nil)
	vs := n.Update(view, Concrete(300, 300), env, true)

	if vs.Size != (Size{W: 90, H: 30}) {
		t.Errorf("button size = %+v, want the backend's natural 90x30", vs.Size)
	}
}

func TestButton_CommitBindsAction(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	fired := false
	view := Button{Label: "Go", Action: func() { fired = true }}
	n := NewNode(view, b, env, nil)
	n.Update(view, Concrete(300, 300), env, false)

	w := n.Widget().(*MockWidget)
	if w.Label != "Go" {
		t.Errorf("button label = %q, want %q", w.Label, "Go")
	}
	w.Action()
	if !fired {
		t.Error("committed action did not fire")
	}
}

func TestPicker_SizesToWidestOption(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := Picker{Options: []string{"a", "bbb"}} // widest 24x16
	n := NewNode(view, b, env, nil)
	vs := n.Update(view, Concrete(300, 300), env, true)

	// Padded by the picker calibration: 24+2*24 x 16+2*6.
	if vs.Size != (Size{W: 72, H: 28}) {
		t.Errorf("picker size = %+v, want 72x28", vs.Size)
	}
}

func TestPicker_SelectionRoundTrip(t *testing.T) {
	b := NewMockBackend(800, 600)
	scene, err := NewScene(b, func() View { return EmptyView{} })
	if err != nil {
		t.Fatal(err)
	}
	env := testEnv(b)

	sel := NewStateFor(scene, 1)
	view := Picker{Options: []string{"red", "green", "blue"}, Selection: sel}
	n := NewNode(view, b, env, nil)
	n.Update(view, Concrete(300, 300), env, false)

	w := n.Widget().(*MockWidget)
	if w.SelectedOption != 1 {
		t.Errorf("committed selection = %d, want 1", w.SelectedOption)
	}

	// A native change flows back into the state.
	w.OnChangeOption(2)
	if got := sel.Get(); got != 2 {
		t.Errorf("selection state = %d, want 2 after native change", got)
	}
}

func TestPicker_OutOfRangeSelectionCommitsNone(t *testing.T) {
	b := NewMockBackend(800, 600)
	scene, err := NewScene(b, func() View { return EmptyView{} })
	if err != nil {
		t.Fatal(err)
	}
	env := testEnv(b)

	sel := NewStateFor(scene, 7)
	view := Picker{Options: []string{"a", "b"}, Selection: sel}
	n := NewNode(view, b, env, nil)
	n.Update(view, Concrete(300, 300), env, false)

	if got := n.Widget().(*MockWidget).SelectedOption; got != -1 {
		t.Errorf("committed selection = %d, want -1 for out-of-range state", got)
	}
}

func TestTextField_StretchesToProposalAboveMinimum(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := TextField{Placeholder: "name"}
	n := NewNode(view, b, env, nil)

	vs := n.Update(view, Concrete(300, 100), env, true)
	if vs.Size != (Size{W: 300, H: 28}) {
		t.Errorf("field size = %+v, want 300x28", vs.Size)
	}
	if vs.MaxWidth != Unbounded {
		t.Errorf("field MaxWidth = %d, want unbounded horizontal stretch", vs.MaxWidth)
	}
	if vs.MaxHeight != 28 {
		t.Errorf("field MaxHeight = %d, want rigid 28", vs.MaxHeight)
	}

	// Below the calibrated minimum the field holds its floor.
	vs = n.Update(view, Concrete(50, 100), env, true)
	if vs.Size.W != 100 {
		t.Errorf("field width under narrow proposal = %d, want the 100px minimum", vs.Size.W)
	}
}

func TestTextField_EditFlowsIntoState(t *testing.T) {
	b := NewMockBackend(800, 600)
	scene, err := NewScene(b, func() View { return EmptyView{} })
	if err != nil {
		t.Fatal(err)
	}
	env := testEnv(b)

	text := NewStateFor(scene, "")
	var changed string
	view := TextField{Text: text, OnChange: func(s string) { changed = s }}
	n := NewNode(view, b, env, nil)
	n.Update(view, Concrete(300, 100), env, false)

	n.Widget().(*MockWidget).OnChangeText("hello")
	if got := text.Get(); got != "hello" {
		t.Errorf("text state = %q, want %q", got, "hello")
	}
	if changed != "hello" {
		t.Errorf("OnChange saw %q, want %q", changed, "hello")
	}
}
