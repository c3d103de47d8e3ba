package trellis

import "testing"

func TestText_DryRunIdempotence(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := Text{Content: "hello world"}
	n := NewNode(view, b, env, nil)

	first := n.Update(view, Concrete(40, 100), env, true)
	second := n.Update(view, Concrete(40, 100), env, true)
	if first != second {
		t.Errorf("repeated dry runs differ: %+v vs %+v", first, second)
	}
	// A dry run must not touch native state.
	if got := n.Widget().(*MockWidget).UpdateCount; got != 0 {
		t.Errorf("dry runs performed %d native updates, want 0", got)
	}
}

func TestText_IdealSizeInvariantUnderProposals(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := Text{Content: "hello world"} // 11 runes: ideal 88x16
	n := NewNode(view, b, env, nil)

	want := Size{W: 88, H: 16}
	proposals := []Proposal{
		IdealProposal(),
		Concrete(40, 100),
		Concrete(500, 10),
		{Width: Exactly(24), Height: Ideal()},
	}
	for _, p := range proposals {
		vs := n.Update(view, p, env, true)
		if vs.Ideal != want {
			t.Errorf("proposal %+v: ideal = %+v, want %+v", p, vs.Ideal, want)
		}
	}
}

func TestText_WrapsUnderNarrowProposal(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := Text{Content: "abcdef"} // 48px unwrapped
	n := NewNode(view, b, env, nil)

	vs := n.Update(view, Concrete(24, 100), env, true)
	if vs.Size.W != 24 || vs.Size.H != 32 {
		t.Errorf("wrapped size = %+v, want 24x32 (3 runes per line, 2 lines)", vs.Size)
	}
	if vs.IdealHeightForWidth != 32 {
		t.Errorf("IdealHeightForWidth = %d, want 32", vs.IdealHeightForWidth)
	}
	if vs.MinWidth != 8 {
		t.Errorf("MinWidth = %d, want 8 (narrowest wrap)", vs.MinWidth)
	}
}

func TestText_CommitPushesContentAndSize(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := Text{Content: "hi"}
	n := NewNode(view, b, env, nil)
	n.Update(view, IdealProposal(), env, false)

	w := n.Widget().(*MockWidget)
	if w.Text != "hi" {
		t.Errorf("widget text = %q, want %q", w.Text, "hi")
	}
	if w.Size != (Size{W: 16, H: 16}) {
		t.Errorf("widget size = %+v, want 16x16", w.Size)
	}
}
