package trellis

import "testing"

func TestIf(t *testing.T) {
	then := Text{Content: "yes"}
	els := Text{Content: "no"}

	if got := If(true, then, els); got != View(then) {
		t.Errorf("If(true) = %+v, want the then branch", got)
	}
	if got := If(false, then, els); got != View(els) {
		t.Errorf("If(false) = %+v, want the else branch", got)
	}
	if got := If(false, then, nil); got != View(EmptyView{}) {
		t.Errorf("If(false, _, nil) = %+v, want EmptyView", got)
	}
}

func TestForEach(t *testing.T) {
	views := ForEach(3, func(i int) View {
		return Text{Content: string(rune('a' + i))}
	})
	if len(views) != 3 {
		t.Fatalf("len = %d, want 3", len(views))
	}
	for i, v := range views {
		want := string(rune('a' + i))
		if got := v.(Text).Content; got != want {
			t.Errorf("view %d content = %q, want %q", i, got, want)
		}
	}
	if got := ForEach(0, func(i int) View { return EmptyView{} }); len(got) != 0 {
		t.Errorf("ForEach(0) produced %d views, want 0", len(got))
	}
}

func TestEmptyView_TakesNoSpace(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	view := HStack{Children: []View{Text{Content: "ab"}, EmptyView{}, Text{Content: "cd"}}}
	n := NewNode(view, b, env, nil)
	vs := n.Update(view, IdealProposal(), env, false)

	if vs.Size.W != 32 {
		t.Errorf("stack width = %d, want 32 (empty view contributes nothing)", vs.Size.W)
	}
}

func TestIf_BranchSwitchReplacesNode(t *testing.T) {
	b := NewMockBackend(800, 600)
	env := testEnv(b)

	body := func(flag bool) VStack {
		return VStack{Children: []View{
			If(flag, Text{Content: "on"}, Button{Label: "off"}),
		}}
	}
	n := NewNode(body(true), b, env, nil)
	n.Update(body(true), Concrete(200, 200), env, false)
	textWidget := n.Children().Nodes()[0].Widget().(*MockWidget)

	n.Update(body(false), Concrete(200, 200), env, false)
	if !textWidget.Destroyed {
		t.Error("text widget survived the branch switch")
	}
	if got := n.Children().Nodes()[0].Widget().(*MockWidget).Kind; got != "button" {
		t.Errorf("child widget kind = %q, want %q", got, "button")
	}
}
