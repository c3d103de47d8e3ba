package layout

import "testing"

func TestProposed_Resolve(t *testing.T) {
	if got := Exactly(40).Resolve(7); got != 40 {
		t.Errorf("Exactly(40).Resolve(7) = %d, want 40", got)
	}
	if got := Ideal().Resolve(7); got != 7 {
		t.Errorf("Ideal().Resolve(7) = %d, want 7", got)
	}
}

func TestProposed_Shrink(t *testing.T) {
	if got := Exactly(40).Shrink(15); got != Exactly(25) {
		t.Errorf("Exactly(40).Shrink(15) = %+v, want %+v", got, Exactly(25))
	}
	if got := Exactly(10).Shrink(15); got != Exactly(0) {
		t.Errorf("Exactly(10).Shrink(15) = %+v, want clamp to zero", got)
	}
	if got := Ideal().Shrink(15); !got.Ideal {
		t.Errorf("Ideal().Shrink(15) = %+v, want ideal unchanged", got)
	}
}

func TestProposal_AxisAccessors(t *testing.T) {
	p := Proposal{Width: Exactly(30), Height: Exactly(60)}

	if got := p.Along(Horizontal); got != Exactly(30) {
		t.Errorf("Along(Horizontal) = %+v, want Exactly(30)", got)
	}
	if got := p.Along(Vertical); got != Exactly(60) {
		t.Errorf("Along(Vertical) = %+v, want Exactly(60)", got)
	}
	if got := p.Across(Horizontal); got != Exactly(60) {
		t.Errorf("Across(Horizontal) = %+v, want Exactly(60)", got)
	}

	q := p.WithAlong(Vertical, Ideal())
	if !q.Height.Ideal || q.Width != Exactly(30) {
		t.Errorf("WithAlong(Vertical, Ideal()) = %+v, want height ideal, width kept", q)
	}
}

func TestProposal_Inset(t *testing.T) {
	p := Concrete(100, 50).Inset(Edges{Top: 5, Bottom: 5, Leading: 10, Trailing: 10})
	if p.Width != Exactly(80) || p.Height != Exactly(40) {
		t.Errorf("Inset = %+v, want 80x40", p)
	}
}

func TestViewSize_Outset(t *testing.T) {
	v := FixedSize(Size{W: 20, H: 10})
	v.MaxWidth = Unbounded
	got := v.Outset(UniformEdges(3))

	if got.Size != (Size{W: 26, H: 16}) {
		t.Errorf("Outset Size = %+v, want 26x16", got.Size)
	}
	if got.MinWidth != 26 || got.MinHeight != 16 {
		t.Errorf("Outset minima = %d,%d, want 26,16", got.MinWidth, got.MinHeight)
	}
	if got.MaxWidth != Unbounded {
		t.Errorf("Outset MaxWidth = %d, want Unbounded preserved", got.MaxWidth)
	}
	if got.MaxHeight != 16 {
		t.Errorf("Outset MaxHeight = %d, want 16", got.MaxHeight)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(50, 0, 40); got != 40 {
		t.Errorf("Clamp(50, 0, 40) = %d, want 40", got)
	}
	if got := Clamp(-5, 0, 40); got != 0 {
		t.Errorf("Clamp(-5, 0, 40) = %d, want 0", got)
	}
	if got := Clamp(1 << 40, 0, Unbounded); got != 1<<40 {
		t.Errorf("Clamp with Unbounded max = %d, want passthrough", got)
	}
}
