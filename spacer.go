package trellis

import "github.com/trellisui/trellis/internal/layout"

// Spacer expands along the enclosing stack's major axis, pushing its
// siblings apart. It reads the axis from the environment, so it only makes
// sense inside a stack.
type Spacer struct {
	MinLength int
}

var _ View = Spacer{}

func (v Spacer) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return &leafStorage{}
}

func (v Spacer) BuildWidget(children Children, b Backend) Widget {
	return b.CreateContainer()
}

func (v Spacer) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	st := children.(*leafStorage)
	axis := env.LayoutAxis

	length := proposal.Along(axis).Resolve(v.MinLength)
	if length < v.MinLength {
		length = v.MinLength
	}
	size := layout.SizeAlong(axis, length, 0)
	st.size = size

	vs := ViewSize{
		Size:  size,
		Ideal: layout.SizeAlong(axis, v.MinLength, 0),
	}
	vs.IdealWidthForHeight = vs.Ideal.W
	vs.IdealHeightForWidth = vs.Ideal.H
	if axis == Horizontal {
		vs.MinWidth, vs.MaxWidth = v.MinLength, Unbounded
		vs.MinHeight, vs.MaxHeight = 0, 0
	} else {
		vs.MinHeight, vs.MaxHeight = v.MinLength, Unbounded
		vs.MinWidth, vs.MaxWidth = 0, 0
	}
	return vs
}

func (v Spacer) Commit(w Widget, children Children, env Environment, b Backend) {
	b.SetSize(w, children.(*leafStorage).size)
}
