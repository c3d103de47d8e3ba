package trellis

import "github.com/trellisui/trellis/internal/layout"

// Padding insets its content by per-side pixel amounts.
type Padding struct {
	Content View
	Insets  Edges
}

// Pad wraps content with a uniform inset of n pixels.
func Pad(content View, n int) Padding {
	return Padding{Content: content, Insets: UniformEdges(n)}
}

var _ View = Padding{}

func (v Padding) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return NewStaticChildren(b, env, snap, v.Content)
}

func (v Padding) BuildWidget(children Children, b Backend) Widget {
	return buildContainer(children, b)
}

func (v Padding) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	c := children.(*StaticChildren)
	c.Sync([]View{v.Content}, env)
	vs := c.Node(0).Update(v.Content, proposal.Inset(v.Insets), env, dry)
	c.Frames[0] = ChildFrame{Offset: v.Insets.Origin(), Size: vs.Size}
	out := vs.Outset(v.Insets)
	c.Bounds = out.Size
	return out
}

func (v Padding) Commit(w Widget, children Children, env Environment, b Backend) {
	commitFrames(w, children.(*StaticChildren), b)
}

// Frame overrides its content's sizing: a set Width or Height fixes that
// axis; set minima/maxima clamp it. Zero-valued fields leave the axis to
// the content.
type Frame struct {
	Content   View
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	MaxWidth  int // Unbounded for no limit; 0 leaves the axis unclamped
	MaxHeight int
	// Alignment positions the content within the frame on both axes.
	Alignment Alignment
}

var _ View = Frame{}

func (v Frame) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return NewStaticChildren(b, env, snap, v.Content)
}

func (v Frame) BuildWidget(children Children, b Backend) Widget {
	return buildContainer(children, b)
}

func (v Frame) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	c := children.(*StaticChildren)
	c.Sync([]View{v.Content}, env)

	child := Proposal{
		Width:  frameAxisProposal(proposal.Width, v.Width, v.MinWidth, v.MaxWidth),
		Height: frameAxisProposal(proposal.Height, v.Height, v.MinHeight, v.MaxHeight),
	}
	vs := c.Node(0).Update(v.Content, child, env, dry)

	out := vs
	applyFrameAxis(&out.Size.W, &out.Ideal.W, &out.MinWidth, &out.MaxWidth, vs.Size.W, v.Width, v.MinWidth, v.MaxWidth)
	applyFrameAxis(&out.Size.H, &out.Ideal.H, &out.MinHeight, &out.MaxHeight, vs.Size.H, v.Height, v.MinHeight, v.MaxHeight)
	out.IdealWidthForHeight = out.Ideal.W
	out.IdealHeightForWidth = out.Ideal.H

	c.Frames[0] = ChildFrame{
		Offset: Point{
			X: v.Alignment.Offset(out.Size.W, vs.Size.W),
			Y: v.Alignment.Offset(out.Size.H, vs.Size.H),
		},
		Size: vs.Size,
	}
	c.Bounds = out.Size
	return out
}

func (v Frame) Commit(w Widget, children Children, env Environment, b Backend) {
	commitFrames(w, children.(*StaticChildren), b)
}

// frameAxisProposal derives the content's proposal on one axis from the
// frame's settings.
func frameAxisProposal(p Proposed, fixed, lo, hi int) Proposed {
	if fixed > 0 {
		return Exactly(fixed)
	}
	if p.Ideal {
		return p
	}
	n := p.Amount
	if hi > 0 {
		n = layout.Clamp(n, lo, hi)
	} else if lo > 0 && n < lo {
		n = lo
	}
	return Exactly(n)
}

// applyFrameAxis rewrites one axis of the reported size per the frame's
// settings.
func applyFrameAxis(size, ideal, min, max *int, child, fixed, lo, hi int) {
	if fixed > 0 {
		*size, *ideal, *min, *max = fixed, fixed, fixed, fixed
		return
	}
	n := child
	if hi > 0 {
		n = layout.Clamp(n, lo, hi)
	} else if lo > 0 && n < lo {
		n = lo
	}
	*size = n
	if lo > 0 && *min < lo {
		*min = lo
	}
	if hi > 0 {
		// The frame's own ceiling, not the content's: alignment absorbs
		// any slack past what the content can use.
		*max = hi
		if *min > hi {
			*min = hi
		}
	} else if *max != Unbounded && *max < *size {
		// A minimum lifted the size past the content's maximum; the
		// reported maximum must cover the reported size.
		*max = *size
	}
}

// FixedSize freezes its content at the content's ideal length on the chosen
// axes, regardless of the parent's proposal.
type FixedSize struct {
	Content    View
	Horizontal bool
	Vertical   bool
}

var _ View = FixedSize{}

func (v FixedSize) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return NewStaticChildren(b, env, snap, v.Content)
}

func (v FixedSize) BuildWidget(children Children, b Backend) Widget {
	return buildContainer(children, b)
}

func (v FixedSize) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	c := children.(*StaticChildren)
	c.Sync([]View{v.Content}, env)

	if v.Horizontal {
		proposal.Width = Ideal()
	}
	if v.Vertical {
		proposal.Height = Ideal()
	}
	vs := c.Node(0).Update(v.Content, proposal, env, dry)

	// A frozen axis reports its ideal length as size, minimum and maximum.
	if v.Horizontal {
		vs.MinWidth, vs.MaxWidth = vs.Size.W, vs.Size.W
	}
	if v.Vertical {
		vs.MinHeight, vs.MaxHeight = vs.Size.H, vs.Size.H
	}
	c.Frames[0] = ChildFrame{Size: vs.Size}
	c.Bounds = vs.Size
	return vs
}

func (v FixedSize) Commit(w Widget, children Children, env Environment, b Backend) {
	commitFrames(w, children.(*StaticChildren), b)
}

// OnDisappear runs Perform when its subtree is torn down. The hook is
// registered on this wrapper's own storage, so an outer OnDisappear fires
// before any cleanup inside its content.
type OnDisappear struct {
	Content View
	Perform func()
}

var _ View = OnDisappear{}

// disappearChildren fires the hook ahead of the content's own teardown.
type disappearChildren struct {
	StaticChildren
	perform func()
}

func (c *disappearChildren) Teardown() {
	if c.perform != nil {
		c.perform()
	}
	c.StaticChildren.Teardown()
}

func (v OnDisappear) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	c := &disappearChildren{perform: v.Perform}
	c.b = b
	c.nodes = []*Node{NewNode(v.Content, b, env, snap.Child(0))}
	return c
}

func (v OnDisappear) BuildWidget(children Children, b Backend) Widget {
	w := b.CreateContainer()
	children.(*disappearChildren).Attach(w)
	return w
}

func (v OnDisappear) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	c := children.(*disappearChildren)
	c.perform = v.Perform
	c.Sync([]View{v.Content}, env)
	vs := c.Node(0).Update(v.Content, proposal, env, dry)
	c.Frames[0] = ChildFrame{Size: vs.Size}
	c.Bounds = vs.Size
	return vs
}

func (v OnDisappear) Commit(w Widget, children Children, env Environment, b Backend) {
	commitFrames(w, &children.(*disappearChildren).StaticChildren, b)
}

// EnvironmentModifier derives a new environment for its content. The
// modification applies to the whole subtree and never leaks back up.
type EnvironmentModifier struct {
	Content View
	Modify  func(Environment) Environment
}

var _ View = EnvironmentModifier{}

// WithFont renders content with the given font.
func WithFont(content View, f Font) EnvironmentModifier {
	return EnvironmentModifier{Content: content, Modify: func(e Environment) Environment {
		return e.WithFont(f)
	}}
}

// WithForeground renders content with the given foreground color.
func WithForeground(content View, c Color) EnvironmentModifier {
	return EnvironmentModifier{Content: content, Modify: func(e Environment) Environment {
		return e.WithForegroundColor(c)
	}}
}

// WithTint renders content's interactive controls with the given tint.
func WithTint(content View, c Color) EnvironmentModifier {
	return EnvironmentModifier{Content: content, Modify: func(e Environment) Environment {
		return e.WithTint(c)
	}}
}

func (v EnvironmentModifier) modified(env Environment) Environment {
	if v.Modify == nil {
		return env
	}
	return v.Modify(env)
}

func (v EnvironmentModifier) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return NewStaticChildren(b, v.modified(env), snap, v.Content)
}

func (v EnvironmentModifier) BuildWidget(children Children, b Backend) Widget {
	return buildContainer(children, b)
}

func (v EnvironmentModifier) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	c := children.(*StaticChildren)
	env = v.modified(env)
	c.Sync([]View{v.Content}, env)
	vs := c.Node(0).Update(v.Content, proposal, env, dry)
	c.Frames[0] = ChildFrame{Size: vs.Size}
	c.Bounds = vs.Size
	return vs
}

func (v EnvironmentModifier) Commit(w Widget, children Children, env Environment, b Backend) {
	commitFrames(w, children.(*StaticChildren), b)
}
