package trellis

import "github.com/trellisui/trellis/internal/layout"

// VStack lays children out top to bottom.
type VStack struct {
	// Alignment positions children within the stack's width.
	Alignment Alignment
	// Spacing is the gap between children; 0 uses the environment default.
	Spacing int
	Children []View
}

// HStack lays children out left to right.
type HStack struct {
	// Alignment positions children within the stack's height.
	Alignment Alignment
	// Spacing is the gap between children; 0 uses the environment default.
	Spacing int
	Children []View
}

var (
	_ View                   = VStack{}
	_ View                   = HStack{}
	_ LayoutChildrenProvider = VStack{}
	_ LayoutChildrenProvider = HStack{}
)

func (v VStack) LayoutChildren() []View { return v.Children }
func (v HStack) LayoutChildren() []View { return v.Children }

func (v VStack) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return NewStaticChildren(b, env.WithLayoutAxis(Vertical), snap, v.Children...)
}

func (v HStack) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return NewStaticChildren(b, env.WithLayoutAxis(Horizontal), snap, v.Children...)
}

func (v VStack) BuildWidget(children Children, b Backend) Widget {
	return buildContainer(children, b)
}

func (v HStack) BuildWidget(children Children, b Backend) Widget {
	return buildContainer(children, b)
}

func (v VStack) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	return stackLayout(Vertical, v.Alignment, v.Spacing, v.Children, children.(*StaticChildren), proposal, env, dry)
}

func (v HStack) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	return stackLayout(Horizontal, v.Alignment, v.Spacing, v.Children, children.(*StaticChildren), proposal, env, dry)
}

func (v VStack) Commit(w Widget, children Children, env Environment, b Backend) {
	commitFrames(w, children.(*StaticChildren), b)
}

func (v HStack) Commit(w Widget, children Children, env Environment, b Backend) {
	commitFrames(w, children.(*StaticChildren), b)
}

// buildContainer creates the container widget and attaches the storage's
// child widgets to it.
func buildContainer(children Children, b Backend) Widget {
	w := b.CreateContainer()
	children.(*StaticChildren).Attach(w)
	return w
}

// commitFrames applies the geometry stashed by the last stackLayout call.
func commitFrames(w Widget, c *StaticChildren, b Backend) {
	b.SetSize(w, c.Bounds)
	for i, f := range c.Frames {
		b.SetPosition(w, i, f.Offset)
	}
}

// stackLayout distributes the proposed size among children along the major
// axis.
//
// Every child is first probed with an ideal major-axis proposal and the full
// cross-axis length to learn its ideal length and flexibility; a flex
// distribution pass then grants surplus to the least flexible children
// first, splitting the remainder evenly among unbounded ones. The cross
// size is the maximum child cross size unless the proposal constrains it,
// in which case children are re-proposed at that fixed cross length.
func stackLayout(axis Axis, alignment Alignment, spacing int, views []View, c *StaticChildren, proposal Proposal, env Environment, dry bool) ViewSize {
	env = env.WithLayoutAxis(axis)
	if spacing == 0 {
		spacing = env.Spacing
	}
	c.Sync(views, env)

	n := c.Len()
	if n == 0 {
		c.Bounds = Size{}
		return ViewSize{MaxWidth: 0, MaxHeight: 0}
	}
	gaps := spacing * (n - 1)

	// Probe pass: ideal along the axis, proposal's cross length across.
	probe := proposal.WithAlong(axis, Ideal())
	flex := make([]layout.StackChild, n)
	var (
		idealSum, minSum         int
		maxSum                   = 0
		crossIdeal, crossMinMax  int
		minCross                 int
	)
	for i := 0; i < n; i++ {
		vs := c.Node(i).Update(views[i], probe, env, true)
		flex[i] = layout.StackChild{
			Ideal: vs.Size.Along(axis),
			Min:   minAlong(vs, axis),
			Max:   maxAlong(vs, axis),
		}
		idealSum += vs.Ideal.Along(axis)
		minSum += flex[i].Min
		maxSum = addBoundedSum(maxSum, flex[i].Max)
		if ci := vs.Ideal.Along(axis.Perpendicular()); ci > crossIdeal {
			crossIdeal = ci
		}
		if cs := vs.Size.Along(axis.Perpendicular()); cs > crossMinMax {
			crossMinMax = cs
		}
		if cm := minAlong(vs, axis.Perpendicular()); cm > minCross {
			minCross = cm
		}
	}

	// Distribute the major axis.
	probedSum := 0
	for _, f := range flex {
		probedSum += f.Ideal
	}
	available := proposal.Along(axis).Resolve(probedSum+gaps) - gaps
	lengths := layout.Distribute(flex, available)

	// Final pass: concrete lengths, fixed cross when the proposal has one.
	cross := proposal.Along(axis.Perpendicular()).Resolve(crossMinMax)
	var (
		cursor    int
		crossUsed int
	)
	for i := 0; i < n; i++ {
		childProposal := Proposal{}.
			WithAlong(axis, Exactly(lengths[i])).
			WithAlong(axis.Perpendicular(), Exactly(cross))
		vs := c.Node(i).Update(views[i], childProposal, env, dry)
		size := vs.Size
		offset := layout.PointAlong(axis, cursor, alignment.Offset(cross, size.Along(axis.Perpendicular())))
		c.Frames[i] = ChildFrame{Offset: offset, Size: size}
		cursor += size.Along(axis) + spacing
		if cu := size.Along(axis.Perpendicular()); cu > crossUsed {
			crossUsed = cu
		}
	}
	length := cursor - spacing

	own := layout.SizeAlong(axis, length, max(cross, crossUsed))
	c.Bounds = own
	return withAxes(axis, axisMetrics{
		size:  length,
		ideal: idealSum + gaps,
		min:   minSum + gaps,
		max:   addBoundedSum(maxSum, gaps),
	}, axisMetrics{
		size:  own.Along(axis.Perpendicular()),
		ideal: crossIdeal,
		min:   minCross,
		max:   Unbounded,
	})
}

// axisMetrics is one axis of a ViewSize under construction.
type axisMetrics struct {
	size  int
	ideal int
	min   int
	max   int
}

// withAxes assembles a ViewSize from major- and cross-axis metrics.
func withAxes(axis Axis, along, across axisMetrics) ViewSize {
	vs := ViewSize{
		Size:  layout.SizeAlong(axis, along.size, across.size),
		Ideal: layout.SizeAlong(axis, along.ideal, across.ideal),
	}
	vs.IdealWidthForHeight = vs.Ideal.W
	vs.IdealHeightForWidth = vs.Ideal.H
	if axis == Horizontal {
		vs.MinWidth, vs.MaxWidth = along.min, along.max
		vs.MinHeight, vs.MaxHeight = across.min, across.max
	} else {
		vs.MinHeight, vs.MaxHeight = along.min, along.max
		vs.MinWidth, vs.MaxWidth = across.min, across.max
	}
	return vs
}

func minAlong(vs ViewSize, a Axis) int {
	if a == Horizontal {
		return vs.MinWidth
	}
	return vs.MinHeight
}

func maxAlong(vs ViewSize, a Axis) int {
	if a == Horizontal {
		return vs.MaxWidth
	}
	return vs.MaxHeight
}

// addBoundedSum adds two possibly-Unbounded lengths, saturating.
func addBoundedSum(a, b int) int {
	if a == Unbounded || b == Unbounded {
		return Unbounded
	}
	return a + b
}
