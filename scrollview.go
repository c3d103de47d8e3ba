package trellis

// ScrollView scrolls its content on the enabled axes, showing a scroll bar
// on an axis only when the content overflows the viewport there.
type ScrollView struct {
	Content    View
	Horizontal bool
	Vertical   bool
}

// Scrolling wraps content in a vertically scrolling view.
func Scrolling(content View) ScrollView {
	return ScrollView{Content: content, Vertical: true}
}

var _ View = ScrollView{}

// scrollChildren caches the overflow decision and final content size
// between the layout and commit phases.
type scrollChildren struct {
	StaticChildren
	overflowX   bool
	overflowY   bool
	contentSize Size
}

func (v ScrollView) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	c := &scrollChildren{}
	c.b = b
	c.nodes = []*Node{NewNode(v.Content, b, env, snap.Child(0))}
	return c
}

func (v ScrollView) BuildWidget(children Children, b Backend) Widget {
	c := children.(*scrollChildren)
	w := b.CreateScrollContainer(c.Node(0).Widget())
	// CreateScrollContainer attaches the child itself; only record the
	// container for later node replacement.
	c.container = w
	return w
}

func (v ScrollView) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	c := children.(*scrollChildren)
	c.Sync([]View{v.Content}, env)

	// First pass: the content's own ideal, to detect per-axis overflow.
	ideal := c.Node(0).Update(v.Content, IdealProposal(), env, true)

	viewport := Size{
		W: proposal.Width.Resolve(ideal.Size.W),
		H: proposal.Height.Resolve(ideal.Size.H),
	}
	c.overflowX = v.Horizontal && ideal.Size.W > viewport.W
	c.overflowY = v.Vertical && ideal.Size.H > viewport.H

	// Shrink the viewport by scroll bar thickness on axes that need one.
	thickness := env.Calibration.ScrollBarThickness
	inner := viewport
	if c.overflowX {
		inner.H -= thickness
	}
	if c.overflowY {
		inner.W -= thickness
	}
	if inner.W < 0 {
		inner.W = 0
	}
	if inner.H < 0 {
		inner.H = 0
	}

	// Second pass: final viewport, content free along scrollable axes.
	content := Concrete(inner.W, inner.H)
	if v.Horizontal {
		content.Width = Ideal()
	}
	if v.Vertical {
		content.Height = Ideal()
	}
	final := c.Node(0).Update(v.Content, content, env, dry)
	c.contentSize = final.Size
	c.Frames[0] = ChildFrame{Size: final.Size}
	c.Bounds = viewport

	vs := ViewSize{
		Size:                viewport,
		Ideal:               ideal.Size,
		IdealWidthForHeight: ideal.Size.W,
		IdealHeightForWidth: ideal.Size.H,
		MinWidth:            thickness,
		MinHeight:           thickness,
		MaxWidth:            Unbounded,
		MaxHeight:           Unbounded,
	}
	if !v.Horizontal {
		vs.MinWidth = final.MinWidth
	}
	if !v.Vertical {
		vs.MinHeight = final.MinHeight
	}
	return vs
}

func (v ScrollView) Commit(w Widget, children Children, env Environment, b Backend) {
	c := children.(*scrollChildren)
	b.SetScrollBarPresence(w, c.overflowX, c.overflowY)
	b.SetSize(w, c.Bounds)
	b.SetPosition(w, 0, Point{})
}
