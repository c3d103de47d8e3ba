package trellis

// PathOpKind identifies one path-building operation.
type PathOpKind uint8

const (
	PathMoveTo PathOpKind = iota
	PathLineTo
	PathQuadTo
	PathClose
)

// PathOp is one operation of a Path. Coordinates are relative to the
// shape's top-leading corner in the unit of the shape's laid-out size.
type PathOp struct {
	Kind    PathOpKind
	To      Point
	Control Point // quadratic control point, PathQuadTo only
}

// Path is an immutable-once-built point list describing a vector outline.
// Paths compare by value so shape views can skip re-rendering unchanged
// geometry.
type Path struct {
	ops []PathOp
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(x, y int) *Path {
	p.ops = append(p.ops, PathOp{Kind: PathMoveTo, To: Point{X: x, Y: y}})
	return p
}

// LineTo draws a straight segment to p.
func (p *Path) LineTo(x, y int) *Path {
	p.ops = append(p.ops, PathOp{Kind: PathLineTo, To: Point{X: x, Y: y}})
	return p
}

// QuadTo draws a quadratic segment to (x, y) with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y int) *Path {
	p.ops = append(p.ops, PathOp{Kind: PathQuadTo, To: Point{X: x, Y: y}, Control: Point{X: cx, Y: cy}})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.ops = append(p.ops, PathOp{Kind: PathClose})
	return p
}

// Ops returns the path's operations in order.
func (p *Path) Ops() []PathOp {
	if p == nil {
		return nil
	}
	return p.ops
}

// Equal reports whether both paths describe the same point list.
func (p *Path) Equal(q *Path) bool {
	po, qo := p.Ops(), q.Ops()
	if len(po) != len(qo) {
		return false
	}
	for i := range po {
		if po[i] != qo[i] {
			return false
		}
	}
	return true
}

// Bounds returns the smallest size containing every path point.
func (p *Path) Bounds() Size {
	var s Size
	for _, op := range p.Ops() {
		if op.To.X > s.W {
			s.W = op.To.X
		}
		if op.To.Y > s.H {
			s.H = op.To.Y
		}
		if op.Kind == PathQuadTo {
			if op.Control.X > s.W {
				s.W = op.Control.X
			}
			if op.Control.Y > s.H {
				s.H = op.Control.Y
			}
		}
	}
	return s
}

// Shape renders a filled and/or stroked vector path.
type Shape struct {
	Path        *Path
	Fill        Color
	Stroke      Color
	StrokeWidth int
}

var _ View = Shape{}

// shapeChildren caches the last rendered geometry so commits skip the
// backend path rasterizer when nothing changed.
type shapeChildren struct {
	NoChildren
	path        *Path
	size        Size // from the last Layout
	committed   Size // from the last rendered Commit
	fill        Color
	stroke      Color
	strokeWidth int
	rendered    bool
}

func (v Shape) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return &shapeChildren{}
}

func (v Shape) BuildWidget(children Children, b Backend) Widget {
	return b.CreatePathWidget()
}

func (v Shape) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	c := children.(*shapeChildren)
	natural := v.Path.Bounds()
	size := Size{
		W: proposal.Width.Resolve(natural.W),
		H: proposal.Height.Resolve(natural.H),
	}
	c.size = size
	return ViewSize{
		Size:                size,
		Ideal:               natural,
		IdealWidthForHeight: natural.W,
		IdealHeightForWidth: natural.H,
		MaxWidth:            Unbounded,
		MaxHeight:           Unbounded,
	}
}

func (v Shape) Commit(w Widget, children Children, env Environment, b Backend) {
	c := children.(*shapeChildren)
	changed := !c.rendered ||
		!v.Path.Equal(c.path) ||
		c.size != c.committed ||
		c.fill != v.Fill || c.stroke != v.Stroke || c.strokeWidth != v.StrokeWidth
	if changed {
		b.RenderPath(w, v.Path, c.size, v.Fill, v.Stroke, v.StrokeWidth)
		c.path = v.Path
		c.fill = v.Fill
		c.stroke = v.Stroke
		c.strokeWidth = v.StrokeWidth
		c.committed = c.size
		c.rendered = true
	}
	b.SetSize(w, c.size)
}
