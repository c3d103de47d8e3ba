package layout

// Edges holds per-side pixel insets.
type Edges struct {
	Top      int
	Bottom   int
	Leading  int
	Trailing int
}

// UniformEdges returns insets of n on all four sides.
func UniformEdges(n int) Edges {
	return Edges{Top: n, Bottom: n, Leading: n, Trailing: n}
}

// Horizontal returns the total horizontal inset.
func (e Edges) Horizontal() int {
	return e.Leading + e.Trailing
}

// Vertical returns the total vertical inset.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Origin returns the top-leading content offset implied by the insets.
func (e Edges) Origin() Point {
	return Point{X: e.Leading, Y: e.Top}
}
