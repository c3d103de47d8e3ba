package layout

import "math"

// Unbounded is the sentinel for "no maximum" on an axis. Using a sentinel
// rather than a pointer keeps ViewSize comparable with ==, which the engine
// relies on for cache invalidation by value diff.
const Unbounded = math.MaxInt

// Point is an integer pixel position.
type Point struct {
	X int
	Y int
}

// Size is an integer pixel extent.
type Size struct {
	W int
	H int
}

// Along returns the extent on the given axis.
func (s Size) Along(a Axis) int {
	if a == Horizontal {
		return s.W
	}
	return s.H
}

// WithAlong returns a copy of s with the given axis replaced by n.
func (s Size) WithAlong(a Axis, n int) Size {
	if a == Horizontal {
		s.W = n
	} else {
		s.H = n
	}
	return s
}

// SizeAlong builds a Size with n on axis a and cross on the perpendicular
// axis.
func SizeAlong(a Axis, n, cross int) Size {
	if a == Horizontal {
		return Size{W: n, H: cross}
	}
	return Size{W: cross, H: n}
}

// PointAlong builds a Point with n on axis a and cross on the perpendicular
// axis.
func PointAlong(a Axis, n, cross int) Point {
	if a == Horizontal {
		return Point{X: n, Y: cross}
	}
	return Point{X: cross, Y: n}
}

// ViewSize is the response to a size proposal: the size the view will take,
// its proposal-independent ideal, per-axis minimum and maximum, and the
// ideal-for-opposite-axis hints used by wrapping content such as text.
type ViewSize struct {
	Size  Size
	Ideal Size

	// IdealWidthForHeight is the ideal width were the proposed height kept
	// fixed; IdealHeightForWidth is the mirror. Both default to the plain
	// ideal for non-wrapping content.
	IdealWidthForHeight int
	IdealHeightForWidth int

	MinWidth  int
	MinHeight int
	MaxWidth  int // Unbounded means no maximum
	MaxHeight int
}

// FixedSize returns a ViewSize that is rigid at s: ideal, minimum and
// maximum all equal s.
func FixedSize(s Size) ViewSize {
	return ViewSize{
		Size:                s,
		Ideal:               s,
		IdealWidthForHeight: s.W,
		IdealHeightForWidth: s.H,
		MinWidth:            s.W,
		MinHeight:           s.H,
		MaxWidth:            s.W,
		MaxHeight:           s.H,
	}
}

// Outset grows every component of v by the given edges, saturating
// Unbounded maxima.
func (v ViewSize) Outset(e Edges) ViewSize {
	h, vert := e.Horizontal(), e.Vertical()
	v.Size.W += h
	v.Size.H += vert
	v.Ideal.W += h
	v.Ideal.H += vert
	v.IdealWidthForHeight += h
	v.IdealHeightForWidth += vert
	v.MinWidth += h
	v.MinHeight += vert
	v.MaxWidth = AddBounded(v.MaxWidth, h)
	v.MaxHeight = AddBounded(v.MaxHeight, vert)
	return v
}

// AddBounded adds n to a possibly-Unbounded bound.
func AddBounded(bound, n int) int {
	if bound == Unbounded {
		return Unbounded
	}
	return bound + n
}

// Clamp limits n to [lo, hi], where hi may be Unbounded.
func Clamp(n, lo, hi int) int {
	if hi != Unbounded && n > hi {
		n = hi
	}
	if n < lo {
		n = lo
	}
	return n
}
