// geometry.go re-exports sizing types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package trellis

import "github.com/trellisui/trellis/internal/layout"

// Axis identifies a layout direction.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Proposed is a single-axis size proposal: a concrete pixel length or
// "ideal" (content chooses).
type Proposed = layout.Proposed

// Proposal is a two-axis size request passed down the view tree.
type Proposal = layout.Proposal

// Point represents an x/y pixel coordinate.
type Point = layout.Point

// Size represents a width/height pixel pair.
type Size = layout.Size

// ViewSize is a view's response to a size proposal.
type ViewSize = layout.ViewSize

// Edges represents pixel insets on four sides.
type Edges = layout.Edges

// Alignment positions a child within its allotted cross-axis span.
type Alignment = layout.Alignment

const (
	AlignLeading  = layout.AlignLeading
	AlignCenter   = layout.AlignCenter
	AlignTrailing = layout.AlignTrailing
)

// Unbounded is the sentinel for "no maximum" on an axis.
const Unbounded = layout.Unbounded

// Exactly returns a concrete single-axis proposal of n pixels.
func Exactly(n int) Proposed {
	return layout.Exactly(n)
}

// Ideal returns the "content chooses" single-axis proposal.
func Ideal() Proposed {
	return layout.Ideal()
}

// Concrete returns a proposal with both axes bounded.
func Concrete(width, height int) Proposal {
	return layout.Concrete(width, height)
}

// IdealProposal returns a proposal asking content for its ideal size on
// both axes.
func IdealProposal() Proposal {
	return layout.IdealProposal()
}

// FixedViewSize returns a ViewSize rigid at s.
func FixedViewSize(s Size) ViewSize {
	return layout.FixedSize(s)
}

// UniformEdges returns insets of n on all four sides.
func UniformEdges(n int) Edges {
	return layout.UniformEdges(n)
}
