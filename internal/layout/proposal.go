package layout

// Proposed is a single-axis size proposal: either a concrete pixel length or
// "ideal", meaning the content should choose its own length on that axis.
type Proposed struct {
	Amount int
	Ideal  bool
}

// Exactly returns a concrete proposal of n pixels.
func Exactly(n int) Proposed {
	if n < 0 {
		n = 0
	}
	return Proposed{Amount: n}
}

// Ideal returns the "content chooses" proposal.
func Ideal() Proposed {
	return Proposed{Ideal: true}
}

// Resolve returns the proposed length, or fallback when the proposal is ideal.
func (p Proposed) Resolve(fallback int) int {
	if p.Ideal {
		return fallback
	}
	return p.Amount
}

// Shrink reduces a concrete proposal by n pixels, clamping at zero.
// An ideal proposal is unaffected.
func (p Proposed) Shrink(n int) Proposed {
	if p.Ideal {
		return p
	}
	return Exactly(p.Amount - n)
}

// Proposal is a two-axis size request passed down the view tree.
type Proposal struct {
	Width  Proposed
	Height Proposed
}

// Concrete returns a proposal with both axes bounded.
func Concrete(width, height int) Proposal {
	return Proposal{Width: Exactly(width), Height: Exactly(height)}
}

// IdealProposal returns a proposal asking content for its ideal size on both
// axes.
func IdealProposal() Proposal {
	return Proposal{Width: Ideal(), Height: Ideal()}
}

// IsConcrete reports whether both axes carry a concrete length.
func (p Proposal) IsConcrete() bool {
	return !p.Width.Ideal && !p.Height.Ideal
}

// Along returns the proposal on the given axis.
func (p Proposal) Along(a Axis) Proposed {
	if a == Horizontal {
		return p.Width
	}
	return p.Height
}

// Across returns the proposal on the axis perpendicular to a.
func (p Proposal) Across(a Axis) Proposed {
	if a == Horizontal {
		return p.Height
	}
	return p.Width
}

// WithAlong returns a copy of p with the given axis replaced by v.
func (p Proposal) WithAlong(a Axis, v Proposed) Proposal {
	if a == Horizontal {
		p.Width = v
	} else {
		p.Height = v
	}
	return p
}

// WithAcross returns a copy of p with the axis perpendicular to a replaced
// by v.
func (p Proposal) WithAcross(a Axis, v Proposed) Proposal {
	return p.WithAlong(a.Perpendicular(), v)
}

// Inset shrinks both concrete axes by the total of the given edges.
func (p Proposal) Inset(e Edges) Proposal {
	p.Width = p.Width.Shrink(e.Horizontal())
	p.Height = p.Height.Shrink(e.Vertical())
	return p
}
