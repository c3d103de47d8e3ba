package trellis

// Text renders a wrapped string in the environment's font and foreground
// color.
type Text struct {
	Content string
}

var _ View = Text{}

func (v Text) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return &leafStorage{}
}

func (v Text) BuildWidget(children Children, b Backend) Widget {
	return b.CreateTextView()
}

func (v Text) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	st := children.(*leafStorage)

	// Ideal is proposal-independent: the unwrapped extent.
	ideal := b.MeasureText(v.Content, env.Font, Unbounded)

	wrapped := ideal
	if !proposal.Width.Ideal && proposal.Width.Amount < ideal.W {
		wrapped = b.MeasureText(v.Content, env.Font, proposal.Width.Amount)
	}
	// The narrowest the content can wrap to; below this the text refuses to
	// shrink.
	narrowest := b.MeasureText(v.Content, env.Font, 0)

	st.size = wrapped
	return ViewSize{
		Size:                wrapped,
		Ideal:               ideal,
		IdealWidthForHeight: ideal.W,
		IdealHeightForWidth: wrapped.H,
		MinWidth:            narrowest.W,
		MinHeight:           wrapped.H,
		MaxWidth:            ideal.W,
		MaxHeight:           wrapped.H,
	}
}

func (v Text) Commit(w Widget, children Children, env Environment, b Backend) {
	st := children.(*leafStorage)
	b.UpdateTextView(w, v.Content, env)
	b.SetSize(w, st.size)
}
