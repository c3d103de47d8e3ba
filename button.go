package trellis

// Button is a clickable control running Action on activation.
type Button struct {
	Label  string
	Action func()
}

var _ View = Button{}

func (v Button) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return &leafStorage{}
}

func (v Button) BuildWidget(children Children, b Backend) Widget {
	return b.CreateButton()
}

func (v Button) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	st := children.(*leafStorage)
	size := b.NaturalSize(w)
	if size.W <= 0 || size.H <= 0 {
		// Native size queries are degenerate before first render on some
		// backends; fall back to the theme's calibration metrics.
		size = env.Calibration.Button.Pad(b.MeasureText(v.Label, env.Font, Unbounded))
	}
	st.size = size
	return FixedViewSize(size)
}

func (v Button) Commit(w Widget, children Children, env Environment, b Backend) {
	st := children.(*leafStorage)
	b.UpdateButton(w, v.Label, v.Action, env)
	b.SetSize(w, st.size)
}
