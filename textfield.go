package trellis

// TextField is a single-line editable text control bound to a string state.
type TextField struct {
	Placeholder string
	Text        *State[string]
	// OnChange runs after each edit, in addition to updating Text.
	OnChange func(string)
}

var _ View = TextField{}

func (v TextField) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return &leafStorage{}
}

func (v TextField) BuildWidget(children Children, b Backend) Widget {
	return b.CreateTextField()
}

func (v TextField) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	st := children.(*leafStorage)
	cal := env.Calibration.TextField

	height := b.NaturalSize(w).H
	if height <= 0 {
		height = cal.Pad(b.MeasureText("M", env.Font, Unbounded)).H
	}
	// Fields stretch to the proposed width but never below the calibrated
	// minimum.
	width := proposal.Width.Resolve(cal.MinWidth)
	if width < cal.MinWidth {
		width = cal.MinWidth
	}

	size := Size{W: width, H: height}
	st.size = size
	return ViewSize{
		Size:                size,
		Ideal:               Size{W: cal.MinWidth, H: height},
		IdealWidthForHeight: cal.MinWidth,
		IdealHeightForWidth: height,
		MinWidth:            cal.MinWidth,
		MinHeight:           height,
		MaxWidth:            Unbounded,
		MaxHeight:           height,
	}
}

func (v TextField) Commit(w Widget, children Children, env Environment, b Backend) {
	st := children.(*leafStorage)
	content := ""
	if v.Text != nil {
		content = v.Text.Get()
	}
	b.UpdateTextField(w, content, v.Placeholder, v.onChange, env)
	b.SetSize(w, st.size)
}

func (v TextField) onChange(s string) {
	if v.Text != nil {
		v.Text.Set(s)
	}
	if v.OnChange != nil {
		v.OnChange(s)
	}
}
