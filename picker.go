package trellis

// Picker is a single-choice option control bound to the selected index.
// A nil or out-of-range selection shows no chosen option.
type Picker struct {
	Options   []string
	Selection *State[int]
	// OnChange runs after each selection, in addition to updating
	// Selection.
	OnChange func(int)
}

var _ View = Picker{}

func (v Picker) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return &leafStorage{}
}

func (v Picker) BuildWidget(children Children, b Backend) Widget {
	return b.CreatePicker()
}

func (v Picker) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	st := children.(*leafStorage)
	size := b.NaturalSize(w)
	if size.W <= 0 || size.H <= 0 {
		widest := Size{}
		for _, opt := range v.Options {
			if m := b.MeasureText(opt, env.Font, Unbounded); m.W > widest.W {
				widest = m
			}
		}
		size = env.Calibration.Picker.Pad(widest)
	}
	st.size = size
	return FixedViewSize(size)
}

func (v Picker) Commit(w Widget, children Children, env Environment, b Backend) {
	st := children.(*leafStorage)
	b.UpdatePicker(w, v.Options, v.onChange, env)
	b.SetSelectedOption(w, v.selectedIndex())
	b.SetSize(w, st.size)
}

func (v Picker) selectedIndex() int {
	if v.Selection == nil {
		return -1
	}
	i := v.Selection.Get()
	if i < 0 || i >= len(v.Options) {
		return -1
	}
	return i
}

func (v Picker) onChange(i int) {
	if v.Selection != nil {
		v.Selection.Set(i)
	}
	if v.OnChange != nil {
		v.OnChange(i)
	}
}
