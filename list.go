package trellis

// List is a selectable list whose rows are rebuilt from a backing
// collection on every update: row content must be a pure function of the
// index. Row nodes are grown or truncated to match Count and reused by
// position, which keeps native list-item identity stable at surviving
// indices.
type List struct {
	Count int
	Row   func(i int) View
	// Selection is the selected row index; nil or out of range means no
	// selection.
	Selection *State[int]
	OnSelect  func(int)
}

var _ View = List{}

func (v List) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return NewListChildren(b, env, snap, v.rows())
}

func (v List) BuildWidget(children Children, b Backend) Widget {
	w := b.CreateList()
	children.(*ListChildren).Attach(w)
	return w
}

func (v List) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	c := children.(*ListChildren)
	rows := v.rows()
	c.Sync(rows, env)

	rowWidth := proposal.Width
	var (
		cursor   int
		maxRowW  int
		idealSum int
		minW     int
	)
	for i, row := range rows {
		vs := c.Node(i).Update(row, Proposal{Width: rowWidth, Height: Ideal()}, env, dry)
		c.Frames[i] = ChildFrame{Offset: Point{Y: cursor}, Size: vs.Size}
		cursor += vs.Size.H
		if vs.Size.W > maxRowW {
			maxRowW = vs.Size.W
		}
		idealSum += vs.Ideal.H
		if vs.MinWidth > minW {
			minW = vs.MinWidth
		}
	}

	size := Size{
		W: proposal.Width.Resolve(maxRowW),
		H: proposal.Height.Resolve(cursor),
	}
	c.Bounds = size
	return ViewSize{
		Size:                size,
		Ideal:               Size{W: maxRowW, H: idealSum},
		IdealWidthForHeight: maxRowW,
		IdealHeightForWidth: cursor,
		MinWidth:            minW,
		MinHeight:           0,
		MaxWidth:            Unbounded,
		MaxHeight:           Unbounded,
	}
}

func (v List) Commit(w Widget, children Children, env Environment, b Backend) {
	c := children.(*ListChildren)
	b.UpdateList(w, v.onSelect, env)
	if sel := v.selectedRow(); sel != c.SelectedRow {
		b.SetSelectedRow(w, sel)
		c.SelectedRow = sel
	}
	b.SetSize(w, c.Bounds)
	for i, f := range c.Frames {
		b.SetPosition(w, i, f.Offset)
	}
}

func (v List) rows() []View {
	if v.Row == nil {
		return nil
	}
	return ForEach(v.Count, v.Row)
}

func (v List) selectedRow() int {
	if v.Selection == nil {
		return -1
	}
	i := v.Selection.Get()
	if i < 0 || i >= v.Count {
		return -1
	}
	return i
}

func (v List) onSelect(i int) {
	if v.Selection != nil {
		v.Selection.Set(i)
	}
	if v.OnSelect != nil {
		v.OnSelect(i)
	}
}
