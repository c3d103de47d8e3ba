package trellis

// View is an immutable description of desired UI content at one tree
// position. Concrete view types are plain value structs; they never hold
// widget references. Whether the engine reuses the native widget at a
// position across updates depends on the concrete type staying the same,
// not on value equality.
type View interface {
	// BuildChildren constructs the children storage for this view kind.
	// When snap is non-nil it holds the subtree discarded by a view-kind
	// change at this position; compatible descendants may be adopted from
	// it instead of rebuilt.
	BuildChildren(b Backend, env Environment, snap *Snapshot) Children

	// BuildWidget creates this view's native widget. Called exactly once
	// per node lifetime; must not perform layout-dependent work.
	BuildWidget(children Children, b Backend) Widget

	// Layout computes the view's size under the proposal, updating child
	// nodes with their current sub-values as it recurses. When dry is
	// true no native geometry may be assigned; querying widgets (text
	// measurement, natural sizes) is allowed. Layout may run several times
	// per update while parents probe flexibility.
	Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize

	// Commit applies the layout most recently computed by Layout: widget
	// sizes, child positions, callback bindings. Called at most once per
	// node per real update, after the final Layout, with the child order
	// and count that Layout implied.
	Commit(w Widget, children Children, env Environment, b Backend)
}

// LayoutChildrenProvider is an optional View extension for containers that
// expose a positional subset of their children to shared layout helpers.
type LayoutChildrenProvider interface {
	LayoutChildren() []View
}

// EmptyView renders nothing and takes no space.
type EmptyView struct{}

var _ View = EmptyView{}

func (EmptyView) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return NoChildren{}
}

func (EmptyView) BuildWidget(children Children, b Backend) Widget {
	return b.CreateContainer()
}

func (EmptyView) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	return ViewSize{MaxWidth: 0, MaxHeight: 0}
}

func (EmptyView) Commit(w Widget, children Children, env Environment, b Backend) {
	b.SetSize(w, Size{})
}

// If returns then when cond holds, otherwise els (or EmptyView when els is
// nil). The branch switch lands at the parent's tree position, so the
// engine's kind diffing tears down the old branch and offers it to the new
// one as a snapshot for state preservation.
func If(cond bool, then View, els View) View {
	if cond {
		return then
	}
	if els == nil {
		return EmptyView{}
	}
	return els
}

// ForEach builds one view per index of a backing collection of length n.
// Row content must be a pure function of the index.
func ForEach(n int, row func(i int) View) []View {
	views := make([]View, n)
	for i := range views {
		views[i] = row(i)
	}
	return views
}
