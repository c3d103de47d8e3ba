package trellis

import "reflect"

// Children is the storage a node keeps its child nodes in. Each view kind
// constructs the variant shaped for it: NoChildren for leaves,
// StaticChildren for containers and modifiers, ListChildren for data-driven
// rows, and specialized storage for representable wrappers and shape views.
//
// Storage composition must stay in lockstep with the widget children the
// backend sees: nodes are added, replaced, and removed here and nowhere
// else.
type Children interface {
	// Nodes returns the child nodes in widget order.
	Nodes() []*Node
	// Teardown destroys every child node, firing disappear cleanups
	// outer-before-inner.
	Teardown()
}

// NoChildren is the storage of leaf views.
type NoChildren struct{}

func (NoChildren) Nodes() []*Node { return nil }
func (NoChildren) Teardown()      {}

// ChildFrame is one child's geometry as computed by the owning view's last
// Layout call and applied by its Commit.
type ChildFrame struct {
	Offset Point
	Size   Size
}

// StaticChildren stores a variable-length ordered list of child nodes for
// container and modifier views, together with the per-child geometry the
// owning view carries from Layout to Commit.
type StaticChildren struct {
	b         Backend
	container Widget
	nodes     []*Node

	// Frames holds one entry per node after the owning view's Layout;
	// Commit consumes it to position children.
	Frames []ChildFrame
	// Bounds is the owning view's own size from the same Layout call.
	Bounds Size
}

var _ Children = (*StaticChildren)(nil)

// NewStaticChildren builds nodes for the given views, adopting compatible
// subtrees from snap positionally when one is supplied.
func NewStaticChildren(b Backend, env Environment, snap *Snapshot, views ...View) *StaticChildren {
	c := &StaticChildren{b: b}
	for i, v := range views {
		c.nodes = append(c.nodes, NewNode(v, b, env, snap.Child(i)))
	}
	return c
}

// Attach records the container widget and appends every child widget to it.
// Called from the owning view's BuildWidget.
func (c *StaticChildren) Attach(container Widget) {
	c.container = container
	for _, n := range c.nodes {
		c.b.AddChild(container, n.Widget())
	}
}

// Nodes returns the child nodes in widget order.
func (c *StaticChildren) Nodes() []*Node { return c.nodes }

// Node returns the child node at index i.
func (c *StaticChildren) Node(i int) *Node { return c.nodes[i] }

// Len returns the number of child nodes.
func (c *StaticChildren) Len() int { return len(c.nodes) }

// Sync reconciles the stored nodes with the current child views: surplus
// trailing nodes are destroyed, surviving positions are kept (replacing the
// node only when the view kind changed there), and missing trailing nodes
// are created. Correspondence is structural and positional.
func (c *StaticChildren) Sync(views []View, env Environment) {
	for i := len(views); i < len(c.nodes); i++ {
		c.b.RemoveChild(c.container, c.nodes[i].Widget())
		c.nodes[i].Teardown()
	}
	if len(views) < len(c.nodes) {
		c.nodes = c.nodes[:len(views)]
	}
	for i, v := range views {
		if i < len(c.nodes) {
			c.replaceIfNeeded(i, v, env)
			continue
		}
		n := NewNode(v, c.b, env, nil)
		c.nodes = append(c.nodes, n)
		if c.container != nil {
			c.b.AddChild(c.container, n.Widget())
		}
	}
	if len(c.Frames) != len(c.nodes) {
		c.Frames = make([]ChildFrame, len(c.nodes))
	}
}

// replaceIfNeeded swaps the node at i for a fresh one when the view kind at
// that position changed, offering the discarded subtree as a snapshot.
func (c *StaticChildren) replaceIfNeeded(i int, v View, env Environment) {
	n := c.nodes[i]
	if n.Compatible(v) {
		return
	}
	if c.container != nil {
		c.b.RemoveChild(c.container, n.Widget())
	}
	nn := NewNode(v, c.b, env, &Snapshot{node: n})
	c.nodes[i] = nn
	if c.container != nil {
		c.b.InsertChild(c.container, nn.Widget(), i)
	}
}

// Teardown destroys all child nodes.
func (c *StaticChildren) Teardown() {
	for _, n := range c.nodes {
		n.Teardown()
	}
	c.nodes = nil
}

// ListChildren stores type-erased, data-driven row nodes. Rows are rebuilt
// from the backing collection on every pass; nodes are grown or truncated to
// match the row count and reused by position, which keeps native list-item
// identity stable at surviving indices.
type ListChildren struct {
	StaticChildren

	// SelectedRow carries the committed selection between updates so the
	// backend is only poked when it changes. -1 means no selection.
	SelectedRow int
}

var _ Children = (*ListChildren)(nil)

// NewListChildren builds row nodes for the given row views.
func NewListChildren(b Backend, env Environment, snap *Snapshot, rows []View) *ListChildren {
	c := &ListChildren{SelectedRow: -1}
	c.b = b
	for i, v := range rows {
		c.nodes = append(c.nodes, NewNode(v, b, env, snap.Child(i)))
	}
	return c
}

// Snapshot preserves the subtree discarded by a view-kind change so the
// replacement view can adopt compatible descendants, keeping their native
// widgets alive across conditional branch switches. Whatever remains
// unclaimed once the replacement has built its children is torn down,
// firing disappear cleanups, before the replacement's own BuildWidget runs.
type Snapshot struct {
	node   *Node
	parent Widget // widget the node is still attached to, nil if detached
}

// Kind returns the concrete view type preserved at this position, or nil.
func (s *Snapshot) Kind() reflect.Type {
	if s == nil || s.node == nil {
		return nil
	}
	return s.node.kind
}

// Child returns the snapshot of the i-th preserved child, or nil.
func (s *Snapshot) Child(i int) *Snapshot {
	if s == nil || s.node == nil {
		return nil
	}
	nodes := s.node.children.Nodes()
	if i < 0 || i >= len(nodes) {
		return nil
	}
	return &Snapshot{node: nodes[i], parent: s.node.widget}
}

// take claims the preserved node when its kind matches, detaching its widget
// from the old parent. The claim is cleared either by NewNode (top-level
// adoption) or by the discard sweep (descendant adoption).
func (s *Snapshot) take(kind reflect.Type, b Backend) *Node {
	if s == nil || s.node == nil || s.node.kind != kind || s.node.adopted {
		return nil
	}
	if s.parent != nil {
		b.RemoveChild(s.parent, s.node.widget)
	}
	s.node.adopted = true
	return s.node
}

// discard tears down the preserved subtree, skipping nodes claimed during
// the replacement's BuildChildren.
func (s *Snapshot) discard() {
	if s == nil || s.node == nil {
		return
	}
	s.node.Teardown()
	s.node = nil
}
