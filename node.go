package trellis

import (
	"reflect"

	"github.com/trellisui/trellis/internal/debug"
)

// Node is the persistent per-view-instance object mirroring one position of
// the view tree. It owns exactly one native widget, created once via the
// view's BuildWidget and mutated thereafter, and one children storage shaped
// for the current view kind. The widget's identity is stable across updates
// as long as the view kind at this position does not change; a kind change
// is handled by the parent's storage, which replaces the whole node.
type Node struct {
	view     View
	kind     reflect.Type
	widget   Widget
	children Children
	backend  Backend
	lastSize ViewSize

	// adopted marks a node claimed out of a Snapshot during subtree
	// replacement, so the discard sweep leaves it alone.
	adopted bool
}

// NewNode creates the node for v, building its children storage and widget.
// When snap preserves a node of the same concrete kind, that node is adopted
// wholesale: its widget and subtree survive and only the view value is
// swapped. Otherwise the snapshot is offered to BuildChildren for positional
// descendant adoption and the unclaimed remainder is torn down, firing its
// disappear cleanups, before BuildWidget runs.
func NewNode(v View, b Backend, env Environment, snap *Snapshot) *Node {
	kind := viewKind(v)
	if n := snap.take(kind, b); n != nil {
		// The claim flag stays set until the enclosing discard sweep
		// passes over the old subtree and skips this node.
		n.view = v
		debug.Log("NewNode: adopted %v from snapshot", kind)
		return n
	}
	children := v.BuildChildren(b, env, snap)
	snap.discard()
	n := &Node{
		view:     v,
		kind:     kind,
		widget:   v.BuildWidget(children, b),
		children: children,
		backend:  b,
	}
	debug.Log("NewNode: built %v", kind)
	return n
}

// Compatible reports whether v can update this node in place, which is the
// case exactly when v has the node's concrete view kind.
func (n *Node) Compatible(v View) bool {
	return viewKind(v) == n.kind
}

// kindIdentifier lets adapter views refine their identity beyond the
// adapter struct's own type, so that, say, two different representable
// wrappers are not mistaken for the same view kind.
type kindIdentifier interface {
	viewKind() reflect.Type
}

// viewKind is the concrete identity the engine diffs by.
func viewKind(v View) reflect.Type {
	if k, ok := v.(kindIdentifier); ok {
		return k.viewKind()
	}
	return reflect.TypeOf(v)
}

// Update diffs v against the stored view value and recomputes layout under
// the proposal. The stored value is replaced, the view's Layout recursively
// updates child nodes with their corresponding sub-values, and, when dry is
// false, Commit applies the resulting geometry to native widgets.
//
// Callers must have checked Compatible first; updating across a kind change
// defeats the storage/widget lockstep and panics.
func (n *Node) Update(v View, proposal Proposal, env Environment, dry bool) ViewSize {
	if viewKind(v) != n.kind {
		panic("trellis: view kind changed without node replacement; storage must replace the node")
	}
	n.view = v
	size := n.view.Layout(n.widget, n.children, proposal, env, n.backend, dry)
	if !dry {
		n.view.Commit(n.widget, n.children, env, n.backend)
	}
	n.lastSize = size
	return size
}

// View returns the stored view value.
func (n *Node) View() View { return n.view }

// Widget returns the node's native widget.
func (n *Node) Widget() Widget { return n.widget }

// Children returns the node's children storage.
func (n *Node) Children() Children { return n.children }

// LastSize returns the size computed by the most recent Update.
func (n *Node) LastSize() ViewSize { return n.lastSize }

// Teardown destroys the subtree rooted at this node: disappear cleanups fire
// outer-before-inner (storage teardown precedes each child's own), then the
// widget is destroyed. A node claimed from a snapshot is skipped once.
func (n *Node) Teardown() {
	if n.adopted {
		n.adopted = false
		return
	}
	n.children.Teardown()
	n.backend.Destroy(n.widget)
}
