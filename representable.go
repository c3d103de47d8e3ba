package trellis

import "reflect"

// WidgetRepresentable is the escape hatch for views that directly own one
// native widget outside the standard vocabulary. The coordinator is a
// persistent object living as long as the node; it typically holds native
// callback registrations that DismantleWidget must release.
type WidgetRepresentable interface {
	// MakeCoordinator creates the persistent companion object. Called once
	// per node lifetime, before MakeWidget.
	MakeCoordinator(b Backend) any
	// MakeWidget creates the wrapped native widget. Called once per node
	// lifetime.
	MakeWidget(coordinator any, b Backend) Widget
	// UpdateWidget pushes the view's current value into the widget.
	// Commit-phase only.
	UpdateWidget(w Widget, coordinator any, env Environment, b Backend)
	// SizeThatFits answers the size proposal. Dry-safe.
	SizeThatFits(w Widget, coordinator any, proposal Proposal, env Environment, b Backend) ViewSize
	// DismantleWidget releases the coordinator's native registrations when
	// the node is destroyed, before the widget itself is destroyed.
	DismantleWidget(w Widget, coordinator any, b Backend)
}

// Represent adapts a WidgetRepresentable into a View. Two representables of
// different dynamic types are different view kinds: swapping one for the
// other at a position replaces the node.
func Represent(r WidgetRepresentable) View {
	if r == nil {
		panic("trellis: nil WidgetRepresentable")
	}
	return representableView{impl: r}
}

type representableView struct {
	impl WidgetRepresentable
}

var (
	_ View           = representableView{}
	_ kindIdentifier = representableView{}
)

func (v representableView) viewKind() reflect.Type {
	return reflect.TypeOf(v.impl)
}

// wrapperChildren owns the coordinator and the dedicated dismantle hook.
type wrapperChildren struct {
	NoChildren
	b           Backend
	impl        WidgetRepresentable
	coordinator any
	widget      Widget
	size        Size
}

func (c *wrapperChildren) Teardown() {
	if c.widget != nil {
		c.impl.DismantleWidget(c.widget, c.coordinator, c.b)
	}
}

func (v representableView) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return &wrapperChildren{b: b, impl: v.impl, coordinator: v.impl.MakeCoordinator(b)}
}

func (v representableView) BuildWidget(children Children, b Backend) Widget {
	c := children.(*wrapperChildren)
	c.widget = v.impl.MakeWidget(c.coordinator, b)
	return c.widget
}

func (v representableView) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	c := children.(*wrapperChildren)
	c.impl = v.impl
	vs := v.impl.SizeThatFits(w, c.coordinator, proposal, env, b)
	c.size = vs.Size
	return vs
}

func (v representableView) Commit(w Widget, children Children, env Environment, b Backend) {
	c := children.(*wrapperChildren)
	v.impl.UpdateWidget(w, c.coordinator, env, b)
	b.SetSize(w, c.size)
}
