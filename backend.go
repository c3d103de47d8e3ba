package trellis

import "image"

// Widget is a handle to one native widget. Concrete types belong to the
// backend that created the widget; the engine never inspects a Widget beyond
// identity.
type Widget any

// Backend is the capability contract a native toolkit binding implements.
// All geometry is in integer pixel coordinates. The engine calls creation
// methods once per node lifetime, geometry queries freely during layout
// (including dry runs), and mutation methods only during commit.
type Backend interface {
	// --- Widget creation ---

	// CreateContainer returns an empty widget that can hold positioned
	// children.
	CreateContainer() Widget
	// CreateTextView returns a widget that renders wrapped text.
	CreateTextView() Widget
	// CreateButton returns a clickable button widget.
	CreateButton() Widget
	// CreateTextField returns a single-line editable text widget.
	CreateTextField() Widget
	// CreateImageView returns a widget that displays a decoded image.
	CreateImageView() Widget
	// CreateScrollContainer returns a widget scrolling the given child.
	CreateScrollContainer(child Widget) Widget
	// CreatePicker returns a single-choice option widget.
	CreatePicker() Widget
	// CreateList returns a selectable list widget; rows are added as
	// children.
	CreateList() Widget
	// CreatePathWidget returns a widget that renders a vector path.
	CreatePathWidget() Widget

	// --- Geometry ---

	// NaturalSize returns the size the widget would take if unconstrained.
	// May be degenerate before first render; callers fall back to
	// environment calibration data.
	NaturalSize(w Widget) Size
	// SetSize assigns the widget's final size. Commit-phase only.
	SetSize(w Widget, size Size)
	// SetPosition places the container's index-th child at pos, relative to
	// the container's top-leading corner. Commit-phase only.
	SetPosition(container Widget, index int, pos Point)
	// MeasureText returns the rendered extent of text in the given font,
	// wrapped at proposedWidth. A proposedWidth of Unbounded disables
	// wrapping.
	MeasureText(text string, font Font, proposedWidth int) Size

	// --- Mutation (commit-phase only) ---

	UpdateTextView(w Widget, text string, env Environment)
	UpdateButton(w Widget, label string, action func(), env Environment)
	UpdateTextField(w Widget, text, placeholder string, onChange func(string), env Environment)
	// SetScrollBarPresence shows or hides each axis's scroll bar.
	SetScrollBarPresence(w Widget, horizontal, vertical bool)
	UpdatePicker(w Widget, options []string, onChange func(int), env Environment)
	// SetSelectedOption selects the option at index; -1 clears the
	// selection.
	SetSelectedOption(w Widget, index int)
	UpdateList(w Widget, onSelect func(int), env Environment)
	SetSelectedRow(w Widget, index int)
	UpdateImageView(w Widget, img image.Image, size Size)
	RenderPath(w Widget, path *Path, size Size, fill, stroke Color, strokeWidth int)

	// --- Child management ---

	// AddChild appends child to the container's ordered child list.
	AddChild(container, child Widget)
	// InsertChild places child at index in the container's child list.
	InsertChild(container, child Widget, index int)
	// RemoveChild detaches child from the container.
	RemoveChild(container, child Widget)
	// Destroy releases the widget's native resources. The widget must
	// already be detached from any container.
	Destroy(w Widget)

	// --- Root plumbing ---

	// RootEnvironment returns the backend's base environment: platform
	// theme, default font, calibration data, and the backend reference
	// itself.
	RootEnvironment() Environment
	// SetRootWidget installs the tree's root widget into the window.
	SetRootWidget(w Widget)
	// ViewportSize returns the size proposed to the root view.
	ViewportSize() Size
	// SetChangeHandler registers fn to be called when the viewport or the
	// platform theme changes. fn may be called from any goroutine; the
	// scene marshals the resulting update onto the UI loop.
	SetChangeHandler(fn func())
}
