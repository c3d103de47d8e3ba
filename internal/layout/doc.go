// Package layout implements the pure sizing mathematics of the view engine:
// size proposals, view size responses, stack flex distribution, alignment
// offsets, and edge insets.
//
// Nothing in this package touches a backend or a widget. All values are
// plain integers in pixel coordinates so results are comparable with == and
// safe to cache by value.
package layout
