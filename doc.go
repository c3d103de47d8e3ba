// Package trellis is a declarative, retained-mode GUI framework that renders
// one view-description language through swappable native backends.
//
// Users import this single package for the complete public API: the view
// vocabulary, the backend contract, environment propagation, the scene
// driver, and reactive state. Concrete backends live under backends/.
//
// A view tree is a tree of immutable View values. The engine mirrors it with
// a persistent tree of Nodes, each owning one native widget. On every update
// the engine diffs new view values against the stored ones, mutates widgets
// in place when the view kind at a position is unchanged, and tears down and
// rebuilds subtrees when it is not. Sizing runs bottom-up under size
// proposals with a two-phase dry-run/commit protocol: containers probe their
// children's flexibility without touching native geometry, then commit the
// final layout exactly once per update.
package trellis
