// Package ebitenbackend renders a trellis scene through Ebitengine.
//
// The backend owns a widget tree mirroring the scene's node tree and paints
// it every frame from the Game adapter's Draw. Text runs through text/v2
// with a caller-supplied TrueType face, shapes through the vector package,
// and pointer input through inpututil hit testing against the laid-out
// widget geometry. Ebitengine owns the main loop, so the adapter's Update
// calls Scene.Pump once per tick instead of Scene.Run.
package ebitenbackend
