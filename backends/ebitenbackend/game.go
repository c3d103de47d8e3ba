package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/trellisui/trellis"
)

// Game adapts a scene to ebiten.Game. Ebitengine owns the main loop: each
// Update handles input and pumps the scene, each Draw paints the widget
// tree, and Layout feeds window resizes back as viewport changes.
type Game struct {
	backend *Backend
	scene   *trellis.Scene
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps scene for ebiten.RunGame. The scene must have been created
// with a *Backend from this package.
func NewGame(scene *trellis.Scene, backend *Backend) *Game {
	return &Game{backend: backend, scene: scene}
}

func (g *Game) Update() error {
	g.backend.handleInput()
	g.scene.Pump()
	if g.scene.Stopped() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until it stops or the window closes.
func Run(scene *trellis.Scene, backend *Backend, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(backend.viewport.W, backend.viewport.H)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(NewGame(scene, backend))
	scene.Teardown()
	return err
}
