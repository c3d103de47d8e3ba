package trellis

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/trellisui/trellis/internal/debug"
)

// Scene drives one view tree against one backend. All tree construction,
// diffing, layout, and commit work runs on a single UI goroutine: external
// triggers (state changes, resizes, theme switches) are marshaled onto it
// via Dispatch, and each triggered update runs to completion. Rapid
// triggers coalesce through the dirty flag; the engine itself applies no
// backpressure.
type Scene struct {
	backend Backend
	body    func() View
	theme   *Theme

	node *Node
	env  Environment

	queue         chan func()
	queueSize     int
	dirty         atomic.Bool
	frameDuration time.Duration

	stopCh  chan struct{}
	stopped atomic.Bool

	batch batchContext
}

// defaultScene backs the package-level State constructors.
var defaultScene *Scene

// DefaultScene returns the scene package-level helpers bind to, or nil.
func DefaultScene() *Scene { return defaultScene }

// SetDefaultScene sets the scene package-level helpers bind to.
func SetDefaultScene(s *Scene) { defaultScene = s }

// NewScene creates a scene rendering the view returned by body through
// backend. body is re-evaluated on every update cycle and must be a pure
// function of reactive state. The first created scene becomes the default.
func NewScene(backend Backend, body func() View, opts ...SceneOption) (*Scene, error) {
	if backend == nil {
		return nil, fmt.Errorf("trellis: nil backend")
	}
	if body == nil {
		return nil, fmt.Errorf("trellis: nil body")
	}
	s := &Scene{
		backend:       backend,
		body:          body,
		queueSize:     256,
		frameDuration: time.Second / 60,
		stopCh:        make(chan struct{}),
		batch:         newBatchContext(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.queue = make(chan func(), s.queueSize)

	s.env = backend.RootEnvironment()
	s.env.Backend = backend
	if s.env.Calibration == (Calibration{}) {
		s.env.Calibration = DefaultCalibration()
	}
	if s.theme != nil {
		env, err := s.theme.Apply(s.env)
		if err != nil {
			return nil, err
		}
		s.env = env
	}

	// Viewport or platform-theme changes trigger a full re-update with a
	// freshly computed root environment, not a targeted patch.
	backend.SetChangeHandler(func() {
		s.Dispatch(func() {
			s.refreshEnvironment()
			s.MarkDirty()
		})
	})

	if defaultScene == nil {
		defaultScene = s
	}
	s.MarkDirty()
	return s, nil
}

// Environment returns the scene's current root environment.
func (s *Scene) Environment() Environment { return s.env }

// Backend returns the backend this scene renders through.
func (s *Scene) Backend() Backend { return s.backend }

// MarkDirty schedules an update on the next frame.
func (s *Scene) MarkDirty() {
	if s == nil {
		panic("trellis: nil scene in MarkDirty")
	}
	s.dirty.Store(true)
}

// Dispatch enqueues fn to run on the UI goroutine. Safe to call from any
// goroutine; use it for all background mutations.
func (s *Scene) Dispatch(fn func()) {
	select {
	case s.queue <- fn:
	case <-s.stopCh:
		// Scene is stopping, drop the update.
	}
}

// Run owns the UI loop: it drains dispatched work, re-renders while dirty,
// and blocks until Stop is called or SIGINT is received.
func (s *Scene) Run() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		select {
		case <-sigCh:
			s.Stop()
		case <-s.stopCh:
		}
		signal.Stop(sigCh)
	}()

	for !s.stopped.Load() {
		frameStart := time.Now()
		s.Pump()
		elapsed := time.Since(frameStart)
		if elapsed < s.frameDuration {
			select {
			case <-time.After(s.frameDuration - elapsed):
			case <-s.stopCh:
				return nil
			}
		}
	}
	return nil
}

// Pump runs one cooperative frame: drains pending dispatched work, then
// performs an update cycle if anything marked the scene dirty. Backends
// that own the main loop (a game loop, a toolkit main loop) call Pump once
// per tick instead of using Run.
func (s *Scene) Pump() {
	for {
		select {
		case fn := <-s.queue:
			fn()
		default:
			if s.dirty.Swap(false) {
				s.update()
			}
			return
		}
	}
}

// Stop signals Run to exit. Idempotent.
func (s *Scene) Stop() {
	if s.stopped.Swap(true) {
		return
	}
	close(s.stopCh)
}

// Stopped reports whether Stop has been called. Backends that own the main
// loop poll it to know when to exit.
func (s *Scene) Stopped() bool {
	return s.stopped.Load()
}

// Teardown destroys the scene's node tree, firing disappear cleanups.
func (s *Scene) Teardown() {
	if s.node != nil {
		s.node.Teardown()
		s.node = nil
	}
}

// update runs one full synchronous cycle: re-evaluate the body, diff it
// into the node tree, lay out under the viewport proposal, and commit.
func (s *Scene) update() {
	view := s.body()
	viewport := s.backend.ViewportSize()
	proposal := Concrete(viewport.W, viewport.H)
	debug.Log("Scene.update: viewport %dx%d", viewport.W, viewport.H)

	switch {
	case s.node == nil:
		s.node = NewNode(view, s.backend, s.env, nil)
		s.backend.SetRootWidget(s.node.Widget())
	case !s.node.Compatible(view):
		old := s.node
		s.node = NewNode(view, s.backend, s.env, &Snapshot{node: old})
		s.backend.SetRootWidget(s.node.Widget())
	}
	s.node.Update(view, proposal, s.env, false)
}

// refreshEnvironment recomputes the root environment from the backend and
// re-applies the theme, after a backend-signaled change.
func (s *Scene) refreshEnvironment() {
	env := s.backend.RootEnvironment()
	env.Backend = s.backend
	if env.Calibration == (Calibration{}) {
		env.Calibration = DefaultCalibration()
	}
	if s.theme != nil {
		if themed, err := s.theme.Apply(env); err == nil {
			env = themed
		}
	}
	s.env = env
}
