// state.go provides the reactive State type driving scene updates.
//
// State[T] wraps a value and notifies bindings when it changes. Setting a
// state marks its scene dirty, so the next frame re-evaluates the body and
// diffs the view tree.
//
// Thread safety rules:
//   - Get() is safe to call from any goroutine
//   - Set() must only be called from the UI goroutine
//   - For background updates, use Scene.Dispatch
package trellis

import (
	"sync"
	"sync/atomic"

	"github.com/trellisui/trellis/internal/debug"
)

// batchContext tracks batch state for deferring binding execution.
type batchContext struct {
	mu           sync.Mutex
	depth        int               // nesting depth (0 = not batching)
	pending      map[uint64]func() // pending binding callbacks keyed by binding ID
	pendingOrder []uint64          // order in which bindings were first triggered
}

func newBatchContext() batchContext {
	return batchContext{
		pending: make(map[uint64]func()),
	}
}

// globalBindingID generates unique binding IDs across all State instances.
var globalBindingID atomic.Uint64

// State wraps a value and notifies bindings when it changes.
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
	scene    *Scene
}

// binding represents a registered callback that fires when state changes.
type binding[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding.
type Unbind func()

// NewState creates a state bound to the default scene.
func NewState[T any](initial T) *State[T] {
	s := DefaultScene()
	if s == nil {
		panic("trellis: NewState requires a default scene; create one or use NewStateFor")
	}
	return NewStateFor(s, initial)
}

// NewStateFor creates a state bound to the given scene.
func NewStateFor[T any](scene *Scene, initial T) *State[T] {
	if scene == nil {
		panic("trellis: nil scene in NewStateFor")
	}
	return &State[T]{value: initial, scene: scene}
}

// Get returns the current value. Safe to call from any goroutine.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value, marks the scene dirty, and notifies bindings.
// Must be called from the UI goroutine; background work goes through
// Scene.Dispatch. Within a Batch, binding execution is deferred until the
// batch completes.
func (s *State[T]) Set(v T) {
	debug.Log("State.Set: %v", v)
	s.mu.Lock()
	s.value = v
	// Keep only active bindings, dropping unbound ones.
	active := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	scene := s.scene
	s.mu.Unlock()

	scene.MarkDirty()

	batch := &scene.batch
	batch.mu.Lock()
	if batch.pending == nil {
		batch.pending = make(map[uint64]func())
	}
	batching := batch.depth > 0
	if batching {
		// Defer execution; later Sets to the same binding overwrite the
		// captured value, and order of first trigger is preserved.
		for _, b := range active {
			fn, captured := b.fn, v
			if _, seen := batch.pending[b.id]; !seen {
				batch.pendingOrder = append(batch.pendingOrder, b.id)
			}
			batch.pending[b.id] = func() { fn(captured) }
		}
	}
	batch.mu.Unlock()

	if !batching {
		for _, b := range active {
			b.fn(v)
		}
	}
}

// Update applies fn to the current value and sets the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers fn to be called on every change. Bindings run in
// registration order; the returned Unbind removes the binding.
func (s *State[T]) Bind(fn func(T)) Unbind {
	id := globalBindingID.Add(1)

	s.mu.Lock()
	b := &binding[T]{id: id, fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Batch executes fn on the default scene, deferring binding callbacks until
// fn returns. See Scene.Batch.
func Batch(fn func()) {
	s := DefaultScene()
	if s == nil {
		panic("trellis: Batch requires a default scene")
	}
	s.Batch(fn)
}

// Batch executes fn and defers all binding callbacks until fn returns.
// When the same binding triggers multiple times during a batch it executes
// once, with the final value, in order of first trigger. Nested batches
// fire on outermost completion. The batch state is cleaned up even if fn
// panics.
func (s *Scene) Batch(fn func()) {
	if s == nil {
		panic("trellis: nil scene in Batch")
	}
	batch := &s.batch
	batch.mu.Lock()
	if batch.pending == nil {
		batch.pending = make(map[uint64]func())
	}
	batch.depth++
	batch.mu.Unlock()

	defer func() {
		batch.mu.Lock()
		batch.depth--
		run := batch.depth == 0 && len(batch.pending) > 0
		var callbacks []func()
		if run {
			callbacks = make([]func(), 0, len(batch.pendingOrder))
			for _, id := range batch.pendingOrder {
				if cb, ok := batch.pending[id]; ok {
					callbacks = append(callbacks, cb)
				}
			}
			batch.pending = make(map[uint64]func())
			batch.pendingOrder = nil
		}
		batch.mu.Unlock()

		for _, cb := range callbacks {
			cb()
		}
	}()

	fn()
}
