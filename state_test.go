package trellis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testScene(t *testing.T) *Scene {
	t.Helper()
	s, err := NewScene(NewMockBackend(800, 600), func() View { return EmptyView{} })
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestState_GetSet(t *testing.T) {
	s := testScene(t)
	count := NewStateFor(s, 5)
	if got := count.Get(); got != 5 {
		t.Errorf("initial value = %d, want 5", got)
	}
	count.Set(7)
	if got := count.Get(); got != 7 {
		t.Errorf("value after Set = %d, want 7", got)
	}
}

func TestState_Update(t *testing.T) {
	s := testScene(t)
	count := NewStateFor(s, 10)
	count.Update(func(v int) int { return v * 2 })
	if got := count.Get(); got != 20 {
		t.Errorf("value after Update = %d, want 20", got)
	}
}

func TestState_BindingsRunInRegistrationOrder(t *testing.T) {
	s := testScene(t)
	st := NewStateFor(s, "")

	var order []string
	st.Bind(func(v string) { order = append(order, "first:"+v) })
	st.Bind(func(v string) { order = append(order, "second:"+v) })
	st.Set("x")

	want := []string{"first:x", "second:x"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("binding order mismatch (-want +got):\n%s", diff)
	}
}

func TestState_Unbind(t *testing.T) {
	s := testScene(t)
	st := NewStateFor(s, 0)

	calls := 0
	unbind := st.Bind(func(int) { calls++ })
	st.Set(1)
	unbind()
	st.Set(2)

	if calls != 1 {
		t.Errorf("binding ran %d times, want 1 (unbound before second Set)", calls)
	}
}

func TestState_SetMarksSceneDirty(t *testing.T) {
	s := testScene(t)
	st := NewStateFor(s, 0)
	s.Pump() // clear the initial dirty flag

	if s.dirty.Load() {
		t.Fatal("scene dirty before Set")
	}
	st.Set(1)
	if !s.dirty.Load() {
		t.Error("Set did not mark the scene dirty")
	}
}

func TestBatch_CoalescesToFinalValue(t *testing.T) {
	s := testScene(t)
	st := NewStateFor(s, 0)

	var seen []int
	st.Bind(func(v int) { seen = append(seen, v) })

	s.Batch(func() {
		st.Set(1)
		st.Set(2)
		st.Set(3)
	})

	// One deferred execution, with the final value.
	if diff := cmp.Diff([]int{3}, seen); diff != "" {
		t.Errorf("batched binding values mismatch (-want +got):\n%s", diff)
	}
	if got := st.Get(); got != 3 {
		t.Errorf("value after batch = %d, want 3", got)
	}
}

func TestBatch_FirstTriggerOrder(t *testing.T) {
	s := testScene(t)
	a := NewStateFor(s, 0)
	b := NewStateFor(s, 0)

	var order []string
	a.Bind(func(v int) { order = append(order, "a") })
	b.Bind(func(v int) { order = append(order, "b") })

	s.Batch(func() {
		b.Set(1) // b triggers first
		a.Set(1)
		b.Set(2) // re-trigger must not move b later
	})

	want := []string{"b", "a"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("batch flush order mismatch (-want +got):\n%s", diff)
	}
}

func TestBatch_NestedFlushesOnOutermost(t *testing.T) {
	s := testScene(t)
	st := NewStateFor(s, 0)

	var seen []int
	st.Bind(func(v int) { seen = append(seen, v) })

	s.Batch(func() {
		st.Set(1)
		s.Batch(func() {
			st.Set(2)
		})
		if len(seen) != 0 {
			t.Error("inner batch flushed before outermost completion")
		}
	})

	if diff := cmp.Diff([]int{2}, seen); diff != "" {
		t.Errorf("nested batch values mismatch (-want +got):\n%s", diff)
	}
}

func TestBatch_CleansUpOnPanic(t *testing.T) {
	s := testScene(t)
	st := NewStateFor(s, 0)

	func() {
		defer func() { recover() }()
		s.Batch(func() {
			st.Set(1)
			panic("boom")
		})
	}()

	// Batching state is reset: a plain Set runs bindings immediately.
	calls := 0
	st.Bind(func(int) { calls++ })
	st.Set(2)
	if calls != 1 {
		t.Errorf("binding ran %d times after recovered panic, want 1", calls)
	}
}
