package trellis

import "testing"

func TestNewScene_Validation(t *testing.T) {
	b := NewMockBackend(800, 600)
	if _, err := NewScene(nil, func() View { return EmptyView{} }); err == nil {
		t.Error("NewScene(nil backend) succeeded, want error")
	}
	if _, err := NewScene(b, nil); err == nil {
		t.Error("NewScene(nil body) succeeded, want error")
	}
}

func TestScene_FirstPumpRendersRoot(t *testing.T) {
	b := NewMockBackend(800, 600)
	s, err := NewScene(b, func() View { return Text{Content: "hi"} })
	if err != nil {
		t.Fatal(err)
	}

	s.Pump()
	root := b.Root()
	if root == nil {
		t.Fatal("no root widget installed after first pump")
	}
	if root.Kind != "text" || root.Text != "hi" {
		t.Errorf("root widget = %+v, want a committed text view", root)
	}
}

func TestScene_DirtyTriggersCoalesce(t *testing.T) {
	b := NewMockBackend(800, 600)
	bodies := 0
	s, err := NewScene(b, func() View { bodies++; return EmptyView{} })
	if err != nil {
		t.Fatal(err)
	}

	s.MarkDirty()
	s.MarkDirty()
	s.Pump()
	if bodies != 1 {
		t.Errorf("body evaluated %d times, want 1 (rapid triggers coalesce)", bodies)
	}

	// A clean pump does nothing.
	s.Pump()
	if bodies != 1 {
		t.Errorf("body evaluated %d times after clean pump, want still 1", bodies)
	}
}

func TestScene_StateChangeRerenders(t *testing.T) {
	b := NewMockBackend(800, 600)
	var count *State[int]
	s, err := NewScene(b, func() View {
		return Text{Content: string(rune('0' + count.Get()))}
	})
	if err != nil {
		t.Fatal(err)
	}
	count = NewStateFor(s, 1)

	s.Pump()
	if got := b.Root().Text; got != "1" {
		t.Fatalf("initial render = %q, want %q", got, "1")
	}

	count.Set(2)
	s.Pump()
	if got := b.Root().Text; got != "2" {
		t.Errorf("render after state change = %q, want %q", got, "2")
	}
	// Widget identity survived: same kind at the root.
	if got := b.CreateCount("text"); got != 1 {
		t.Errorf("text widgets created = %d, want 1", got)
	}
}

func TestScene_DispatchMarshalsOntoPump(t *testing.T) {
	b := NewMockBackend(800, 600)
	s, err := NewScene(b, func() View { return EmptyView{} })
	if err != nil {
		t.Fatal(err)
	}
	s.Pump()

	ran := false
	done := make(chan struct{})
	go func() {
		s.Dispatch(func() { ran = true })
		close(done)
	}()
	<-done
	s.Pump()
	if !ran {
		t.Error("dispatched work did not run on pump")
	}
}

func TestScene_ResizeReproposesViewport(t *testing.T) {
	b := NewMockBackend(800, 600)
	var proposals []Proposal
	s, err := NewScene(b, func() View {
		return proposalProbe{w: 10, h: 10, got: &proposals}
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Pump()

	b.Resize(400, 300)
	s.Pump()

	if len(proposals) < 2 {
		t.Fatalf("root laid out %d times, want at least 2", len(proposals))
	}
	last := proposals[len(proposals)-1]
	got := Size{W: last.Width.Resolve(0), H: last.Height.Resolve(0)}
	if got != (Size{W: 400, H: 300}) {
		t.Errorf("post-resize proposal = %+v, want the new 400x300 viewport", got)
	}
}

func TestScene_RootKindSwitchReplacesTree(t *testing.T) {
	b := NewMockBackend(800, 600)
	showText := true
	s, err := NewScene(b, func() View {
		if showText {
			return Text{Content: "hi"}
		}
		return Button{Label: "hi"}
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Pump()
	textWidget := b.Root()

	showText = false
	s.MarkDirty()
	s.Pump()

	if b.Root().Kind != "button" {
		t.Errorf("root kind = %q, want %q", b.Root().Kind, "button")
	}
	if !textWidget.Destroyed {
		t.Error("old root widget was not destroyed")
	}
}

func TestScene_StopIsIdempotentAndUnblocksRun(t *testing.T) {
	b := NewMockBackend(800, 600)
	s, err := NewScene(b, func() View { return EmptyView{} })
	if err != nil {
		t.Fatal(err)
	}
	s.Stop()
	s.Stop()
	if err := s.Run(); err != nil {
		t.Errorf("Run after Stop = %v, want nil", err)
	}
}

func TestScene_TeardownFiresCleanups(t *testing.T) {
	b := NewMockBackend(800, 600)
	fired := false
	s, err := NewScene(b, func() View {
		return OnDisappear{Content: Text{Content: "x"}, Perform: func() { fired = true }}
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Pump()
	s.Teardown()
	if !fired {
		t.Error("disappear cleanup did not fire on scene teardown")
	}
}
