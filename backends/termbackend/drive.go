package termbackend

import (
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"

	"github.com/trellisui/trellis"
)

// Drive owns the terminal for the scene's lifetime: it enters raw mode and
// the alternate screen, forwards keys and window resizes onto the scene's
// UI goroutine, and presents a frame after every pump. It returns when the
// scene stops (Ctrl+C included) with the terminal restored.
func Drive(s *trellis.Scene) error {
	b, ok := s.Backend().(*Backend)
	if !ok {
		panic("termbackend: Drive requires a termbackend scene")
	}

	if err := b.term.EnterRawMode(); err != nil {
		return err
	}
	b.term.EnterAltScreen()
	b.term.HideCursor()
	b.term.Clear()
	defer func() {
		b.term.ShowCursor()
		b.term.ExitAltScreen()
		b.term.ExitRawMode()
	}()

	stop := make(chan struct{})
	defer close(stop)

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, unix.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for {
			select {
			case <-winch:
				if b.changeHandler != nil {
					b.changeHandler()
				}
			case <-stop:
				return
			}
		}
	}()

	keys := make(chan key, 16)
	if b.in != nil {
		go readKeys(b.in, keys, stop)
	}

	frame := time.NewTicker(time.Second / 30)
	defer frame.Stop()

	for !s.Stopped() {
		select {
		case k := <-keys:
			if k.kind == keyCtrlC {
				s.Stop()
				continue
			}
			s.Dispatch(func() {
				if b.handleKey(k) {
					s.MarkDirty()
				}
			})
		case <-frame.C:
			s.Pump()
			b.Present()
		}
	}
	return nil
}
