package termbackend

import (
	"io"
	"os"
)

// terminal abstracts the screen the backend flushes frames to, so tests can
// substitute an in-memory recorder.
type terminal interface {
	Size() (width, height int)
	Flush(changes []CellChange)
	Clear()
	HideCursor()
	ShowCursor()
	EnterRawMode() error
	ExitRawMode() error
	EnterAltScreen()
	ExitAltScreen()
}

// ansiTerminal drives a real terminal emulator with ANSI escape sequences.
type ansiTerminal struct {
	out       io.Writer
	in        io.Reader
	esc       *escBuilder
	inFd      uintptr
	outFd     uintptr
	lastStyle Style
	hasStyle  bool
	rawState  *rawModeState
}

func newANSITerminal(out io.Writer, in io.Reader) *ansiTerminal {
	t := &ansiTerminal{
		out: out,
		in:  in,
		esc: newEscBuilder(4096),
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = f.Fd()
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = f.Fd()
	}
	return t
}

// Size returns the terminal dimensions, defaulting to 80x24 when the
// window-size query fails.
func (t *ansiTerminal) Size() (width, height int) {
	w, h, err := getTerminalSize(int(t.outFd))
	if err != nil {
		return 80, 24
	}
	return w, h
}

// Flush writes the changed cells as one synchronized update, minimizing
// cursor moves for row-major runs and only re-emitting styles that differ
// from the previous cell.
func (t *ansiTerminal) Flush(changes []CellChange) {
	if len(changes) == 0 {
		return
	}
	t.esc.Reset()
	t.esc.BeginSyncUpdate()
	lastX, lastY := -1, -1
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		if ch.Y != lastY || ch.X != lastX+1 {
			t.esc.MoveTo(ch.X, ch.Y)
		}
		if !t.hasStyle || ch.Cell.Style != t.lastStyle {
			t.esc.SetStyle(ch.Cell.Style)
			t.lastStyle = ch.Cell.Style
			t.hasStyle = true
		}
		r := ch.Cell.Rune
		if r == 0 {
			r = ' '
		}
		t.esc.WriteRune(r)
		lastX = ch.X
		if ch.Cell.Width > 1 {
			lastX = ch.X + int(ch.Cell.Width) - 1
		}
		lastY = ch.Y
	}
	t.esc.EndSyncUpdate()
	t.out.Write(t.esc.Bytes())
}

func (t *ansiTerminal) Clear() {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.MoveTo(0, 0)
	t.esc.ClearScreen()
	t.out.Write(t.esc.Bytes())
	t.hasStyle = false
}

func (t *ansiTerminal) HideCursor() {
	t.esc.Reset()
	t.esc.HideCursor()
	t.out.Write(t.esc.Bytes())
}

func (t *ansiTerminal) ShowCursor() {
	t.esc.Reset()
	t.esc.ShowCursor()
	t.out.Write(t.esc.Bytes())
}

func (t *ansiTerminal) EnterRawMode() error {
	state, err := enableRawMode(int(t.inFd))
	if err != nil {
		return err
	}
	t.rawState = state
	return nil
}

func (t *ansiTerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := disableRawMode(int(t.inFd), t.rawState)
	t.rawState = nil
	return err
}

func (t *ansiTerminal) EnterAltScreen() {
	t.esc.Reset()
	t.esc.EnterAltScreen()
	t.out.Write(t.esc.Bytes())
}

func (t *ansiTerminal) ExitAltScreen() {
	t.esc.Reset()
	t.esc.ExitAltScreen()
	t.out.Write(t.esc.Bytes())
}
