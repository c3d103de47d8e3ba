package termbackend

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder builds ANSI escape sequences into a reusable buffer so a frame
// flush performs a single terminal write.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

func (e *escBuilder) Reset()        { e.buf = e.buf[:0] }
func (e *escBuilder) Bytes() []byte { return e.buf }

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo positions the cursor. x and y are 0-indexed; the wire format is
// 1-indexed.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

func (e *escBuilder) EnterAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'h')
}

func (e *escBuilder) ExitAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'l')
}

// BeginSyncUpdate starts a synchronized update block so the frame appears
// atomically. Terminals without DEC 2026 support ignore the sequence.
func (e *escBuilder) BeginSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'h')
}

func (e *escBuilder) EndSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'l')
}

func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetStyle emits the full style as one SGR sequence, starting from a reset
// so no attribute leaks from the previous cell.
func (e *escBuilder) SetStyle(s Style) {
	e.writeCSI()
	e.buf = append(e.buf, '0')
	if s.Has(AttrBold) {
		e.buf = append(e.buf, ';', '1')
	}
	if s.Has(AttrDim) {
		e.buf = append(e.buf, ';', '2')
	}
	if s.Has(AttrUnderline) {
		e.buf = append(e.buf, ';', '4')
	}
	if s.Has(AttrReverse) {
		e.buf = append(e.buf, ';', '7')
	}
	if s.Fg.A > 0 {
		e.appendRGB(38, s.Fg.R, s.Fg.G, s.Fg.B)
	}
	if s.Bg.A > 0 {
		e.appendRGB(48, s.Bg.R, s.Bg.G, s.Bg.B)
	}
	e.buf = append(e.buf, 'm')
}

func (e *escBuilder) appendRGB(base int, r, g, b uint8) {
	e.buf = append(e.buf, ';')
	e.writeInt(base)
	e.buf = append(e.buf, ';', '2', ';')
	e.writeInt(int(r))
	e.buf = append(e.buf, ';')
	e.writeInt(int(g))
	e.buf = append(e.buf, ';')
	e.writeInt(int(b))
}

func (e *escBuilder) WriteRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	e.buf = append(e.buf, buf[:n]...)
}
