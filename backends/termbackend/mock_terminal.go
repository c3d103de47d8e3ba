package termbackend

// mockTerminal is an in-memory terminal for tests. It applies flushed
// changes to a screen grid instead of emitting escape sequences.
type mockTerminal struct {
	width, height int
	screen        *Buffer

	flushes      int
	rawMode      bool
	altScreen    bool
	cursorHidden bool
}

var _ terminal = (*mockTerminal)(nil)

func newMockTerminal(width, height int) *mockTerminal {
	return &mockTerminal{
		width:  width,
		height: height,
		screen: NewBuffer(width, height),
	}
}

func (m *mockTerminal) Size() (int, int) { return m.width, m.height }

func (m *mockTerminal) Flush(changes []CellChange) {
	m.flushes++
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		m.screen.Set(ch.X, ch.Y, ch.Cell)
	}
}

func (m *mockTerminal) Clear() {
	m.screen = NewBuffer(m.width, m.height)
}

func (m *mockTerminal) HideCursor()          { m.cursorHidden = true }
func (m *mockTerminal) ShowCursor()          { m.cursorHidden = false }
func (m *mockTerminal) EnterRawMode() error  { m.rawMode = true; return nil }
func (m *mockTerminal) ExitRawMode() error   { m.rawMode = false; return nil }
func (m *mockTerminal) EnterAltScreen()      { m.altScreen = true }
func (m *mockTerminal) ExitAltScreen()       { m.altScreen = false }

// Line returns the text content of row y with trailing spaces trimmed.
func (m *mockTerminal) Line(y int) string {
	var runes []rune
	for x := 0; x < m.width; x++ {
		c := m.screen.At(x, y)
		if c.IsContinuation() {
			continue
		}
		if c.Rune == 0 {
			runes = append(runes, ' ')
			continue
		}
		runes = append(runes, c.Rune)
	}
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return string(runes[:end])
}
