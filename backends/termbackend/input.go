package termbackend

import (
	"io"
	"unicode/utf8"
)

type keyKind uint8

const (
	keyRune keyKind = iota
	keyEnter
	keyTab
	keyBackTab
	keyUp
	keyDown
	keyLeft
	keyRight
	keyBackspace
	keyCtrlC
)

type key struct {
	kind keyKind
	r    rune
}

// readKeys reads raw-mode input and sends decoded keys until the reader
// fails or stop closes.
func readKeys(r io.Reader, keys chan<- key, stop <-chan struct{}) {
	buf := make([]byte, 0, 8)
	one := make([]byte, 1)
	for {
		n, err := r.Read(one)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		buf = append(buf, one[0])
		k, consumed, ok := parseKey(buf)
		if consumed > 0 {
			buf = buf[consumed:]
		}
		if !ok {
			continue
		}
		select {
		case keys <- k:
		case <-stop:
			return
		}
	}
}

// parseKey decodes one key from the front of buf. It returns the number of
// bytes consumed; zero with ok false means more bytes are needed.
func parseKey(buf []byte) (key, int, bool) {
	if len(buf) == 0 {
		return key{}, 0, false
	}
	switch buf[0] {
	case 0x03:
		return key{kind: keyCtrlC}, 1, true
	case '\r', '\n':
		return key{kind: keyEnter}, 1, true
	case '\t':
		return key{kind: keyTab}, 1, true
	case 0x7f, 0x08:
		return key{kind: keyBackspace}, 1, true
	case 0x1b:
		if len(buf) < 3 {
			return key{}, 0, false
		}
		if buf[1] == '[' {
			switch buf[2] {
			case 'A':
				return key{kind: keyUp}, 3, true
			case 'B':
				return key{kind: keyDown}, 3, true
			case 'C':
				return key{kind: keyRight}, 3, true
			case 'D':
				return key{kind: keyLeft}, 3, true
			case 'Z':
				return key{kind: keyBackTab}, 3, true
			}
		}
		// Unknown sequence: drop the escape and resync.
		return key{}, 1, false
	}
	if !utf8.FullRune(buf) {
		if len(buf) < utf8.UTFMax {
			return key{}, 0, false
		}
		return key{}, 1, false
	}
	r, n := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return key{}, n, false
	}
	return key{kind: keyRune, r: r}, n, true
}

// handleKey routes a key to the focused widget. It reports whether anything
// visible changed, so the caller can mark the scene dirty; callbacks that
// set reactive state mark it on their own.
func (b *Backend) handleKey(k key) bool {
	switch k.kind {
	case keyTab:
		return b.moveFocus(1)
	case keyBackTab:
		return b.moveFocus(-1)
	}

	f := b.focus
	if f == nil || f.destroyed {
		return false
	}
	switch f.kind {
	case kindButton:
		if k.kind == keyEnter && f.action != nil {
			f.action()
			return true
		}
	case kindTextField:
		switch k.kind {
		case keyRune:
			b.editField(f, f.text+string(k.r))
			return true
		case keyBackspace:
			if f.text != "" {
				runes := []rune(f.text)
				b.editField(f, string(runes[:len(runes)-1]))
				return true
			}
		}
	case kindPicker:
		switch k.kind {
		case keyUp, keyLeft:
			return b.movePicker(f, -1)
		case keyDown, keyRight:
			return b.movePicker(f, 1)
		}
	case kindList:
		switch k.kind {
		case keyUp:
			return b.moveListSelection(f, -1)
		case keyDown:
			return b.moveListSelection(f, 1)
		case keyEnter:
			if f.onSelectRow != nil && f.selectedRow >= 0 {
				f.onSelectRow(f.selectedRow)
				return true
			}
		}
	}
	return false
}

func (b *Backend) editField(f *widget, text string) {
	f.text = text
	if f.onChangeText != nil {
		f.onChangeText(text)
	}
}

func (b *Backend) movePicker(f *widget, delta int) bool {
	if len(f.options) == 0 {
		return false
	}
	next := f.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(f.options) {
		next = len(f.options) - 1
	}
	if next == f.selected {
		return false
	}
	f.selected = next
	if f.onChangeOption != nil {
		f.onChangeOption(next)
	}
	return true
}

func (b *Backend) moveListSelection(f *widget, delta int) bool {
	if len(f.children) == 0 {
		return false
	}
	next := f.selectedRow + delta
	if next < 0 {
		next = 0
	}
	if next >= len(f.children) {
		next = len(f.children) - 1
	}
	if next == f.selectedRow {
		return false
	}
	f.selectedRow = next
	if f.onSelectRow != nil {
		f.onSelectRow(next)
	}
	return true
}

// moveFocus advances the Tab focus ring in paint order.
func (b *Backend) moveFocus(delta int) bool {
	ring := b.focusRing()
	if len(ring) == 0 {
		if b.focus != nil {
			b.focus = nil
			return true
		}
		return false
	}
	current := -1
	for i, w := range ring {
		if w == b.focus {
			current = i
			break
		}
	}
	next := current + delta
	switch {
	case next < 0:
		next = len(ring) - 1
	case next >= len(ring):
		next = 0
	}
	if ring[next] == b.focus {
		return false
	}
	b.focus = ring[next]
	return true
}

func (b *Backend) focusRing() []*widget {
	var ring []*widget
	var walk func(w *widget)
	walk = func(w *widget) {
		if w == nil || w.destroyed {
			return
		}
		if w.focusable() {
			ring = append(ring, w)
		}
		for _, c := range w.children {
			walk(c)
		}
	}
	walk(b.root)
	return ring
}
