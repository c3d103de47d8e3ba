package termbackend

import (
	"testing"

	"github.com/trellisui/trellis"
)

func TestBuffer_SetString(t *testing.T) {
	b := NewBuffer(20, 2)
	n := b.SetString(1, 0, "hi", Style{})
	if n != 2 {
		t.Errorf("columns consumed = %d, want 2", n)
	}
	if got := b.At(1, 0).Rune; got != 'h' {
		t.Errorf("cell (1,0) = %q, want 'h'", got)
	}
	if got := b.At(2, 0).Rune; got != 'i' {
		t.Errorf("cell (2,0) = %q, want 'i'", got)
	}
}

func TestBuffer_WideRunePlacesContinuation(t *testing.T) {
	b := NewBuffer(10, 1)
	n := b.SetString(0, 0, "你a", Style{})
	if n != 3 {
		t.Errorf("columns consumed = %d, want 3 (wide + narrow)", n)
	}
	if got := b.At(0, 0); got.Rune != '你' || got.Width != 2 {
		t.Errorf("primary cell = %+v, want wide 你", got)
	}
	if !b.At(1, 0).IsContinuation() {
		t.Error("cell behind wide rune is not a continuation")
	}
	if got := b.At(2, 0).Rune; got != 'a' {
		t.Errorf("cell after wide rune = %q, want 'a'", got)
	}
}

func TestBuffer_OutOfBoundsDropped(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Set(-1, 0, NewCell('x', Style{}))
	b.Set(0, 5, NewCell('x', Style{}))
	b.SetString(1, 1, "abc", Style{}) // only 'a' fits
	if got := b.At(1, 1).Rune; got != 'a' {
		t.Errorf("cell (1,1) = %q, want 'a'", got)
	}
}

func TestBuffer_Diff(t *testing.T) {
	prev := NewBuffer(4, 2)
	prev.Clear(Style{})
	next := NewBuffer(4, 2)
	next.Clear(Style{})
	next.SetString(0, 1, "ab", Style{})

	changes := next.Diff(prev)
	if len(changes) != 2 {
		t.Fatalf("changed cells = %d, want 2", len(changes))
	}
	if changes[0].X != 0 || changes[0].Y != 1 || changes[0].Cell.Rune != 'a' {
		t.Errorf("first change = %+v, want 'a' at (0,1)", changes[0])
	}

	// No change at all: empty diff.
	if got := next.Diff(next); len(got) != 0 {
		t.Errorf("self diff produced %d changes, want 0", len(got))
	}

	// A size change forces a full repaint.
	if got := next.Diff(NewBuffer(3, 2)); len(got) != 8 {
		t.Errorf("resized diff produced %d changes, want all 8 cells", len(got))
	}
}

func TestWrapText(t *testing.T) {
	type tc struct {
		text  string
		width int
		want  []string
	}
	tests := map[string]tc{
		"fits":         {text: "hello", width: 10, want: []string{"hello"}},
		"word wrap":    {text: "one two three", width: 7, want: []string{"one two", "three"}},
		"exact edge":   {text: "ab cd", width: 2, want: []string{"ab", "cd"}},
		"long word":    {text: "abcdef", width: 4, want: []string{"abcd", "ef"}},
		"newlines":     {text: "a\nb", width: 10, want: []string{"a", "b"}},
		"empty":        {text: "", width: 5, want: nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMeasureText(t *testing.T) {
	b := newWithTerminal(newMockTerminal(80, 24))
	font := trellis.Font{Name: "cell", Size: 1}

	type tc struct {
		text     string
		proposed int
		want     trellis.Size
	}
	tests := map[string]tc{
		"single line":   {text: "hello", proposed: trellis.Unbounded, want: trellis.Size{W: 5, H: 1}},
		"wide grapheme": {text: "你好", proposed: trellis.Unbounded, want: trellis.Size{W: 4, H: 1}},
		"wrapped":       {text: "one two three", proposed: 7, want: trellis.Size{W: 7, H: 2}},
		"narrowest":     {text: "one twelve", proposed: 0, want: trellis.Size{W: 6, H: 2}},
		"empty":         {text: "", proposed: 10, want: trellis.Size{}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := b.MeasureText(tt.text, font, tt.proposed)
			if got != tt.want {
				t.Errorf("MeasureText(%q, %d) = %+v, want %+v", tt.text, tt.proposed, got, tt.want)
			}
		})
	}
}
