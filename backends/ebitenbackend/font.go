package ebitenbackend

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/trellisui/trellis"
)

// fontCache turns trellis font values into text/v2 faces backed by one
// TrueType source, caching per point size.
type fontCache struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newFontCache(ttfData []byte) (*fontCache, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("ebitenbackend: parsing font data: %w", err)
	}
	return &fontCache{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

func (c *fontCache) face(f trellis.Font) *text.GoTextFace {
	size := float64(f.Size)
	if size <= 0 {
		size = 14
	}
	if face, ok := c.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: c.source, Size: size}
	c.faces[size] = face
	return face
}

// lineHeight is the baseline-to-baseline distance of a face.
func lineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// measure returns the pixel size of s wrapped to proposedWidth, along with
// the wrapped lines for drawing. Unbounded means no wrap; zero or negative
// wraps at the widest single word.
func (c *fontCache) measure(s string, f trellis.Font, proposedWidth int) (trellis.Size, []string) {
	if s == "" {
		return trellis.Size{}, nil
	}
	face := c.face(f)
	lh := lineHeight(face)
	if proposedWidth == trellis.Unbounded {
		w, _ := text.Measure(s, face, lh)
		return trellis.Size{W: ceil(w), H: ceil(lh)}, []string{s}
	}
	if proposedWidth <= 0 {
		proposedWidth = c.widestWord(s, face)
	}
	lines := c.wrap(s, face, proposedWidth)
	width := 0.0
	for _, line := range lines {
		if w, _ := text.Measure(line, face, lh); w > width {
			width = w
		}
	}
	return trellis.Size{W: ceil(width), H: ceil(lh * float64(len(lines)))}, lines
}

func (c *fontCache) widestWord(s string, face *text.GoTextFace) int {
	max := 1.0
	for _, word := range strings.Fields(s) {
		if w, _ := text.Measure(word, face, 0); w > max {
			max = w
		}
	}
	return ceil(max)
}

// wrap greedily word-wraps s to width pixels under the face.
func (c *fontCache) wrap(s string, face *text.GoTextFace, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if w, _ := text.Measure(candidate, face, 0); ceil(w) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

func ceil(f float64) int {
	n := int(f)
	if float64(n) < f {
		n++
	}
	return n
}
