package ebitenbackend

import (
	"image"
	imagecolor "image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trellisui/trellis"
)

// texture is the lazily uploaded GPU copy of an image widget's source.
// It lives on the widget so Destroy drops it with the node.
func dropTexture(w *widget) {
	if w.tex != nil {
		w.tex.Deallocate()
		w.tex = nil
	}
}

func toNRGBA(c trellis.Color) imagecolor.NRGBA {
	return imagecolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// draw paints the widget tree onto the frame.
func (b *Backend) draw(screen *ebiten.Image) {
	if b.scheme == trellis.DarkScheme {
		screen.Fill(imagecolor.NRGBA{R: 24, G: 24, B: 28, A: 255})
	} else {
		screen.Fill(imagecolor.NRGBA{R: 246, G: 246, B: 248, A: 255})
	}
	if b.root != nil {
		b.drawWidget(screen, b.root, trellis.Point{})
	}
}

func (b *Backend) drawWidget(dst *ebiten.Image, w *widget, origin trellis.Point) {
	if w.destroyed || w.size.W <= 0 || w.size.H <= 0 {
		if w.kind == kindContainer {
			// Zero-sized containers still position their children.
			b.drawChildren(dst, w, origin)
		}
		return
	}
	x0, y0, x1, y1 := absRect(w, origin)

	switch w.kind {
	case kindText:
		b.drawText(dst, w, x0, y0)
	case kindButton:
		b.drawButton(dst, w, x0, y0)
	case kindTextField:
		b.drawTextField(dst, w, x0, y0)
	case kindPicker:
		b.drawPicker(dst, w, x0, y0)
	case kindImage:
		b.drawImage(dst, w, x0, y0)
	case kindPath:
		b.drawPath(dst, w, x0, y0)
	case kindScroll:
		b.drawScroll(dst, w, x0, y0, x1, y1)
		return
	case kindList:
		b.drawList(dst, w, x0, y0)
		return
	}
	b.drawChildren(dst, w, origin)
}

func (b *Backend) drawChildren(dst *ebiten.Image, w *widget, origin trellis.Point) {
	childOrigin := trellis.Point{X: origin.X + w.pos.X, Y: origin.Y + w.pos.Y}
	for _, c := range w.children {
		b.drawWidget(dst, c, childOrigin)
	}
}

func (b *Backend) drawText(dst *ebiten.Image, w *widget, x, y int) {
	face := b.fonts.face(w.font)
	_, lines := b.fonts.measure(w.text, w.font, w.size.W)
	lh := lineHeight(face)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x), float64(y)+lh*float64(i))
		op.ColorScale.ScaleWithColor(toNRGBA(w.fg))
		text.Draw(dst, line, face, op)
	}
}

func (b *Backend) drawButton(dst *ebiten.Image, w *widget, x, y int) {
	fill := w.tint
	if b.focus == w {
		fill = trellis.RGB(clampAdd(fill.R, 30), clampAdd(fill.G, 30), clampAdd(fill.B, 30))
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w.size.W), float32(w.size.H), toNRGBA(fill), true)
	b.drawCenteredLabel(dst, w.text, x, y, w, trellis.White)
}

func (b *Backend) drawTextField(dst *ebiten.Image, w *widget, x, y int) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w.size.W), float32(w.size.H), imagecolor.NRGBA{R: 255, G: 255, B: 255, A: 255}, true)
	border := imagecolor.NRGBA{R: 180, G: 180, B: 186, A: 255}
	if b.focus == w {
		border = toNRGBA(w.tint)
	}
	vector.StrokeRect(dst, float32(x), float32(y), float32(w.size.W), float32(w.size.H), 1, border, true)

	content := w.text
	fg := w.fg
	if content == "" {
		content = w.placeholder
		fg = trellis.RGB(150, 150, 156)
	}
	face := b.fonts.face(w.font)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x+8), float64(y)+(float64(w.size.H)-lineHeight(face))/2)
	op.ColorScale.ScaleWithColor(toNRGBA(fg))
	text.Draw(dst, content, face, op)
}

func (b *Backend) drawPicker(dst *ebiten.Image, w *widget, x, y int) {
	bg := imagecolor.NRGBA{R: 230, G: 230, B: 234, A: 255}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w.size.W), float32(w.size.H), bg, true)
	if b.focus == w {
		vector.StrokeRect(dst, float32(x), float32(y), float32(w.size.W), float32(w.size.H), 1, toNRGBA(w.tint), true)
	}
	current := ""
	if w.selected >= 0 && w.selected < len(w.options) {
		current = w.options[w.selected]
	}
	b.drawCenteredLabel(dst, current, x, y, w, w.fg)
}

func (b *Backend) drawCenteredLabel(dst *ebiten.Image, label string, x, y int, w *widget, fg trellis.Color) {
	face := b.fonts.face(w.font)
	lh := lineHeight(face)
	lw, _ := text.Measure(label, face, lh)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+(float64(w.size.W)-lw)/2, float64(y)+(float64(w.size.H)-lh)/2)
	op.ColorScale.ScaleWithColor(toNRGBA(fg))
	text.Draw(dst, label, face, op)
}

func (b *Backend) drawImage(dst *ebiten.Image, w *widget, x, y int) {
	if w.img == nil {
		return
	}
	if w.tex == nil {
		w.tex = ebiten.NewImageFromImage(w.img)
	}
	bounds := w.tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	if bounds.Dx() > 0 && bounds.Dy() > 0 {
		op.GeoM.Scale(float64(w.size.W)/float64(bounds.Dx()), float64(w.size.H)/float64(bounds.Dy()))
	}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(w.tex, op)
}

func (b *Backend) drawPath(dst *ebiten.Image, w *widget, x, y int) {
	if len(w.ops) == 0 {
		return
	}
	var path vector.Path
	for _, op := range w.ops {
		px := float32(x + op.To.X)
		py := float32(y + op.To.Y)
		switch op.Kind {
		case trellis.PathMoveTo:
			path.MoveTo(px, py)
		case trellis.PathLineTo:
			path.LineTo(px, py)
		case trellis.PathQuadTo:
			path.QuadTo(float32(x+op.Control.X), float32(y+op.Control.Y), px, py)
		case trellis.PathClose:
			path.Close()
		}
	}
	if w.fill.A > 0 {
		vector.DrawFilledPath(dst, &path, toNRGBA(w.fill), true, vector.FillRuleNonZero)
	}
	if w.stroke.A > 0 && w.strokeWidth > 0 {
		opts := &vector.StrokeOptions{Width: float32(w.strokeWidth)}
		vector.StrokePath(dst, &path, toNRGBA(w.stroke), true, opts)
	}
}

func (b *Backend) drawScroll(dst *ebiten.Image, w *widget, x0, y0, x1, y1 int) {
	sub := dst.SubImage(image.Rect(x0, y0, x1, y1)).(*ebiten.Image)
	b.drawChildren(sub, w, trellis.Point{X: x0 - w.pos.X - w.scrollX, Y: y0 - w.pos.Y - w.scrollY})

	thickness := float32(4)
	bar := imagecolor.NRGBA{R: 120, G: 120, B: 126, A: 180}
	if w.barV {
		vector.DrawFilledRect(dst, float32(x1)-thickness, float32(y0), thickness, float32(w.size.H), bar, true)
	}
	if w.barH {
		vector.DrawFilledRect(dst, float32(x0), float32(y1)-thickness, float32(w.size.W), thickness, bar, true)
	}
}

func (b *Backend) drawList(dst *ebiten.Image, w *widget, x0, y0 int) {
	if w.selectedRow >= 0 && w.selectedRow < len(w.children) {
		row := w.children[w.selectedRow]
		highlight := toNRGBA(w.tint)
		highlight.A = 60
		vector.DrawFilledRect(dst, float32(x0), float32(y0+row.pos.Y), float32(w.size.W), float32(row.size.H), highlight, true)
	}
	b.drawChildren(dst, w, trellis.Point{X: x0 - w.pos.X, Y: y0 - w.pos.Y})
}

func clampAdd(v uint8, d int) uint8 {
	n := int(v) + d
	if n > 255 {
		n = 255
	}
	return uint8(n)
}
