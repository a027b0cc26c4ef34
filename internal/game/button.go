package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/valentine/internal/config"
)

type buttonStyle int

const (
	stylePrimary buttonStyle = iota
	styleOutline
)

// button is a pill-shaped clickable label. A click is a press and release
// that both happen while the cursor is over the button.
type button struct {
	label  string
	style  buttonStyle
	rect   rect
	scale  float64 // visual scale around the centre; hit area is unscaled
	minW   float64
	hover  bool
	press  bool
	hidden bool
}

// size measures the button for its current label.
func (b *button) size() (w, h float64) {
	w = textWidth(b.label, textButton) + 2*config.ButtonPaddingX
	if w < b.minW {
		w = b.minW
	}
	return w, config.ButtonHeight
}

// place sets the top-left corner of the button.
func (b *button) place(x, y float64) {
	w, h := b.size()
	b.rect = rect{x: x, y: y, w: w, h: h}
}

// update tracks hover and press state and reports a completed click.
func (b *button) update(mx, my float64, justPressed, justReleased bool) bool {
	if b.hidden {
		b.hover, b.press = false, false
		return false
	}
	b.hover = b.rect.contains(mx, my)
	if b.hover && justPressed {
		b.press = true
	}
	clicked := false
	if justReleased {
		clicked = b.press && b.hover
		b.press = false
	}
	return clicked
}

func (b *button) draw(dst *ebiten.Image, alpha float64) {
	if b.hidden {
		return
	}
	scale := b.scale
	if scale == 0 {
		scale = 1
	}
	w, h := b.rect.w*scale, b.rect.h*scale
	x, y := b.rect.centerX()-w/2, b.rect.centerY()-h/2
	if b.hover && !b.press && b.style == stylePrimary {
		y -= 2
	}

	var fill, border, ink color.RGBA
	switch b.style {
	case stylePrimary:
		switch {
		case b.press:
			fill = colorButtonPressed
		case b.hover:
			fill = colorButtonHover
		default:
			fill = colorButton
		}
		border, ink = colorButtonBorder, colorButtonText
	case styleOutline:
		fill = color.RGBA{}
		if b.hover {
			fill = color.RGBA{R: 255, G: 255, B: 255, A: 90}
		}
		border, ink = colorDeclineBorder, colorDecline
	}

	drawPill(dst, x, y, w, h, withAlpha(fill, alpha), withAlpha(border, alpha))
	ts := textButton * scale
	drawText(dst, b.label, x+w/2, y+(h-lineHeight(ts))/2, ts, withAlpha(ink, alpha), text.AlignCenter)
}

// drawPill fills a fully rounded rectangle and strokes its outline.
func drawPill(dst *ebiten.Image, x, y, w, h float64, fill, border color.RGBA) {
	r := h / 2
	if fill.A > 0 {
		vector.DrawFilledRect(dst, float32(x+r), float32(y), float32(w-2*r), float32(h), fill, true)
		vector.DrawFilledCircle(dst, float32(x+r), float32(y+r), float32(r), fill, true)
		vector.DrawFilledCircle(dst, float32(x+w-r), float32(y+r), float32(r), fill, true)
	}
	if border.A > 0 {
		var path vector.Path
		path.MoveTo(float32(x+r), float32(y))
		path.LineTo(float32(x+w-r), float32(y))
		path.Arc(float32(x+w-r), float32(y+r), float32(r), -math.Pi/2, math.Pi/2, vector.Clockwise)
		path.LineTo(float32(x+r), float32(y+h))
		path.Arc(float32(x+r), float32(y+r), float32(r), math.Pi/2, 3*math.Pi/2, vector.Clockwise)
		path.Close()
		strokePath(dst, &path, 1, border)
	}
}

// strokePath strokes path with the given width.
func strokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
