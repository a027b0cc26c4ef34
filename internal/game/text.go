package game

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// Text sizes as integer scales of the bitmap face.
const (
	textBody    = 1.0
	textButton  = 1.5
	textHeading = 2.0
	textTitle   = 3.0
)

// textWidth returns the advance of s at scale.
func textWidth(s string, scale float64) float64 {
	return text.Advance(s, labelFace) * scale
}

// lineHeight returns the line height at scale.
func lineHeight(scale float64) float64 {
	m := labelFace.Metrics()
	return (m.HAscent + m.HDescent) * scale
}

// drawText draws s with its top edge at y. Horizontal alignment follows align.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterNearest
	text.Draw(dst, s, labelFace, op)
}

// drawShimmer draws s centred at cx, colouring each rune from a gradient
// that slides with phase in [0, 1).
func drawShimmer(dst *ebiten.Image, s string, cx, y, scale, phase, alpha float64) {
	x := cx - textWidth(s, scale)/2
	total := textWidth(s, scale)
	for _, r := range s {
		glyph := string(r)
		w := textWidth(glyph, scale)
		pos := 0.0
		if total > 0 {
			pos = (x - (cx - total/2)) / total
		}
		drawText(dst, glyph, x, y, scale, withAlpha(shimmerAt(pos*0.5+phase), alpha), text.AlignStart)
		x += w
	}
}

// shimmerAt samples the looping shimmer gradient at t.
func shimmerAt(t float64) color.RGBA {
	t -= float64(int(t))
	if t < 0 {
		t++
	}
	n := len(shimmerStops)
	f := t * float64(n)
	i := int(f) % n
	return mix(shimmerStops[i], shimmerStops[(i+1)%n], f-float64(int(f)))
}

// wrapText splits s into lines no wider than maxWidth at scale.
func wrapText(s string, maxWidth, scale float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var (
		lines []string
		cur   = words[0]
	)
	for _, w := range words[1:] {
		candidate := cur + " " + w
		if textWidth(candidate, scale) > maxWidth {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = candidate
	}
	return append(lines, cur)
}
