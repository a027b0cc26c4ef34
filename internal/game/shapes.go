package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/valentine/internal/card"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type point struct{ x, y float64 }

// rotate turns p around the origin by a radians.
func (p point) rotate(a float64) point {
	s, c := math.Sincos(a)
	return point{p.x*c - p.y*s, p.x*s + p.y*c}
}

// fillConvex fills a convex polygon as a triangle fan.
func fillConvex(dst *ebiten.Image, pts []point, clr color.RGBA) {
	if len(pts) < 3 || clr.A == 0 {
		return
	}
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(p.x), DstY: float32(p.y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	is := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// ellipse returns an ellipse outline rotated by a radians around (cx, cy).
func ellipse(cx, cy, rx, ry, a float64, segments int) []point {
	pts := make([]point, segments)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(segments)
		p := point{rx * math.Cos(t), ry * math.Sin(t)}.rotate(a)
		pts[i] = point{cx + p.x, cy + p.y}
	}
	return pts
}

// drawPetal draws a rotated cherry-blossom petal of the given size.
func drawPetal(dst *ebiten.Image, cx, cy, size, rotation, alpha float64) {
	fillConvex(dst, ellipse(cx, cy, size/2, size/3.2, rotation, 16), withAlpha(colorPetal, alpha))
	tip := point{size / 2, 0}.rotate(rotation)
	vector.StrokeLine(dst, float32(cx), float32(cy), float32(cx+tip.x*0.7), float32(cy+tip.y*0.7),
		1, withAlpha(colorPetalEdge, alpha*0.6), true)
}

// drawHeart draws a heart whose bounding box is roughly size wide, centred
// on (cx, cy).
func drawHeart(dst *ebiten.Image, cx, cy, size float64, clr color.RGBA) {
	r := size / 4
	vector.DrawFilledCircle(dst, float32(cx-r), float32(cy-r*0.4), float32(r), clr, true)
	vector.DrawFilledCircle(dst, float32(cx+r), float32(cy-r*0.4), float32(r), clr, true)
	fillConvex(dst, []point{
		{cx - 2*r*0.97, cy - r*0.15},
		{cx + 2*r*0.97, cy - r*0.15},
		{cx, cy + 1.7*r},
	}, clr)
}

// drawSparkle draws a four-pointed star.
func drawSparkle(dst *ebiten.Image, cx, cy, size float64, clr color.RGBA) {
	r := size / 2
	w := r * 0.22
	fillConvex(dst, []point{{cx, cy - r}, {cx + w, cy}, {cx, cy + r}, {cx - w, cy}}, clr)
	fillConvex(dst, []point{{cx - r, cy}, {cx, cy - w}, {cx + r, cy}, {cx, cy + w}}, clr)
}

// drawRose draws a bloom on a short stem.
func drawRose(dst *ebiten.Image, cx, cy, size float64, clr color.RGBA) {
	r := size / 3
	vector.StrokeLine(dst, float32(cx), float32(cy+r*0.6), float32(cx), float32(cy+size/2+r), float32(math.Max(1, size/14)), withAlpha(colorLeaf, float64(clr.A)/255), true)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
	inner := mix(clr, color.RGBA{R: 120, G: 10, B: 40, A: clr.A}, 0.35)
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r*0.6), float32(math.Max(1, r/5)), inner, true)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r*0.25), inner, true)
}

// drawRing draws an engagement ring with a stone.
func drawRing(dst *ebiten.Image, cx, cy, size float64) {
	r := size / 3
	vector.StrokeCircle(dst, float32(cx), float32(cy+r*0.4), float32(r), float32(math.Max(2, size/12)), colorGold, true)
	drawSparkle(dst, cx, cy-r*0.9, size/2.2, color.RGBA{R: 200, G: 235, B: 255, A: 255})
}

// drawSymbol draws one burst glyph.
func drawSymbol(dst *ebiten.Image, s card.Symbol, cx, cy, size float64, alpha float64) {
	clr := withAlpha(symbolColors[int(s)%len(symbolColors)], alpha)
	switch s {
	case card.SymbolSparkle:
		drawSparkle(dst, cx, cy, size, clr)
	case card.SymbolRose:
		drawRose(dst, cx, cy, size, clr)
	case card.SymbolTwoHearts, card.SymbolRevolvingHearts:
		drawHeart(dst, cx-size*0.18, cy+size*0.1, size*0.7, clr)
		drawHeart(dst, cx+size*0.22, cy-size*0.2, size*0.5, clr)
	case card.SymbolGiftHeart:
		drawHeart(dst, cx, cy, size, clr)
		ribbon := withAlpha(colorGold, alpha)
		vector.StrokeLine(dst, float32(cx-size/2), float32(cy), float32(cx+size/2), float32(cy), float32(math.Max(1, size/10)), ribbon, true)
	case card.SymbolSparklingHeart:
		drawHeart(dst, cx, cy, size, clr)
		drawSparkle(dst, cx+size*0.35, cy-size*0.35, size*0.35, withAlpha(colorGold, alpha))
	default:
		drawHeart(dst, cx, cy, size, clr)
	}
}
