package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/valentine/internal/config"
)

func (g *Game) drawEnvelope(screen *ebiten.Image) {
	l := g.layout
	e := l.envelope
	alpha := g.fx.fadeUp.value
	w := float64(g.width)

	vector.DrawFilledRect(screen, float32(e.x), float32(e.y), float32(e.w), float32(e.h), withAlpha(colorEnvelope, alpha), true)
	vector.StrokeRect(screen, float32(e.x), float32(e.y), float32(e.w), float32(e.h), 1, withAlpha(colorPanelBorder, alpha), true)

	// side folds, then the lid; the lid lifts while the button is hovered
	fold := withAlpha(mix(colorEnvelope, colorEnvelopeLid, 0.5), alpha)
	fillConvex(screen, []point{{e.x, e.y + e.h}, {e.centerX(), e.y + e.h*0.5}, {e.x + e.w, e.y + e.h}}, fold)
	lid := e.y + e.h*0.55
	if g.open.hover {
		lid = e.y + e.h*0.45
	}
	fillConvex(screen, []point{{e.x, e.y}, {e.x + e.w, e.y}, {e.centerX(), lid}}, withAlpha(colorEnvelopeLid, alpha))

	drawHeart(screen, e.centerX(), lid+g.fx.floatOffset()*0.3, e.w*0.14, withAlpha(colorSeal, alpha))

	y := l.cursor
	drawShimmer(screen, g.cfg.Copy.EnvelopeTitle, w/2, y, textTitle, g.fx.shimmer.value, alpha)
	y += lineHeight(textTitle) + gapSmall
	drawText(screen, g.cfg.Copy.EnvelopeHint, w/2, y, textBody, withAlpha(colorInkSoft, alpha), text.AlignCenter)

	g.open.draw(screen, alpha)
}

func (g *Game) drawLetter(screen *ebiten.Image) {
	l := g.layout
	alpha := g.fx.reveal.value
	g.drawPanel(screen, l.panel, alpha, 0)

	cx := l.panel.centerX()
	drawText(screen, g.cfg.Copy.LetterHeader, cx, l.panel.y+config.CardPadding, textBody, withAlpha(colorInkSoft, alpha), text.AlignCenter)
	g.drawOrnament(screen, func(x, y float64) {
		drawRose(screen, x, y, ornamentSize, withAlpha(symbolColors[5], alpha))
	})

	y := l.ornament.y + ornamentSize/2 + gapSmall
	for _, line := range l.heading {
		drawShimmer(screen, line, cx, y, textHeading, g.fx.shimmer.value, alpha)
		y += lineHeight(textHeading)
	}

	clip := image.Rect(int(l.panel.x), int(l.bodyTop), int(l.panel.x+l.panel.w), int(l.bodyBot))
	body := screen.SubImage(clip).(*ebiten.Image)
	y = l.bodyTop - g.scroll
	left := l.panel.x + config.CardPadding
	for _, para := range l.body {
		for _, line := range para {
			drawText(body, line, left, y, textBody, withAlpha(colorInk, alpha), text.AlignStart)
			y += config.LetterLineHeight
		}
		y += gapSmall
	}
	if l.scrollMax > 0 {
		g.drawScrollbar(screen, l)
	}

	g.next.draw(screen, alpha)
}

func (g *Game) drawScrollbar(screen *ebiten.Image, l sceneLayout) {
	track := l.bodyBot - l.bodyTop
	thumb := track * track / (track + l.scrollMax)
	pos := (track - thumb) * g.scroll / l.scrollMax
	x := l.panel.x + l.panel.w - config.CardPadding/2
	vector.StrokeLine(screen, float32(x), float32(l.bodyTop), float32(x), float32(l.bodyBot), 2, withAlpha(colorPanelBorder, 0.4), true)
	vector.StrokeLine(screen, float32(x), float32(l.bodyTop+pos), float32(x), float32(l.bodyTop+pos+thumb), 3, colorPanelBorder, true)
}

func (g *Game) drawProposal(screen *ebiten.Image) {
	l := g.layout
	alpha := g.fx.reveal.value
	g.drawPanel(screen, l.panel, alpha, 0)
	cx := l.panel.centerX()

	g.drawOrnament(screen, func(x, y float64) {
		drawRing(screen, x, y, ornamentSize)
	})

	y := l.ornament.y + ornamentSize/2 + gapLarge
	for _, line := range l.heading {
		drawShimmer(screen, line, cx, y, textHeading, g.fx.shimmer.value, alpha)
		y += lineHeight(textHeading)
	}
	y = l.bodyTop
	for _, line := range l.body[0] {
		drawText(screen, line, cx, y, textBody, withAlpha(colorInkSoft, alpha), text.AlignCenter)
		y += config.LetterLineHeight
	}

	g.accept.draw(screen, alpha)
	g.decline.draw(screen, alpha)
}

func (g *Game) drawCelebrated(screen *ebiten.Image) {
	l := g.layout
	alpha := g.fx.reveal.value
	glow := g.fx.glow.value + 0.5*g.level
	g.drawPanel(screen, l.panel, alpha, glow)
	cx := l.panel.centerX()

	g.drawOrnament(screen, func(x, y float64) {
		// bouquet
		drawRose(screen, x-ornamentSize*0.3, y+4, ornamentSize*0.7, withAlpha(symbolColors[5], alpha))
		drawRose(screen, x+ornamentSize*0.3, y+4, ornamentSize*0.7, withAlpha(symbolColors[2], alpha))
		drawRose(screen, x, y-6, ornamentSize*0.75, withAlpha(symbolColors[0], alpha))
	})

	y := l.ornament.y + ornamentSize/2 + gapLarge
	for _, line := range l.heading {
		drawShimmer(screen, line, cx, y, textHeading, g.fx.shimmer.value, alpha)
		y += lineHeight(textHeading)
	}
	y = l.bodyTop
	drawText(screen, g.cfg.Copy.CelebrationLine, cx, y, textBody, withAlpha(colorInk, alpha), text.AlignCenter)
	y += config.LetterLineHeight + gapSmall
	drawText(screen, "* "+g.cfg.Copy.SignOff+" *", cx, y, textBody, withAlpha(colorInkSoft, alpha), text.AlignCenter)
}

// drawOrnament draws the floating decoration above the heading.
func (g *Game) drawOrnament(screen *ebiten.Image, draw func(x, y float64)) {
	draw(g.layout.ornament.x, g.layout.ornament.y+g.fx.floatOffset())
}

// drawPanel draws the card surface with corner accents. glow in [0, 1.5]
// adds a soft halo.
func (g *Game) drawPanel(screen *ebiten.Image, r rect, alpha, glow float64) {
	if glow > 0 {
		halo := g.glowColor()
		for i := 1; i <= 4; i++ {
			pad := float64(i) * (6 + 4*glow)
			a := alpha * (0.18 + 0.12*glow) / float64(i)
			vector.StrokeRect(screen, float32(r.x-pad), float32(r.y-pad), float32(r.w+2*pad), float32(r.h+2*pad),
				float32(4+2*glow), withAlpha(halo, a), true)
		}
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), withAlpha(colorPanel, alpha), true)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, withAlpha(colorPanelBorder, alpha), true)

	const inset, arm = 12.0, 22.0
	corner := withAlpha(colorPanelBorder, alpha)
	for _, c := range [][4]float64{
		{r.x + inset, r.y + inset, 1, 1},
		{r.x + r.w - inset, r.y + inset, -1, 1},
		{r.x + inset, r.y + r.h - inset, 1, -1},
		{r.x + r.w - inset, r.y + r.h - inset, -1, -1},
	} {
		vector.StrokeLine(screen, float32(c[0]), float32(c[1]), float32(c[0]+arm*c[2]), float32(c[1]), 1.5, corner, true)
		vector.StrokeLine(screen, float32(c[0]), float32(c[1]), float32(c[0]), float32(c[1]+arm*c[3]), 1.5, corner, true)
	}
}

// glowColor drifts through the pinks with the shimmer and saturates with the
// soundtrack level.
func (g *Game) glowColor() color.RGBA {
	r, gr, b := hsvToRgb(330+30*g.fx.shimmer.value, 0.4+0.3*g.level, 1)
	return color.RGBA{R: r, G: gr, B: b, A: 255}
}

func (g *Game) drawPetals(screen *ebiten.Image) {
	w, h := float64(g.width), float64(g.height)
	for _, p := range g.ctrl.Petals() {
		f := petalAt(p, g.time, w, h)
		if !f.visible {
			continue
		}
		drawPetal(screen, f.x, f.y, p.Size, f.rotation, f.alpha)
	}
}

// drawBursts draws the celebration burst and, while the gate is open, the
// accept-triggered burst on top.
func (g *Game) drawBursts(screen *ebiten.Image) {
	cx, cy := float64(g.width)/2, float64(g.height)/2
	elapsed := g.sinceAccept()

	for _, bp := range g.ctrl.CelebrationBurst() {
		if f := burstAt(bp, elapsed, cx, cy); f.visible {
			drawSymbol(screen, bp.SymbolIndex, f.x, f.y, bp.FontSize*f.scale, f.alpha)
		}
	}
	if particles, active := g.ctrl.Burst(); active {
		for _, bp := range particles {
			if f := burstAt(bp, elapsed, cx, cy); f.visible {
				drawSymbol(screen, bp.SymbolIndex, f.x, f.y, bp.FontSize*f.scale, f.alpha)
			}
		}
	}
}

// background caches the gradient and dot grid for the current window size.
type background struct {
	img  *ebiten.Image
	w, h int
}

func (b *background) draw(screen *ebiten.Image, w, h int) {
	if b.img == nil || b.w != w || b.h != h {
		b.render(w, h)
	}
	screen.DrawImage(b.img, nil)
}

func (b *background) render(w, h int) {
	if b.img != nil {
		b.img.Deallocate()
	}
	b.img = ebiten.NewImage(w, h)
	b.w, b.h = w, h

	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		var c color.RGBA
		if t < 0.45 {
			c = mix(colorBgTop, colorBgMid, t/0.45)
		} else {
			c = mix(colorBgMid, colorBgBottom, (t-0.45)/0.55)
		}
		vector.DrawFilledRect(b.img, 0, float32(y), float32(w), 1, c, false)
	}
	for y := 16; y < h; y += 32 {
		for x := 16; x < w; x += 32 {
			vector.DrawFilledCircle(b.img, float32(x), float32(y), 1, colorDot, true)
		}
	}
}
