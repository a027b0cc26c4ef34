package game

import (
	"math"

	"github.com/iburimskiy/valentine/internal/card"
	"github.com/iburimskiy/valentine/internal/config"
)

const (
	ornamentSize = 44.0
	gapSmall     = 12.0
	gapLarge     = 24.0
)

// sceneLayout is where the current scene's pieces go this frame.
type sceneLayout struct {
	panel    rect
	envelope rect
	ornament point
	cursor   float64 // first free y inside the panel, below the ornament

	heading []string
	body    [][]string // paragraphs of wrapped lines
	bodyTop float64
	bodyBot float64

	scrollMax float64
}

// relayout positions the panel and buttons for the current scene and size.
func (g *Game) relayout() {
	w, h := float64(g.width), float64(g.height)
	pw := math.Min(config.CardMaxWidth, w-40)
	inner := pw - 2*config.CardPadding
	lift := g.fx.revealOffset()

	for _, b := range []*button{&g.open, &g.next, &g.accept, &g.decline} {
		b.hidden = true
	}
	l := sceneLayout{}

	switch g.scene {
	case card.Envelope:
		ew := math.Min(360, w-80)
		eh := ew * 0.62
		stack := eh + gapLarge + lineHeight(textTitle) + gapSmall + lineHeight(textBody) + gapLarge + config.ButtonHeight
		top := (h-stack)/2 + 20*(1-g.fx.fadeUp.value)
		l.envelope = rect{x: (w - ew) / 2, y: top, w: ew, h: eh}
		l.cursor = top + eh + gapLarge

		bw, _ := g.open.size()
		g.open.place((w-bw)/2, l.cursor+lineHeight(textTitle)+gapSmall+lineHeight(textBody)+gapLarge)
		g.open.hidden = false

	case card.Letter:
		l.panel = rect{x: (w - pw) / 2, y: 40 + lift, w: pw, h: h - 80}
		l.ornament = point{l.panel.centerX(), l.panel.y + config.CardPadding + lineHeight(textBody) + gapSmall + ornamentSize/2}
		l.heading = wrapText(g.cfg.Copy.Greeting, inner, textHeading)
		l.bodyTop = l.ornament.y + ornamentSize/2 + gapSmall + float64(len(l.heading))*lineHeight(textHeading) + gapLarge
		l.bodyBot = l.panel.y + l.panel.h - config.CardPadding - config.ButtonHeight - gapLarge

		content := 0.0
		for _, para := range g.cfg.Copy.Letter {
			lines := wrapText(para, inner, textBody)
			l.body = append(l.body, lines)
			content += float64(len(lines))*config.LetterLineHeight + gapSmall
		}
		l.scrollMax = math.Max(0, content-(l.bodyBot-l.bodyTop))

		bw, _ := g.next.size()
		g.next.place(l.panel.centerX()-bw/2, l.panel.y+l.panel.h-config.CardPadding-config.ButtonHeight)
		g.next.hidden = false

	case card.Proposal:
		l.heading = wrapText(g.cfg.Copy.Question, inner, textHeading)
		plea := wrapText(g.cfg.Copy.Plea, inner, textBody)
		l.body = [][]string{plea}
		ph := 2*config.CardPadding + ornamentSize + gapLarge +
			float64(len(l.heading))*lineHeight(textHeading) + gapLarge +
			float64(len(plea))*config.LetterLineHeight + gapLarge + config.ButtonHeight
		l.panel = rect{x: (w - pw) / 2, y: (h-ph)/2 + lift, w: pw, h: ph}
		l.ornament = point{l.panel.centerX(), l.panel.y + config.CardPadding + ornamentSize/2}
		l.bodyTop = l.ornament.y + ornamentSize/2 + gapLarge + float64(len(l.heading))*lineHeight(textHeading) + gapLarge

		g.decline.label = g.ctrl.Taunt()
		aw, _ := g.accept.size()
		dw, _ := g.decline.size()
		rowY := l.panel.y + l.panel.h - config.CardPadding - config.ButtonHeight
		ev := g.ctrl.Evasion()
		if ev.Escaped() {
			g.accept.place(l.panel.centerX()-aw/2, rowY)
			g.decline.place(ev.EscapePosition.X, ev.EscapePosition.Y)
		} else {
			rowX := l.panel.centerX() - (aw+config.ButtonGap+dw)/2
			g.accept.place(rowX, rowY)
			g.decline.place(rowX+aw+config.ButtonGap, rowY)
		}
		g.accept.scale = g.fx.pulseScale()
		if g.accept.hover {
			g.accept.scale = 1.05
		}
		g.decline.scale = g.fx.bounceScale()
		g.accept.hidden, g.decline.hidden = false, false

	case card.Celebrated:
		l.heading = wrapText(g.cfg.Copy.CelebrationTitle, inner, textHeading)
		ph := 2*config.CardPadding + ornamentSize + gapLarge +
			float64(len(l.heading))*lineHeight(textHeading) + gapLarge +
			config.LetterLineHeight + gapSmall + config.LetterLineHeight
		s := g.fx.revealScale()
		l.panel = rect{w: pw * s, h: ph * s}
		l.panel.x = (w - l.panel.w) / 2
		l.panel.y = (h-l.panel.h)/2 + lift
		l.ornament = point{l.panel.centerX(), l.panel.y + config.CardPadding + ornamentSize/2}
		l.bodyTop = l.ornament.y + ornamentSize/2 + gapLarge + float64(len(l.heading))*lineHeight(textHeading) + gapLarge
	}

	g.layout = l
	if g.scroll > l.scrollMax {
		g.scroll = l.scrollMax
	}
}
