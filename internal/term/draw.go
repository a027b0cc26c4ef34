package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/valentine/internal/card"
	"github.com/iburimskiy/valentine/internal/config"
)

var (
	styleBase    = tcell.StyleDefault
	styleInk     = styleBase.Foreground(tcell.NewRGBColor(136, 19, 55))
	styleSoft    = styleBase.Foreground(tcell.NewRGBColor(190, 18, 60))
	styleTitle   = styleBase.Foreground(tcell.NewRGBColor(225, 29, 72)).Bold(true)
	stylePanel   = styleBase.Foreground(tcell.NewRGBColor(253, 164, 175))
	styleSeal    = styleBase.Foreground(tcell.NewRGBColor(225, 29, 72))
	styleAccept  = styleBase.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(225, 29, 72)).Bold(true)
	styleDecline = styleBase.Foreground(tcell.NewRGBColor(159, 18, 57))
	styleStatus  = styleBase.Foreground(tcell.ColorGray)
	stylePetal   = styleBase.Foreground(tcell.NewRGBColor(251, 113, 133))
	stylePetalLo = stylePetal.Dim(true)

	petalGlyphs = []rune{'❀', '✿', '❁'}

	// one glyph per card.Symbol
	symbolGlyphs = [card.SymbolCount]rune{'♥', '❤', '✦', '♡', '❣', '✿', '❀', '✧'}
	symbolStyles = [card.SymbolCount]tcell.Style{
		styleSeal,
		styleBase.Foreground(tcell.NewRGBColor(244, 63, 94)),
		styleBase.Foreground(tcell.NewRGBColor(251, 191, 36)),
		styleBase.Foreground(tcell.NewRGBColor(236, 72, 153)),
		styleBase.Foreground(tcell.NewRGBColor(219, 39, 119)),
		stylePetal,
		styleBase.Foreground(tcell.NewRGBColor(253, 164, 175)),
		styleBase.Foreground(tcell.NewRGBColor(250, 204, 21)),
	}
)

func (s *Surface) draw() {
	s.screen.Clear()
	s.drawPetals()

	switch s.scene {
	case card.Envelope:
		s.drawEnvelope()
	case card.Letter:
		s.drawLetter()
	case card.Proposal:
		s.drawProposal()
	case card.Celebrated:
		s.drawCelebrated()
	}
	s.drawBursts()

	status := "Enter: continue  N: no  P: music  Q: quit"
	if s.status != "" {
		status += " | Error: " + s.status
	}
	s.text(0, s.height-1, runewidth.Truncate(status, s.width, "…"), styleStatus)
	s.screen.Show()
}

func (s *Surface) drawEnvelope() {
	l := s.layout
	e := l.envelope
	s.frame(e, stylePanel)

	// flap: two diagonals meeting above the centre, sealed with a heart
	mid := e.x + e.w/2
	for i := 1; i < e.h-2; i++ {
		dx := i * (e.w / 2) / (e.h - 2)
		s.put(e.x+dx, e.y+i, '╲', stylePanel)
		s.put(e.x+e.w-1-dx, e.y+i, '╱', stylePanel)
	}
	s.put(mid, e.y+e.h-3, '♥', styleSeal)

	s.centered(l.top, s.cfg.Copy.EnvelopeTitle, styleTitle)
	s.centered(l.top+1, s.cfg.Copy.EnvelopeHint, styleSoft)
	s.button(l.open, s.cfg.Copy.OpenLabel, styleAccept)
}

func (s *Surface) drawLetter() {
	l := s.layout
	s.frame(l.panel, stylePanel)
	tw := l.panel.w - 4

	s.centered(l.top, s.cfg.Copy.LetterHeader, styleSoft)
	y := l.top + 2
	for _, line := range wrap(s.cfg.Copy.Greeting, tw) {
		s.centered(y, line, styleTitle)
		y++
	}

	end := min(len(l.body), s.scroll+l.bodyRows)
	for i, line := range l.body[s.scroll:end] {
		s.text(l.panel.x+2, l.bodyTop+i, line, styleInk)
	}
	if l.scrollMax > 0 {
		x := l.panel.x + l.panel.w - 2
		if s.scroll > 0 {
			s.put(x, l.bodyTop, '▲', stylePanel)
		}
		if s.scroll < l.scrollMax {
			s.put(x, l.bodyTop+l.bodyRows-1, '▼', stylePanel)
		}
	}
	s.button(l.next, s.cfg.Copy.ContinueLabel, styleAccept)
}

func (s *Surface) drawProposal() {
	l := s.layout
	s.frame(l.panel, stylePanel)
	tw := l.panel.w - 4

	s.centered(l.top, "◯", styleSeal)
	y := l.top + 2
	for _, line := range wrap(s.cfg.Copy.Question, tw) {
		s.centered(y, line, styleTitle)
		y++
	}
	y++
	for _, line := range wrap(s.cfg.Copy.Plea, tw) {
		s.centered(y, line, styleSoft)
		y++
	}
	s.button(l.accept, s.cfg.Copy.AcceptLabel, styleAccept)
	s.button(l.decline, l.declineLabel, styleDecline)
}

func (s *Surface) drawCelebrated() {
	l := s.layout
	s.frame(l.panel, styleSeal)
	tw := l.panel.w - 4

	s.centered(l.top, "✿ ❀ ✿", styleSeal)
	y := l.top + 2
	for _, line := range wrap(s.cfg.Copy.CelebrationTitle, tw) {
		s.centered(y, line, styleTitle)
		y++
	}
	y++
	s.centered(y, s.cfg.Copy.CelebrationLine, styleInk)
	s.centered(y+2, "* "+s.cfg.Copy.SignOff+" *", styleSoft)
}

func (s *Surface) drawPetals() {
	for _, p := range s.ctrl.Petals() {
		x, y, ok := petalCell(p, s.elapsed, s.width, s.height-1)
		if !ok {
			continue
		}
		st := stylePetal
		if p.Opacity < 0.6 {
			st = stylePetalLo
		}
		s.put(x, y, petalGlyphs[p.ID%len(petalGlyphs)], st)
	}
}

func (s *Surface) drawBursts() {
	if s.scene != card.Celebrated {
		return
	}
	cx, cy := s.width/2, (s.height-1)/2
	elapsed := s.elapsed - s.acceptedAt
	draw := func(particles []card.BurstParticle) {
		for _, bp := range particles {
			if x, y, ok := burstCell(bp, elapsed, cx, cy); ok {
				s.put(x, y, symbolGlyphs[bp.SymbolIndex], symbolStyles[bp.SymbolIndex])
			}
		}
	}
	draw(s.ctrl.CelebrationBurst())
	if particles, active := s.ctrl.Burst(); active {
		draw(particles)
	}
}

// petalCell maps a petal to a cell. Petals fall from just above the top row
// to just below the bottom, drifting a few columns right.
func petalCell(p card.Petal, elapsed float64, w, h int) (x, y int, ok bool) {
	if elapsed < p.FallDelay || p.FallDuration <= 0 {
		return 0, 0, false
	}
	t := math.Mod(elapsed-p.FallDelay, p.FallDuration) / p.FallDuration
	x = int(p.HorizontalPosition/100*float64(w) + 4*t)
	y = int(t*float64(h+2)) - 1
	return x, y, x >= 0 && x < w && y >= 0 && y < h
}

// burstCell maps a burst particle to a cell, scaling its pixel offset down
// to cells.
func burstCell(bp card.BurstParticle, elapsed float64, cx, cy int) (x, y int, ok bool) {
	local := elapsed - bp.StartDelay
	if local < 0 || local >= config.BurstFlight {
		return 0, 0, false
	}
	e := float64(ease.OutQuad(float32(local/config.BurstFlight), 0, 1, 1))
	x = cx + int(math.Round(bp.TranslateX/config.TermCellWidth*e))
	y = cy + int(math.Round(bp.TranslateY/config.TermCellHeight*e))
	return x, y, true
}

func (s *Surface) put(x, y int, r rune, st tcell.Style) {
	s.screen.SetContent(x, y, r, nil, st)
}

// text writes str from (x, y) and returns the column after it.
func (s *Surface) text(x, y int, str string, st tcell.Style) int {
	for _, r := range str {
		s.put(x, y, r, st)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (s *Surface) centered(y int, str string, st tcell.Style) {
	s.text((s.width-runewidth.StringWidth(str))/2, y, str, st)
}

// frame draws a rounded border around b.
func (s *Surface) frame(b box, st tcell.Style) {
	if b.w < 2 || b.h < 2 {
		return
	}
	for x := b.x + 1; x < b.x+b.w-1; x++ {
		s.put(x, b.y, '─', st)
		s.put(x, b.y+b.h-1, '─', st)
	}
	for y := b.y + 1; y < b.y+b.h-1; y++ {
		s.put(b.x, y, '│', st)
		s.put(b.x+b.w-1, y, '│', st)
	}
	s.put(b.x, b.y, '╭', st)
	s.put(b.x+b.w-1, b.y, '╮', st)
	s.put(b.x, b.y+b.h-1, '╰', st)
	s.put(b.x+b.w-1, b.y+b.h-1, '╯', st)
}

// button draws a framed label, filling its middle row with st.
func (s *Surface) button(b box, label string, st tcell.Style) {
	if !b.visible {
		return
	}
	for x := b.x + 1; x < b.x+b.w-1; x++ {
		s.put(x, b.y+1, ' ', st)
	}
	s.frame(b, st)
	s.text(b.x+2, b.y+1, label, st)
}
