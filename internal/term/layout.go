package term

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iburimskiy/valentine/internal/card"
	"github.com/iburimskiy/valentine/internal/config"
)

const buttonHeight = 3

// box is a cell rectangle.
type box struct {
	x, y, w, h int
	visible    bool
}

func (b box) contains(x, y int) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// buttonWidth is the boxed width of label: borders plus one space each side.
func buttonWidth(label string) int {
	return runewidth.StringWidth(label) + 4
}

type layout struct {
	panel    box
	envelope box
	top      int // first text row inside the panel

	open, next, accept, decline box
	declineLabel                string

	body      []string // wrapped letter lines, blank line between paragraphs
	bodyTop   int
	bodyRows  int
	scrollMax int
}

// relayout places the panel and buttons for the current scene.
func (s *Surface) relayout() {
	w, h := s.width, s.height-1 // last row is the status line
	tw := min(config.TermTextWidth, w-4)
	l := layout{}

	switch s.scene {
	case card.Envelope:
		ew := min(28, w-2)
		eh := 7
		stack := eh + 1 + 1 + 1 + 1 + 1 + buttonHeight
		top := max(0, (h-stack)/2)
		l.envelope = box{x: (w - ew) / 2, y: top, w: ew, h: eh, visible: true}
		l.top = top + eh + 1
		bw := buttonWidth(s.cfg.Copy.OpenLabel)
		l.open = box{x: (w - bw) / 2, y: l.top + 3, w: bw, h: buttonHeight, visible: true}

	case card.Letter:
		l.panel = box{x: (w - tw - 4) / 2, y: 0, w: tw + 4, h: h, visible: true}
		l.top = 1
		greeting := wrap(s.cfg.Copy.Greeting, tw)
		l.bodyTop = l.top + 2 + len(greeting) + 1
		for i, para := range s.cfg.Copy.Letter {
			if i > 0 {
				l.body = append(l.body, "")
			}
			l.body = append(l.body, wrap(para, tw)...)
		}
		bw := buttonWidth(s.cfg.Copy.ContinueLabel)
		l.next = box{x: (w - bw) / 2, y: h - buttonHeight - 1, w: bw, h: buttonHeight, visible: true}
		l.bodyRows = max(0, l.next.y-1-l.bodyTop)
		l.scrollMax = max(0, len(l.body)-l.bodyRows)

	case card.Proposal:
		question := wrap(s.cfg.Copy.Question, tw)
		plea := wrap(s.cfg.Copy.Plea, tw)
		ph := 2 + 2 + len(question) + 1 + len(plea) + 1 + buttonHeight
		l.panel = box{x: (w - tw - 4) / 2, y: max(0, (h-ph)/2), w: tw + 4, h: ph, visible: true}
		l.top = l.panel.y + 1
		rowY := l.panel.y + l.panel.h - buttonHeight - 1

		l.declineLabel = s.ctrl.Taunt()
		aw, dw := buttonWidth(s.cfg.Copy.AcceptLabel), buttonWidth(l.declineLabel)
		if ev := s.ctrl.Evasion(); ev.Escaped() {
			l.accept = box{x: (w - aw) / 2, y: rowY, w: aw, h: buttonHeight, visible: true}
			l.decline = box{x: int(ev.EscapePosition.X), y: int(ev.EscapePosition.Y), w: dw, h: buttonHeight, visible: true}
		} else {
			rowX := (w - aw - 2 - dw) / 2
			l.accept = box{x: rowX, y: rowY, w: aw, h: buttonHeight, visible: true}
			l.decline = box{x: rowX + aw + 2, y: rowY, w: dw, h: buttonHeight, visible: true}
		}

	case card.Celebrated:
		title := wrap(s.cfg.Copy.CelebrationTitle, tw)
		ph := 2 + 2 + len(title) + 1 + 1 + 1 + 1
		l.panel = box{x: (w - tw - 4) / 2, y: max(0, (h-ph)/2), w: tw + 4, h: ph, visible: true}
		l.top = l.panel.y + 1
	}

	s.layout = l
	s.scroll = min(s.scroll, l.scrollMax)
}

// wrap breaks s into lines of at most width cells.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "")
			ww = runewidth.StringWidth(word)
		}
		switch {
		case curW == 0:
			cur.WriteString(word)
			curW = ww
		case curW+1+ww <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curW = ww
		}
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
