package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/valentine/internal/card"
	"github.com/iburimskiy/valentine/internal/config"
)

func newTestSurface(t *testing.T, w, h int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	cfg := config.Default()
	ctrl := card.NewController(card.NewSource(7), cfg.Taunts)
	return New(screen, cfg, ctrl, nil), screen
}

// screenText returns the whole screen, one line per row.
func screenText(screen tcell.SimulationScreen) string {
	w, h := screen.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestSurfaceWalksTheScenes(t *testing.T) {
	s, screen := newTestSurface(t, 80, 30)
	cfg := s.cfg

	s.draw()
	if !strings.Contains(screenText(screen), cfg.Copy.EnvelopeTitle) {
		t.Fatal("envelope title not drawn")
	}

	steps := []struct {
		want card.Scene
		text string
	}{
		{card.Letter, cfg.Copy.LetterHeader},
		{card.Proposal, cfg.Copy.AcceptLabel},
		{card.Celebrated, cfg.Copy.CelebrationLine},
	}
	for _, st := range steps {
		s.handleKey(tcell.KeyEnter, 0)
		if s.scene != st.want {
			t.Fatalf("scene = %s, want %s", s.scene, st.want)
		}
		s.draw()
		if !strings.Contains(screenText(screen), st.text) {
			t.Errorf("%s: %q not on screen", st.want, st.text)
		}
	}
}

func TestSurfaceClicks(t *testing.T) {
	s, _ := newTestSurface(t, 80, 30)

	s.handleClick(0, 0)
	if s.scene != card.Envelope {
		t.Fatal("click outside the button moved the card")
	}
	o := s.layout.open
	s.handleClick(o.x+1, o.y+1)
	if s.scene != card.Letter {
		t.Fatalf("scene = %s after clicking open", s.scene)
	}
	n := s.layout.next
	s.handleClick(n.x+1, n.y+1)
	if s.scene != card.Proposal {
		t.Fatalf("scene = %s after clicking continue", s.scene)
	}

	d := s.layout.decline
	s.handleClick(d.x+1, d.y+1)
	if got := s.ctrl.Evasion().DodgeCount; got != 1 {
		t.Fatalf("dodge count = %d after clicking decline", got)
	}

	a := s.layout.accept
	s.handleClick(a.x+1, a.y+1)
	if s.scene != card.Celebrated {
		t.Fatalf("scene = %s after clicking accept", s.scene)
	}
}

func TestDeclineStaysOnScreen(t *testing.T) {
	sizes := []struct{ w, h int }{{80, 24}, {40, 12}, {120, 40}}
	for _, sz := range sizes {
		s, screen := newTestSurface(t, sz.w, sz.h)
		s.handleKey(tcell.KeyEnter, 0)
		s.handleKey(tcell.KeyEnter, 0)

		for i := 0; i < 20; i++ {
			s.handleKey(tcell.KeyRune, 'n')
			d := s.layout.decline
			if d.x < 0 || d.y < 0 || d.x+d.w > sz.w || d.y+d.h > sz.h-1 {
				t.Fatalf("%dx%d dodge %d: decline %+v off screen", sz.w, sz.h, i, d)
			}
		}

		last := s.cfg.Taunts[len(s.cfg.Taunts)-1]
		s.draw()
		if !strings.Contains(screenText(screen), last) {
			t.Errorf("%dx%d: final taunt %q not on screen", sz.w, sz.h, last)
		}
	}
}

func TestResizeKeepsLayout(t *testing.T) {
	s, screen := newTestSurface(t, 80, 24)
	s.handleKey(tcell.KeyEnter, 0)
	s.handleKey(tcell.KeyEnter, 0)
	s.handleKey(tcell.KeyRune, 'n')

	screen.SetSize(50, 20)
	s.handleResize()
	if s.width != 50 || s.height != 20 {
		t.Fatalf("size = %dx%d, want 50x20", s.width, s.height)
	}
	s.draw()
}

func TestBurstExpiresAfterTwoSeconds(t *testing.T) {
	s, _ := newTestSurface(t, 80, 24)
	for i := 0; i < 3; i++ {
		s.handleKey(tcell.KeyEnter, 0)
	}
	if _, active := s.ctrl.Burst(); !active {
		t.Fatal("burst inactive right after accepting")
	}
	for i := 0; i < 130; i++ {
		s.step(config.TermFrame)
	}
	if _, active := s.ctrl.Burst(); active {
		t.Error("burst still active after 2s of frames")
	}
	s.draw()
}

func TestQuitKeys(t *testing.T) {
	s, _ := newTestSurface(t, 80, 24)
	tests := []struct {
		key  tcell.Key
		r    rune
		want bool
	}{
		{tcell.KeyEscape, 0, false},
		{tcell.KeyCtrlC, 0, false},
		{tcell.KeyRune, 'q', false},
		{tcell.KeyRune, 'Q', false},
		{tcell.KeyRune, 'x', true},
		{tcell.KeyUp, 0, true},
	}
	for _, tt := range tests {
		if got := s.handleKey(tt.key, tt.r); got != tt.want {
			t.Errorf("handleKey(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestLetterScroll(t *testing.T) {
	s, _ := newTestSurface(t, 40, 16)
	s.handleKey(tcell.KeyEnter, 0)
	if s.layout.scrollMax == 0 {
		t.Skip("letter fits without scrolling")
	}
	s.handleKey(tcell.KeyUp, 0)
	if s.scroll != 0 {
		t.Errorf("scroll = %d, want 0 at the top", s.scroll)
	}
	for i := 0; i < 200; i++ {
		s.handleKey(tcell.KeyDown, 0)
	}
	if s.scroll != s.layout.scrollMax {
		t.Errorf("scroll = %d, want %d", s.scroll, s.layout.scrollMax)
	}
	s.draw()
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "be mine", 10, []string{"be mine"}},
		{"breaks", "will you be mine", 8, []string{"will you", "be mine"}},
		{"long word", "valentine", 4, []string{"vale"}},
		{"empty", "  ", 10, nil},
		{"zero width", "hi", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap(tt.in, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("wrap(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestBurstCell(t *testing.T) {
	bp := card.BurstParticle{StartDelay: 0.1, TranslateX: 160, TranslateY: -160}
	if _, _, ok := burstCell(bp, 0.05, 40, 12); ok {
		t.Error("particle placed before its delay")
	}
	x, y, ok := burstCell(bp, 0.1, 40, 12)
	if !ok || x != 40 || y != 12 {
		t.Errorf("start = (%d, %d, %v), want (40, 12, true)", x, y, ok)
	}
	x, y, _ = burstCell(bp, 0.1+config.BurstFlight*0.99, 40, 12)
	if x <= 55 || y >= 3 {
		t.Errorf("near end = (%d, %d), want close to (60, 2)", x, y)
	}
	if _, _, ok := burstCell(bp, 0.1+config.BurstFlight, 40, 12); ok {
		t.Error("particle placed after its flight")
	}
}

func TestPetalCell(t *testing.T) {
	p := card.Petal{HorizontalPosition: 50, FallDelay: 1, FallDuration: 10}
	if _, _, ok := petalCell(p, 0.5, 80, 24); ok {
		t.Error("petal placed before its delay")
	}
	if x, y, ok := petalCell(p, 6, 80, 24); !ok || x != 42 || y != 12 {
		t.Errorf("midway = (%d, %d, %v), want (42, 12, true)", x, y, ok)
	}
}
