package game

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/valentine/internal/card"
	"github.com/iburimskiy/valentine/internal/config"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	ctrl := card.NewController(card.NewSource(1), cfg.Taunts)
	return New(cfg, ctrl, nil)
}

func TestPrimaryWalksTheScenes(t *testing.T) {
	g := newTestGame(t)
	want := []card.Scene{card.Letter, card.Proposal, card.Celebrated, card.Celebrated}
	for i, w := range want {
		g.primary()
		g.syncScene()
		if g.scene != w {
			t.Fatalf("step %d: scene = %s, want %s", i, g.scene, w)
		}
	}
	if g.lastErr != nil {
		t.Errorf("rejected actions should not surface as errors: %v", g.lastErr)
	}
}

func TestDodgeKeepsDeclineOnScreen(t *testing.T) {
	g := newTestGame(t)
	g.primary()
	g.primary()
	g.syncScene()
	if g.scene != card.Proposal {
		t.Fatalf("scene = %s, want proposal", g.scene)
	}

	w, h := float64(g.width), float64(g.height)
	for i := 0; i < 30; i++ {
		g.dodge()
		g.relayout()
		r := g.decline.rect
		if r.x < 0 || r.y < 0 || r.x+r.w > w+0.001 || r.y+r.h > h+0.001 {
			t.Fatalf("dodge %d: decline at %+v leaves %vx%v window", i, r, w, h)
		}
	}
	want := g.cfg.Taunts[len(g.cfg.Taunts)-1]
	if g.decline.label != want {
		t.Errorf("label = %q, want %q", g.decline.label, want)
	}
}

func TestDeclineSitsBesideAcceptUntilFirstDodge(t *testing.T) {
	g := newTestGame(t)
	g.primary()
	g.primary()
	g.syncScene()
	g.relayout()

	if g.decline.rect.y != g.accept.rect.y {
		t.Errorf("in-flow decline y = %f, accept y = %f", g.decline.rect.y, g.accept.rect.y)
	}
	if g.decline.rect.x <= g.accept.rect.x {
		t.Error("in-flow decline should sit to the right of accept")
	}
}

func TestLayoutFollowsWindow(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(800, 500)
	if w != 800 || h != 500 {
		t.Errorf("Layout = %dx%d, want 800x500", w, h)
	}
	w, h = g.Layout(0, 0)
	if w != 800 || h != 500 {
		t.Errorf("zero outside size should keep the last size, got %dx%d", w, h)
	}
}

func TestButtonClick(t *testing.T) {
	b := button{label: "Open"}
	b.place(10, 10)

	tests := []struct {
		name              string
		x, y              float64
		pressed, released bool
		wantClick         bool
	}{
		{"hover only", 20, 20, false, false, false},
		{"press inside", 20, 20, true, false, false},
		{"release inside", 20, 20, false, true, true},
		{"release without press", 20, 20, false, true, false},
		{"press inside", 20, 20, true, false, false},
		{"release outside", 500, 500, false, true, false},
	}
	for _, tt := range tests {
		if got := b.update(tt.x, tt.y, tt.pressed, tt.released); got != tt.wantClick {
			t.Errorf("%s: click = %v, want %v", tt.name, got, tt.wantClick)
		}
	}

	b.hidden = true
	b.update(20, 20, true, false)
	if b.update(20, 20, false, true) {
		t.Error("hidden button should never click")
	}
}

func TestPetalAt(t *testing.T) {
	p := card.Petal{HorizontalPosition: 50, FallDelay: 2, FallDuration: 10, Size: 20, Opacity: 0.8, Rotation: 90}
	const w, h = 1000.0, 600.0

	if f := petalAt(p, 1, w, h); f.visible {
		t.Error("petal visible before its delay")
	}

	start := petalAt(p, 2, w, h)
	if !start.visible || start.y != -30 || start.x != 500 || start.alpha != 0 {
		t.Errorf("start frame = %+v", start)
	}

	mid := petalAt(p, 2+5, w, h)
	if math.Abs(mid.x-530) > 1e-9 {
		t.Errorf("mid x = %f, want 530", mid.x)
	}
	if mid.alpha <= 0 || mid.alpha > p.Opacity*0.7 {
		t.Errorf("mid alpha = %f", mid.alpha)
	}

	// loops back to the top
	again := petalAt(p, 2+10+0.001, w, h)
	if again.y > start.y+1 {
		t.Errorf("petal did not loop: y = %f", again.y)
	}

	near := petalAt(p, 2+9.999, w, h)
	if near.y < h {
		t.Errorf("petal should leave the screen before looping, y = %f", near.y)
	}
}

func TestBurstAt(t *testing.T) {
	bp := card.BurstParticle{StartDelay: 0.2, TranslateX: 200, TranslateY: -100, FontSize: 20}

	if f := burstAt(bp, 0.1, 500, 300); f.visible {
		t.Error("particle visible before its delay")
	}
	f := burstAt(bp, 0.2, 500, 300)
	if !f.visible || f.x != 500 || f.y != 300 || f.scale != 0 || f.alpha != 1 {
		t.Errorf("start frame = %+v", f)
	}
	f = burstAt(bp, 0.2+config.BurstFlight*0.9, 500, 300)
	if f.alpha <= 0 || f.alpha >= 1 {
		t.Errorf("fading alpha = %f", f.alpha)
	}
	if f.x <= 500 || f.y >= 300 {
		t.Errorf("particle not travelling toward its offset: %+v", f)
	}
	if f := burstAt(bp, 0.2+config.BurstFlight, 500, 300); f.visible {
		t.Error("particle visible after its flight")
	}
}

func TestOscillatorPingPongs(t *testing.T) {
	o := newOscillator(2, ease.Linear)
	if v := o.update(0.5); math.Abs(v-0.5) > 1e-3 {
		t.Errorf("quarter period = %f, want 0.5", v)
	}
	o.update(0.5)
	if v := o.update(0.5); math.Abs(v-0.5) > 1e-3 {
		t.Errorf("three quarters = %f, want 0.5 on the way down", v)
	}
	for i := 0; i < 100; i++ {
		if v := o.update(0.13); v < 0 || v > 1 {
			t.Fatalf("value %f outside [0, 1]", v)
		}
	}
}

func TestOneShotHolds(t *testing.T) {
	o := newOneShot(0.5, ease.Linear)
	o.update(0.25)
	o.update(0.25)
	if !o.done || math.Abs(o.value-1) > 1e-3 {
		t.Fatalf("one-shot = %+v, want done at 1", o)
	}
	o.update(1)
	if math.Abs(o.value-1) > 1e-3 {
		t.Error("one-shot should hold its final value")
	}
	o.restart()
	if o.done || o.value != 0 {
		t.Error("restart should rewind")
	}
}

func TestWrapText(t *testing.T) {
	s := "the quick brown fox jumps over the lazy dog"
	lines := wrapText(s, textWidth("the quick brown", textBody), textBody)
	if len(lines) < 3 {
		t.Fatalf("lines = %q", lines)
	}
	for _, l := range lines {
		if textWidth(l, textBody) > textWidth("the quick brown", textBody) {
			t.Errorf("line %q too wide", l)
		}
	}
	if got := wrapText("   ", 100, textBody); got != nil {
		t.Errorf("blank text = %q, want nil", got)
	}
}

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
		{360, 255, 0, 0},
		{-120, 0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, 1, 1)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hsv(%v) = %d,%d,%d, want %d,%d,%d", tt.h, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
