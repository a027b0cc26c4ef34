// Package term renders the card in a terminal with tcell. It drives the same
// card.Controller as the desktop surface, using cells instead of pixels.
package term

import (
	"context"
	"errors"
	"log"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/valentine/internal/card"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/sound"
)

// Surface is a terminal presentation of one card.
type Surface struct {
	screen tcell.Screen
	cfg    *config.Config
	ctrl   *card.Controller
	player *sound.Player

	width, height int

	elapsed    float64 // seconds since start
	acceptedAt float64
	scene      card.Scene
	scroll     int
	mouseDown  bool

	layout layout
	status string
}

// New wraps an initialized screen. player may be nil.
func New(screen tcell.Screen, cfg *config.Config, ctrl *card.Controller, player *sound.Player) *Surface {
	if player == nil {
		player = sound.NewPlayer()
	}
	s := &Surface{
		screen: screen,
		cfg:    cfg,
		ctrl:   ctrl,
		player: player,
		scene:  ctrl.Scene(),
	}
	s.width, s.height = screen.Size()
	s.relayout()
	return s
}

// Run draws and handles input until the user quits or ctx is done.
func (s *Surface) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(config.TermFrame)
	defer ticker.Stop()

	last := time.Now()
	s.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !s.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			s.step(now.Sub(last))
			last = now
			s.draw()
		}
	}
}

// step advances the controller and the animation clock.
func (s *Surface) step(dt time.Duration) {
	s.elapsed += dt.Seconds()
	s.ctrl.Advance(dt)
	s.player.UpdateLevel()
	s.syncScene()
}

func (s *Surface) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelUp != 0:
			s.scrollBy(-1)
		case buttons&tcell.WheelDown != 0:
			s.scrollBy(1)
		}
		down := buttons&tcell.Button1 != 0
		if down && !s.mouseDown {
			s.handleClick(x, y)
		}
		s.mouseDown = down
	case *tcell.EventResize:
		s.handleResize()
	}
	return true
}

// handleKey reports false when the user asked to quit.
func (s *Surface) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		s.primary()
	case tcell.KeyUp:
		s.scrollBy(-1)
	case tcell.KeyDown:
		s.scrollBy(1)
	case tcell.KeyPgUp:
		s.scrollBy(-s.layout.bodyRows)
	case tcell.KeyPgDn:
		s.scrollBy(s.layout.bodyRows)
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'q':
			return false
		case ' ':
			s.primary()
		case 'n':
			s.dodge()
		case 'p':
			s.player.ToggleSoundtrack()
		}
	}
	return true
}

// handleClick presses whichever visible button covers the cell.
func (s *Surface) handleClick(x, y int) {
	s.relayout()
	l := s.layout
	switch {
	case l.open.visible && l.open.contains(x, y),
		l.next.visible && l.next.contains(x, y),
		l.accept.visible && l.accept.contains(x, y):
		s.primary()
	case l.decline.visible && l.decline.contains(x, y):
		s.dodge()
	}
}

func (s *Surface) handleResize() {
	s.screen.Sync()
	s.width, s.height = s.screen.Size()
	s.relayout()
}

func (s *Surface) scrollBy(n int) {
	if s.scene != card.Letter {
		return
	}
	s.scroll = max(0, min(s.scroll+n, s.layout.scrollMax))
}

// primary runs the forward action of the current scene.
func (s *Surface) primary() {
	var err error
	switch s.ctrl.Scene() {
	case card.Envelope:
		err = s.ctrl.OpenEnvelope()
	case card.Letter:
		err = s.ctrl.ContinueToProposal()
	case card.Proposal:
		err = s.ctrl.Accept()
	default:
		return
	}
	s.report(err)
	s.syncScene()
}

// dodge declines with the terminal as the viewport, measured in cells.
func (s *Surface) dodge() {
	vp := card.ViewportBounds{Width: float64(s.width), Height: float64(s.height - 1)}
	if err := s.ctrl.Decline(vp, s.declineFootprint()); err != nil {
		s.report(err)
		return
	}
	s.player.PlayBlip()
	s.relayout()
}

// declineFootprint sizes the decline box for its widest taunt.
func (s *Surface) declineFootprint() card.Footprint {
	w := 0
	for _, t := range s.ctrl.Taunts() {
		w = max(w, buttonWidth(t))
	}
	return card.Footprint{Width: float64(w), Height: buttonHeight}
}

func (s *Surface) report(err error) {
	if err != nil && !errors.Is(err, card.ErrRejected) {
		s.status = err.Error()
	}
}

func (s *Surface) syncScene() {
	sc := s.ctrl.Scene()
	if sc == s.scene {
		return
	}
	log.Printf("[Term] entering %s", sc)
	s.scene = sc
	s.scroll = 0
	if sc == card.Celebrated {
		s.acceptedAt = s.elapsed
		s.player.PlayChime()
	}
	s.relayout()
}
