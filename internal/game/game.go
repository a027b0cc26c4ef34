// Package game is the desktop presentation of the card on ebiten. It reads
// the card.Controller every frame, draws the current scene and forwards
// clicks and keys back to the controller.
package game

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/valentine/internal/card"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/sound"
)

// Game implements ebiten.Game.
type Game struct {
	cfg    *config.Config
	ctrl   *card.Controller
	player *sound.Player

	width, height int

	// animation clocks, in seconds
	time       float64
	acceptedAt float64
	fx         *effects
	level      float64

	scene  card.Scene
	scroll float64
	layout sceneLayout

	open    button
	next    button
	accept  button
	decline button

	bg *background

	lastErr error
}

// New builds the desktop surface around ctrl. player may be nil.
func New(cfg *config.Config, ctrl *card.Controller, player *sound.Player) *Game {
	if player == nil {
		player = sound.NewPlayer()
	}
	g := &Game{
		cfg:     cfg,
		ctrl:    ctrl,
		player:  player,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		fx:      newEffects(),
		scene:   ctrl.Scene(),
		open:    button{label: cfg.Copy.OpenLabel, style: stylePrimary},
		next:    button{label: cfg.Copy.ContinueLabel, style: stylePrimary},
		accept:  button{label: cfg.Copy.AcceptLabel, style: stylePrimary},
		decline: button{label: ctrl.Taunt(), style: styleOutline, minW: config.DeclineMinWidth},
		bg:      &background{},
	}
	g.relayout()
	return g
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.time += dt
	g.ctrl.Advance(time.Duration(dt * float64(time.Second)))
	g.fx.update(dt)
	g.level = g.player.UpdateLevel()

	if err := g.handleKeys(); err != nil {
		return err
	}
	g.handleWheel()
	g.relayout()
	g.handleMouse()
	g.syncScene()
	return nil
}

func (g *Game) handleKeys() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.primary()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.dodge()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.chooseSoundtrack()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.player.ToggleSoundtrack()
	}
	return nil
}

func (g *Game) handleWheel() {
	if g.scene != card.Letter {
		return
	}
	_, dy := ebiten.Wheel()
	g.scroll -= dy * config.LetterLineHeight * 2
	if g.scroll < 0 {
		g.scroll = 0
	}
	if g.scroll > g.layout.scrollMax {
		g.scroll = g.layout.scrollMax
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	switch g.scene {
	case card.Envelope:
		if g.open.update(x, y, pressed, released) {
			g.primary()
		}
	case card.Letter:
		if g.next.update(x, y, pressed, released) {
			g.primary()
		}
	case card.Proposal:
		if g.accept.update(x, y, pressed, released) {
			g.primary()
		}
		if g.decline.update(x, y, pressed, released) {
			g.dodge()
		}
	}
}

// primary runs the forward action of the current scene.
func (g *Game) primary() {
	var err error
	switch g.ctrl.Scene() {
	case card.Envelope:
		err = g.ctrl.OpenEnvelope()
	case card.Letter:
		err = g.ctrl.ContinueToProposal()
	case card.Proposal:
		err = g.ctrl.Accept()
	default:
		return
	}
	g.report(err)
}

// dodge sends a decline with the current window and the measured control.
func (g *Game) dodge() {
	vp := card.ViewportBounds{Width: float64(g.width), Height: float64(g.height)}
	fp := g.cfg.Control.Footprint()
	if fp.Width == 0 && fp.Height == 0 {
		fp = g.declineFootprint()
	}
	if err := g.ctrl.Decline(vp, fp); err != nil {
		g.report(err)
		return
	}
	g.decline.label = g.ctrl.Taunt()
	g.fx.bounce.restart()
	g.player.PlayBlip()
}

// declineFootprint is the decline control sized for its widest taunt, so the
// label that follows a dodge still fits where it landed.
func (g *Game) declineFootprint() card.Footprint {
	probe := g.decline
	fp := card.Footprint{}
	for _, t := range g.ctrl.Taunts() {
		probe.label = t
		w, h := probe.size()
		fp.Width = max(fp.Width, w)
		fp.Height = max(fp.Height, h)
	}
	return fp
}

func (g *Game) chooseSoundtrack() {
	path, err := sound.ChooseSoundtrack()
	if err != nil {
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	if err := g.player.PlaySoundtrack(path); err != nil {
		g.lastErr = err
	}
}

// report keeps the last unexpected error for the status line. Rejected
// actions are routine and only logged by the controller.
func (g *Game) report(err error) {
	if err != nil && !errors.Is(err, card.ErrRejected) {
		g.lastErr = err
	}
}

// syncScene starts entrance effects when the controller has moved on.
func (g *Game) syncScene() {
	s := g.ctrl.Scene()
	if s == g.scene {
		return
	}
	log.Printf("[Game] entering %s", s)
	g.scene = s
	g.scroll = 0
	g.fx.enterScene()
	if s == card.Celebrated {
		g.acceptedAt = g.time
		g.player.PlayChime()
	}
	g.relayout()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.bg.draw(screen, g.width, g.height)
	g.drawPetals(screen)

	switch g.scene {
	case card.Envelope:
		g.drawEnvelope(screen)
	case card.Letter:
		g.drawLetter(screen)
	case card.Proposal:
		g.drawProposal(screen)
	case card.Celebrated:
		g.drawCelebrated(screen)
	}
	g.drawBursts(screen)

	status := "Enter: continue  N: no  M: soundtrack  P: pause music  Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.StatusLineX, config.StatusLineY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// sinceAccept is the time the celebration bursts have been running.
func (g *Game) sinceAccept() float64 {
	return g.time - g.acceptedAt
}
