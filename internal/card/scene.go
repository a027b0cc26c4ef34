// Package card holds the state of the greeting card: the scene flow, the
// decorative particle parameters and the evasive decline control. It has no
// rendering dependencies; presentation surfaces read its state every frame
// and forward user actions to the Controller.
package card

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// Scene is one step of the card's linear flow.
type Scene int

const (
	Envelope Scene = iota
	Letter
	Proposal
	Celebrated
)

func (s Scene) String() string {
	switch s {
	case Envelope:
		return "envelope"
	case Letter:
		return "letter"
	case Proposal:
		return "proposal"
	case Celebrated:
		return "celebrated"
	default:
		return fmt.Sprintf("scene(%d)", int(s))
	}
}

// ErrRejected is returned when an action is not valid in the current scene.
// The scene is left untouched.
var ErrRejected = errors.New("action rejected in current scene")

// DefaultTaunts is the decline label sequence, from plain refusal to pleading.
var DefaultTaunts = []string{
	"No",
	"Are you sure?",
	"Pretty please?",
	"Come on, you know you want to",
	"Just one more chance?",
	"You can't say no (kidding)",
}

// Controller owns the card state. It is driven from a single goroutine (the
// host's event loop) and does no locking.
type Controller struct {
	src    Source
	taunts []string

	scene       Scene
	petals      []Petal
	burst       BurstGate
	celebration []BurstParticle
	evasion     EvasionState
}

// NewController starts a card at the Envelope scene and generates its
// petals. An empty taunt list falls back to DefaultTaunts.
func NewController(src Source, taunts []string) *Controller {
	if len(taunts) == 0 {
		taunts = DefaultTaunts
	}
	return &Controller{
		src:    src,
		taunts: append([]string(nil), taunts...),
		scene:  Envelope,
		petals: GeneratePetals(src),
	}
}

// Scene returns the current scene.
func (c *Controller) Scene() Scene {
	return c.scene
}

// OpenEnvelope moves Envelope -> Letter.
func (c *Controller) OpenEnvelope() error {
	return c.advance(Envelope, Letter)
}

// ContinueToProposal moves Letter -> Proposal.
func (c *Controller) ContinueToProposal() error {
	return c.advance(Letter, Proposal)
}

// Accept moves Proposal -> Celebrated, fires the transient burst and
// generates the celebration burst shown for the rest of the session.
func (c *Controller) Accept() error {
	if err := c.advance(Proposal, Celebrated); err != nil {
		return err
	}
	token := c.burst.Trigger(GenerateBurst(c.src))
	c.celebration = GenerateBurst(c.src)
	log.Printf("[Burst] triggered token=%d for %v", token, BurstDuration)
	return nil
}

// Decline makes the evasive control dodge. It only exists on the Proposal
// scene and never changes the scene.
func (c *Controller) Decline(vp ViewportBounds, fp Footprint) error {
	if c.scene != Proposal {
		log.Printf("[Evasion] decline ignored in %s", c.scene)
		return fmt.Errorf("decline in %s: %w", c.scene, ErrRejected)
	}
	c.evasion = c.evasion.Decline(c.src, vp, fp, len(c.taunts))
	p := c.evasion.EscapePosition
	log.Printf("[Evasion] dodge=%d pos=(%.0f, %.0f)", c.evasion.DodgeCount, p.X, p.Y)
	return nil
}

// Advance moves time forward for scheduled burst deactivations.
func (c *Controller) Advance(dt time.Duration) {
	if n := c.burst.Advance(dt); n > 0 {
		log.Printf("[Burst] expired")
	}
}

// Petals returns the petal set generated at startup.
func (c *Controller) Petals() []Petal {
	return c.petals
}

// Burst returns the transient burst particles and whether the burst is active.
func (c *Controller) Burst() ([]BurstParticle, bool) {
	return c.burst.Particles(), c.burst.Active()
}

// CelebrationBurst returns the burst shown continuously on the Celebrated
// scene, or nil before it is reached.
func (c *Controller) CelebrationBurst() []BurstParticle {
	return c.celebration
}

// Evasion returns the evasive control state.
func (c *Controller) Evasion() EvasionState {
	return c.evasion
}

// Taunts returns the configured taunt sequence.
func (c *Controller) Taunts() []string {
	return c.taunts
}

// Taunt returns the label the evasive control currently shows.
func (c *Controller) Taunt() string {
	return c.taunts[c.evasion.DodgeCount]
}

func (c *Controller) advance(from, to Scene) error {
	if c.scene != from {
		log.Printf("[Scene] %s -> %s rejected in %s", from, to, c.scene)
		return fmt.Errorf("%s -> %s from %s: %w", from, to, c.scene, ErrRejected)
	}
	log.Printf("[Scene] %s -> %s", from, to)
	c.scene = to
	return nil
}
