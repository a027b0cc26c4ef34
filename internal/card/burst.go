package card

import (
	"time"
)

// BurstDuration is how long an accept-triggered burst stays active.
const BurstDuration = 2 * time.Second

// Token identifies one scheduled burst deactivation.
type Token uint64

type deactivation struct {
	token     Token
	remaining time.Duration
}

// BurstGate is the active flag for the transient burst plus its pending
// deactivations. Each Trigger supersedes earlier ones: when an older timer
// fires after a newer trigger it is ignored, so only the latest scheduled
// deactivation turns the burst off.
type BurstGate struct {
	active    bool
	latest    Token
	pending   []deactivation
	particles []BurstParticle
}

// Trigger activates the gate with a fresh particle set and schedules its
// deactivation after BurstDuration.
func (g *BurstGate) Trigger(particles []BurstParticle) Token {
	g.latest++
	g.active = true
	g.particles = particles
	g.pending = append(g.pending, deactivation{token: g.latest, remaining: BurstDuration})
	return g.latest
}

// Expire runs the deactivation for token. Stale tokens are no-ops.
func (g *BurstGate) Expire(token Token) bool {
	if token != g.latest || !g.active {
		return false
	}
	g.active = false
	g.particles = nil
	return true
}

// Advance moves scheduled deactivations forward by dt and fires the due ones.
// It returns the number of deactivations that actually turned the gate off.
func (g *BurstGate) Advance(dt time.Duration) int {
	fired := 0
	kept := g.pending[:0]
	for _, d := range g.pending {
		d.remaining -= dt
		if d.remaining <= 0 {
			if g.Expire(d.token) {
				fired++
			}
			continue
		}
		kept = append(kept, d)
	}
	g.pending = kept
	return fired
}

// Active reports whether the burst is currently shown.
func (g *BurstGate) Active() bool {
	return g.active
}

// Particles returns the current set, or nil when inactive.
func (g *BurstGate) Particles() []BurstParticle {
	if !g.active {
		return nil
	}
	return g.particles
}

// Pending returns the number of deactivations still scheduled.
func (g *BurstGate) Pending() int {
	return len(g.pending)
}
