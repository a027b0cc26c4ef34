package game

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/valentine/internal/card"
	"github.com/iburimskiy/valentine/internal/config"
)

// oneShot is a 0 -> 1 tween that holds its final value once finished.
type oneShot struct {
	tween *gween.Tween
	value float64
	done  bool
}

func newOneShot(duration float64, fn ease.TweenFunc) *oneShot {
	return &oneShot{tween: gween.New(0, 1, float32(duration), fn)}
}

func (o *oneShot) update(dt float64) float64 {
	if o.done {
		return o.value
	}
	v, finished := o.tween.Update(float32(dt))
	o.value = float64(v)
	o.done = finished
	return o.value
}

func (o *oneShot) restart() {
	o.tween.Reset()
	o.value = 0
	o.done = false
}

// oscillator ping-pongs between 0 and 1 forever, one half period per leg.
type oscillator struct {
	tween   *gween.Tween
	value   float64
	reverse bool
}

func newOscillator(period float64, fn ease.TweenFunc) *oscillator {
	return &oscillator{tween: gween.New(0, 1, float32(period/2), fn)}
}

func (o *oscillator) update(dt float64) float64 {
	v, finished := o.tween.Update(float32(dt))
	o.value = float64(v)
	if o.reverse {
		o.value = 1 - o.value
	}
	if finished {
		o.tween.Reset()
		o.reverse = !o.reverse
	}
	return o.value
}

// ramp is a sawtooth 0 -> 1 that wraps every period.
type ramp struct {
	period float64
	value  float64
}

func (r *ramp) update(dt float64) float64 {
	r.value = math.Mod(r.value+dt/r.period, 1)
	return r.value
}

// effects holds every ambient animation value for the current frame.
type effects struct {
	reveal  *oneShot
	fadeUp  *oneShot
	bounce  *oneShot
	pulse   *oscillator
	float   *oscillator
	glow    *oscillator
	shimmer *ramp
}

func newEffects() *effects {
	e := &effects{
		reveal:  newOneShot(config.RevealDuration, ease.OutCubic),
		fadeUp:  newOneShot(config.FadeUpDuration, ease.OutQuad),
		bounce:  newOneShot(config.BounceDuration, ease.Linear),
		pulse:   newOscillator(config.PulsePeriod, ease.InOutSine),
		float:   newOscillator(config.FloatPeriod, ease.InOutSine),
		glow:    newOscillator(config.GlowPeriod, ease.InOutSine),
		shimmer: &ramp{period: config.ShimmerPeriod},
	}
	e.bounce.done = true
	e.bounce.value = 1
	return e
}

func (e *effects) update(dt float64) {
	e.reveal.update(dt)
	e.fadeUp.update(dt)
	e.bounce.update(dt)
	e.pulse.update(dt)
	e.float.update(dt)
	e.glow.update(dt)
	e.shimmer.update(dt)
}

// enterScene restarts the entrance animations.
func (e *effects) enterScene() {
	e.reveal.restart()
	e.fadeUp.restart()
}

// revealOffset is the card's vertical slide during its entrance.
func (e *effects) revealOffset() float64 {
	return 60 * (1 - e.reveal.value)
}

// revealScale grows the card from 0.9 to 1.
func (e *effects) revealScale() float64 {
	return 0.9 + 0.1*e.reveal.value
}

// pulseScale is the accept button's breathing scale, 1 to 1.08.
func (e *effects) pulseScale() float64 {
	return 1 + 0.08*e.pulse.value
}

// floatOffset bobs ornaments up to 12px.
func (e *effects) floatOffset() float64 {
	return -12 * e.float.value
}

// bounceScale dips the decline control to 0.9 and back after a dodge.
func (e *effects) bounceScale() float64 {
	return 1 - 0.1*math.Sin(math.Pi*e.bounce.value)
}

// petalFrame is the animated state of one petal at a point in time.
type petalFrame struct {
	x, y     float64
	rotation float64 // radians
	alpha    float64
	visible  bool
}

// petalAt places p after elapsed seconds in a w x h viewport. A petal waits
// out its delay above the screen, then falls from -30px to 110% of the
// height in a loop, drifting 60px right and turning two full rotations.
func petalAt(p card.Petal, elapsed, w, h float64) petalFrame {
	if elapsed < p.FallDelay || p.FallDuration <= 0 {
		return petalFrame{}
	}
	t := math.Mod(elapsed-p.FallDelay, p.FallDuration) / p.FallDuration

	var fade float64
	switch {
	case t < 0.10:
		fade = 0.7 * t / 0.10
	case t < 0.85:
		fade = 0.7 - 0.2*(t-0.10)/0.75
	default:
		fade = 0.5 * (1 - (t-0.85)/0.15)
	}

	return petalFrame{
		x:        p.HorizontalPosition/100*w + 60*t,
		y:        -30 + t*(1.1*h+30),
		rotation: (p.Rotation + 720*t) * math.Pi / 180,
		alpha:    p.Opacity * fade,
		visible:  true,
	}
}

// burstFrame is the animated state of one burst particle.
type burstFrame struct {
	x, y    float64
	scale   float64
	alpha   float64
	visible bool
}

// burstAt places bp after elapsed seconds since its burst began, flying out
// from (cx, cy). Each particle waits its StartDelay, then travels for
// BurstFlight seconds, holding full opacity for the first 80%.
func burstAt(bp card.BurstParticle, elapsed, cx, cy float64) burstFrame {
	local := elapsed - bp.StartDelay
	if local < 0 || local >= config.BurstFlight {
		return burstFrame{}
	}
	p := local / config.BurstFlight
	eased := float64(ease.OutQuad(float32(p), 0, 1, 1))

	alpha := 1.0
	if p > 0.8 {
		alpha = 1 - (p-0.8)/0.2
	}
	return burstFrame{
		x:       cx + bp.TranslateX*eased,
		y:       cy + bp.TranslateY*eased,
		scale:   eased,
		alpha:   alpha,
		visible: true,
	}
}
