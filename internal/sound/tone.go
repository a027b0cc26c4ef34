package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a sine sweep from freq to endFreq with a short attack and an
// exponential decay.
type tone struct {
	sr      beep.SampleRate
	freq    float64
	endFreq float64
	gain    float64
	decay   float64

	pos    int
	n      int
	attack int
	phase  float64
}

func newTone(sr beep.SampleRate, freq, endFreq float64, d time.Duration, gain, decay float64) *tone {
	return &tone{
		sr:      sr,
		freq:    freq,
		endFreq: endFreq,
		gain:    gain,
		decay:   decay,
		n:       sr.N(d),
		attack:  sr.N(5 * time.Millisecond),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.n {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.n {
			return i, true
		}
		p := float64(t.pos) / float64(t.n)
		f := t.freq + (t.endFreq-t.freq)*p
		t.phase += f / float64(t.sr)
		if t.phase >= 1 {
			t.phase -= 1
		}

		env := math.Exp(-t.decay * p)
		if t.attack > 0 && t.pos < t.attack {
			env *= float64(t.pos) / float64(t.attack)
		}
		v := math.Sin(2*math.Pi*t.phase) * env * t.gain
		samples[i] = [2]float64{v, v}
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// chime is a rising major arpeggio ending on a held octave.
func chime(sr beep.SampleRate) beep.Streamer {
	notes := []float64{1046.50, 1318.51, 1567.98}
	parts := make([]beep.Streamer, 0, len(notes)+1)
	for _, f := range notes {
		parts = append(parts, newTone(sr, f, f, 120*time.Millisecond, 0.25, 2))
	}
	parts = append(parts, newTone(sr, 2093.00, 2093.00, 700*time.Millisecond, 0.3, 4))
	return beep.Seq(parts...)
}

// blip is a quick falling "boing" for a dodge.
func blip(sr beep.SampleRate) beep.Streamer {
	return newTone(sr, 660, 330, 140*time.Millisecond, 0.2, 3)
}
