// Package sound plays the card's audio: short synthesized cues for the
// accept and decline actions and an optional looping soundtrack whose
// recent level the renderer can read.
package sound

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/valentine/internal/config"
)

// ErrUnsupported is returned for soundtrack files with an unknown extension.
var ErrUnsupported = errors.New("unsupported audio file type")

// Player owns the speaker. All cues are mixed into one stream; the zero
// Player (or one whose Init failed) ignores every call.
type Player struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	mixer       *beep.Mixer
	tap         *visualTap
	volume      *effects.Volume
	track       *beep.Ctrl
	trackCloser func()
	level       float64
	initialized bool
}

// NewPlayer returns an uninitialized player at the card's sample rate.
func NewPlayer() *Player {
	return &Player{
		sr:    beep.SampleRate(config.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. volume is a base-2 exponent (0 is unity).
func (p *Player) Init(volume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(config.AudioBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	p.tap = newVisualTap(p.mixer, config.VisualRing)
	p.volume = &effects.Volume{Streamer: p.tap, Base: 2, Volume: volume}
	speaker.Play(p.volume)
	p.initialized = true
	log.Printf("[Sound] speaker ready at %d Hz", int(p.sr))
	return nil
}

// Ready reports whether the speaker was initialized.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayChime plays the acceptance cue.
func (p *Player) PlayChime() {
	p.add(chime(p.sr))
}

// PlayBlip plays the dodge cue.
func (p *Player) PlayBlip() {
	p.add(blip(p.sr))
}

func (p *Player) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlaySoundtrack decodes path and loops it under the cues, replacing any
// previous soundtrack.
func (p *Player) PlaySoundtrack(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return nil
	}

	streamer, format, closeFn, err := openTrack(path)
	if err != nil {
		return err
	}

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != p.sr {
		s = beep.Resample(4, format.SampleRate, p.sr, s)
	}
	ctrl := &beep.Ctrl{Streamer: s}

	speaker.Lock()
	if p.track != nil {
		p.track.Streamer = nil
	}
	p.mixer.Add(ctrl)
	speaker.Unlock()

	if p.trackCloser != nil {
		p.trackCloser()
	}
	p.track = ctrl
	p.trackCloser = closeFn
	log.Printf("[Sound] soundtrack %s (%d Hz)", filepath.Base(path), int(format.SampleRate))
	return nil
}

// ToggleSoundtrack pauses or resumes the soundtrack.
func (p *Player) ToggleSoundtrack() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.track == nil {
		return
	}
	speaker.Lock()
	p.track.Paused = !p.track.Paused
	speaker.Unlock()
}

// UpdateLevel samples the recent output and smooths it. Call once per frame.
func (p *Player) UpdateLevel() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tap == nil {
		return 0
	}
	mag := rmsLevel(p.tap.snapshot(config.LevelSamples))
	p.level = config.LevelSmooth*p.level + (1-config.LevelSmooth)*mag
	return p.level
}

// Close stops playback and releases the soundtrack file.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	if p.trackCloser != nil {
		p.trackCloser()
		p.trackCloser = nil
	}
	p.track = nil
	p.initialized = false
}

// ChooseSoundtrack asks the user for an audio file. A cancelled dialog
// returns an empty path and no error.
func ChooseSoundtrack() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose a Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("soundtrack dialog: %w", err)
	}
	return filename, nil
}

// openTrack decodes path by extension.
func openTrack(path string) (beep.StreamSeekCloser, beep.Format, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, nil, fmt.Errorf("open soundtrack: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("decode soundtrack: %w", err)
	}

	closeFn := func() {
		_ = streamer.Close()
		_ = f.Close()
	}
	return streamer, format, closeFn, nil
}
