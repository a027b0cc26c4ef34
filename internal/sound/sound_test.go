package sound

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if math.Abs(smp[0]) > 1 || math.Abs(smp[1]) > 1 {
				t.Fatalf("sample %v out of [-1, 1]", smp)
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never drained")
	return total
}

func TestToneLengthAndRange(t *testing.T) {
	sr := beep.SampleRate(44100)
	got := drain(t, newTone(sr, 440, 220, 100*time.Millisecond, 0.5, 3))
	if want := sr.N(100 * time.Millisecond); got != want {
		t.Errorf("tone produced %d samples, want %d", got, want)
	}
}

func TestChimeAndBlipDrain(t *testing.T) {
	sr := beep.SampleRate(44100)
	if n := drain(t, chime(sr)); n < sr.N(time.Second) {
		t.Errorf("chime too short: %d samples", n)
	}
	if n := drain(t, blip(sr)); n != sr.N(140*time.Millisecond) {
		t.Errorf("blip length = %d", n)
	}
}

type constStreamer float64

func (c constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{float64(c), float64(c)}
	}
	return len(samples), true
}

func (constStreamer) Err() error { return nil }

type countStreamer struct{ next float64 }

func (c *countStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{c.next, c.next}
		c.next++
	}
	return len(samples), true
}

func (*countStreamer) Err() error { return nil }

func TestVisualTapSnapshotOrder(t *testing.T) {
	tap := newVisualTap(&countStreamer{}, 8)
	buf := make([][2]float64, 5)
	tap.Stream(buf)
	tap.Stream(buf) // 10 samples into a ring of 8

	got := tap.snapshot(4)
	want := []float64{6, 7, 8, 9}
	for i := range want {
		if got[i][0] != want[i] {
			t.Fatalf("snapshot = %v, want %v", got, want)
		}
	}

	if n := len(tap.snapshot(100)); n != 8 {
		t.Errorf("oversized snapshot returned %d samples, want 8", n)
	}
}

func TestRMSLevel(t *testing.T) {
	if got := rmsLevel(nil); got != 0 {
		t.Errorf("empty level = %f", got)
	}
	silent := make([][2]float64, 64)
	if got := rmsLevel(silent); got != 0 {
		t.Errorf("silence level = %f", got)
	}

	tap := newVisualTap(constStreamer(1), 64)
	tap.Stream(make([][2]float64, 64))
	if got := rmsLevel(tap.snapshot(64)); math.Abs(got-1) > 1e-9 {
		t.Errorf("full-scale level = %f, want 1", got)
	}
}

func TestOpenTrack(t *testing.T) {
	dir := t.TempDir()

	wavPath := filepath.Join(dir, "tone.wav")
	f, err := os.Create(wavPath)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	src := beep.Take(format.SampleRate.N(50*time.Millisecond), constStreamer(0.25))
	if err := wav.Encode(f, src, format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	_ = f.Close()

	streamer, got, closeFn, err := openTrack(wavPath)
	if err != nil {
		t.Fatalf("openTrack: %v", err)
	}
	defer closeFn()
	if got.SampleRate != format.SampleRate {
		t.Errorf("sample rate = %d, want %d", got.SampleRate, format.SampleRate)
	}
	if streamer.Len() != format.SampleRate.N(50*time.Millisecond) {
		t.Errorf("len = %d", streamer.Len())
	}

	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("la la"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := openTrack(txt); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}

	if _, _, _, err := openTrack(filepath.Join(dir, "missing.mp3")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	p.PlayChime()
	p.PlayBlip()
	p.ToggleSoundtrack()
	if err := p.PlaySoundtrack("whatever.mp3"); err != nil {
		t.Errorf("PlaySoundtrack on silent player: %v", err)
	}
	if lvl := p.UpdateLevel(); lvl != 0 {
		t.Errorf("level = %f, want 0", lvl)
	}
	if p.Ready() {
		t.Error("player should not be ready")
	}
	p.Close()
}
