package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Button dimensions
	ButtonHeight     = 44
	ButtonPaddingX   = 36
	ButtonGap        = 24
	DeclineMinWidth  = 110
	StatusLineX      = 12
	StatusLineY      = 8
	CardMaxWidth     = 560
	CardPadding      = 40
	LetterLineHeight = 20

	// Animation timing (seconds)
	RevealDuration   = 0.8
	FadeUpDuration   = 1.0
	PulsePeriod      = 2.0
	FloatPeriod      = 3.0
	ShimmerPeriod    = 4.0
	GlowPeriod       = 3.0
	BounceDuration   = 0.2
	BurstFlight      = 1.4

	// Audio
	SampleRate   = 44100
	AudioBuffer  = time.Second / 20
	VisualRing   = 8192
	LevelSamples = 2048
	LevelSmooth  = 0.6

	// Terminal surface
	TermFrame      = 16 * time.Millisecond
	TermCellWidth  = 8  // pixels per column when scaling burst offsets
	TermCellHeight = 16 // pixels per row
	TermTextWidth  = 64
)
