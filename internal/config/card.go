package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/valentine/internal/card"
)

// Config is the user-editable part of the card: its words, window and sound.
//
// Example file:
//
//	window:
//	  width: 1280
//	  height: 800
//	copy:
//	  greeting: "Dear Sam,"
//	taunts: ["No", "Sure?", "Really sure?"]
//	audio:
//	  soundtrack: music/song.mp3
type Config struct {
	Window  Window   `yaml:"window"`
	Copy    Copy     `yaml:"copy"`
	Taunts  []string `yaml:"taunts"`
	Control Control  `yaml:"control"`
	Audio   Audio    `yaml:"audio"`

	// Seed makes petals, bursts and escapes reproducible when non-zero.
	Seed uint64 `yaml:"seed"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Copy holds every line of text shown on the card.
type Copy struct {
	EnvelopeTitle    string   `yaml:"envelopeTitle"`
	EnvelopeHint     string   `yaml:"envelopeHint"`
	OpenLabel        string   `yaml:"openLabel"`
	LetterHeader     string   `yaml:"letterHeader"`
	Greeting         string   `yaml:"greeting"`
	Letter           []string `yaml:"letter"`
	ContinueLabel    string   `yaml:"continueLabel"`
	Question         string   `yaml:"question"`
	Plea             string   `yaml:"plea"`
	AcceptLabel      string   `yaml:"acceptLabel"`
	CelebrationTitle string   `yaml:"celebrationTitle"`
	CelebrationLine  string   `yaml:"celebrationLine"`
	SignOff          string   `yaml:"signOff"`
}

// Control is the measured footprint of the evasive control. Zero values use
// the card defaults.
type Control struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Footprint converts the control size for the card core.
func (c Control) Footprint() card.Footprint {
	return card.Footprint{Width: c.Width, Height: c.Height}
}

type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	Soundtrack string  `yaml:"soundtrack"`
}

// Default returns the built-in card.
func Default() *Config {
	return &Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Happy Valentine's Day",
		},
		Copy: Copy{
			EnvelopeTitle: "Happy Valentine's Day",
			EnvelopeHint:  "a little something, just for you",
			OpenLabel:     "Open",
			LetterHeader:  "I love you - with all my heart",
			Greeting:      "My dearest,",
			Letter: []string{
				"I've been trying to figure out how to write this for a while now, and I still don't think I have the right words. I just want you to know that I love you with all my heart.",
				"No matter what I do, no matter what happens, I keep finding my way back to you, like some rule of the universe I couldn't break even if I tried.",
				"The longer I know you, the more I fall for you. You make me calm, you make me comfortable, and you make me feel like the best version of myself.",
				"We've taken detours and made wrong turns, but somehow we both ended up here. I want more than \"almost\". I want the real thing, with you, properly.",
			},
			ContinueLabel:    "Continue...",
			Question:         "Will you be my valentine?",
			Plea:             "You've made my heart feel things I never expected. I'd be the luckiest person alive if you'd say yes.",
			AcceptLabel:      "Yes!",
			CelebrationTitle: "You said Yes!",
			CelebrationLine:  "You are everything I could ask for",
			SignOff:          "Happy Valentine's Day",
		},
		Taunts: append([]string(nil), card.DefaultTaunts...),
		Audio: Audio{
			Enabled: true,
			Volume:  -1,
		},
	}
}

// Load reads a YAML card file and overlays it on Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse card config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid card config: %w", err)
	}
	return cfg, nil
}

// Validate checks the ranges the card depends on.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if len(c.Taunts) == 0 {
		errs = append(errs, errors.New("taunts must not be empty"))
	}
	for i, t := range c.Taunts {
		if t == "" {
			errs = append(errs, fmt.Errorf("taunt %d is empty", i))
		}
	}
	if c.Control.Width < 0 || c.Control.Height < 0 {
		errs = append(errs, fmt.Errorf("control footprint must not be negative, got %.0fx%.0f", c.Control.Width, c.Control.Height))
	}
	if c.Audio.Volume < -5 || c.Audio.Volume > 2 {
		errs = append(errs, fmt.Errorf("audio volume %.1f outside [-5, 2]", c.Audio.Volume))
	}
	return errors.Join(errs...)
}
