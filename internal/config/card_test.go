package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iburimskiy/valentine/internal/card"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Taunts) != len(card.DefaultTaunts) {
		t.Errorf("taunts = %d, want %d", len(cfg.Taunts), len(card.DefaultTaunts))
	}
	cfg.Taunts[0] = "changed"
	if card.DefaultTaunts[0] == "changed" {
		t.Error("Default must copy the taunt list")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Config)
	}{
		{
			name: "overlay keeps defaults",
			yamlContent: `
copy:
  greeting: "Dear Sam,"
seed: 7
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Copy.Greeting != "Dear Sam," {
					t.Errorf("greeting = %q", cfg.Copy.Greeting)
				}
				if cfg.Copy.Question != Default().Copy.Question {
					t.Errorf("question lost its default: %q", cfg.Copy.Question)
				}
				if cfg.Window.Width != WindowWidth {
					t.Errorf("window width = %d, want %d", cfg.Window.Width, WindowWidth)
				}
				if cfg.Seed != 7 {
					t.Errorf("seed = %d, want 7", cfg.Seed)
				}
			},
		},
		{
			name: "taunts replaced",
			yamlContent: `
taunts: ["No", "Sure?", "Really sure?"]
control:
  width: 120
  height: 44
`,
			validate: func(t *testing.T, cfg *Config) {
				if len(cfg.Taunts) != 3 || cfg.Taunts[2] != "Really sure?" {
					t.Errorf("taunts = %v", cfg.Taunts)
				}
				fp := cfg.Control.Footprint()
				if fp.Width != 120 || fp.Height != 44 {
					t.Errorf("footprint = %+v", fp)
				}
			},
		},
		{
			name: "audio section",
			yamlContent: `
audio:
  enabled: false
  volume: 0.5
  soundtrack: music/song.mp3
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Audio.Enabled {
					t.Error("audio should be disabled")
				}
				if cfg.Audio.Soundtrack != "music/song.mp3" {
					t.Errorf("soundtrack = %q", cfg.Audio.Soundtrack)
				}
			},
		},
		{
			name:        "empty taunts",
			yamlContent: "taunts: []\n",
			wantErr:     true,
			errContains: "taunts must not be empty",
		},
		{
			name: "bad window",
			yamlContent: `
window:
  width: 0
`,
			wantErr:     true,
			errContains: "window size must be positive",
		},
		{
			name: "volume out of range",
			yamlContent: `
audio:
  volume: 9
`,
			wantErr:     true,
			errContains: "audio volume",
		},
		{
			name:        "malformed yaml",
			yamlContent: "copy: [unterminated\n",
			wantErr:     true,
			errContains: "failed to parse card config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "card.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read card config") {
		t.Fatalf("err = %v, want read failure", err)
	}
}
