package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/valentine/internal/card"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/game"
	"github.com/iburimskiy/valentine/internal/sound"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML card file")
	seed := flag.Uint64("seed", 0, "random seed for petals, bursts and escapes (0 = random)")
	mute := flag.Bool("mute", false, "disable all audio")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Printf("[Main] %v, using the built-in card", err)
		} else {
			cfg = loaded
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	ctrl := card.NewController(card.NewSource(cfg.Seed), cfg.Taunts)

	player := sound.NewPlayer()
	if cfg.Audio.Enabled {
		if err := player.Init(cfg.Audio.Volume); err != nil {
			log.Printf("[Main] audio disabled: %v", err)
		} else if cfg.Audio.Soundtrack != "" {
			if err := player.PlaySoundtrack(cfg.Audio.Soundtrack); err != nil {
				log.Printf("[Main] soundtrack: %v", err)
			}
		}
	}
	defer player.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, ctrl, player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("[Main] %v", err)
	}
}
