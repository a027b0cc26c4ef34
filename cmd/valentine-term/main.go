// Command valentine-term shows the card in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/valentine/internal/card"
	"github.com/iburimskiy/valentine/internal/config"
	"github.com/iburimskiy/valentine/internal/sound"
	"github.com/iburimskiy/valentine/internal/term"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML card file")
	seed := flag.Uint64("seed", 0, "random seed for petals, bursts and escapes (0 = random)")
	mute := flag.Bool("mute", false, "disable all audio")
	logPath := flag.String("log", "", "write logs to this file (the screen is taken over)")
	flag.Parse()

	if err := run(*configPath, *seed, *mute, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "valentine-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, mute bool, logPath string) error {
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	player := sound.NewPlayer()
	if cfg.Audio.Enabled && !mute {
		if err := player.Init(cfg.Audio.Volume); err != nil {
			log.Printf("[Main] audio disabled: %v", err)
		} else if cfg.Audio.Soundtrack != "" {
			if err := player.PlaySoundtrack(cfg.Audio.Soundtrack); err != nil {
				log.Printf("[Main] soundtrack: %v", err)
			}
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := card.NewController(card.NewSource(cfg.Seed), cfg.Taunts)
	return term.New(screen, cfg, ctrl, player).Run(ctx)
}
