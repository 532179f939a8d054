package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"maxcatch/internal/audio"
	"maxcatch/internal/catcher"
	"maxcatch/internal/config"
	"maxcatch/internal/core"
	"maxcatch/internal/platform/tui"
	"maxcatch/internal/sprite"
)

var (
	flagConfig   string
	flagInfinite bool
	flagMute     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  P          - Pause
  Esc        - End the session
  Q/Ctrl+C   - Quit

Examples:
  maxcatch play
  maxcatch play --infinite
  maxcatch play --seed 42 --fps 60
  maxcatch play --config ./my-catcher.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagInfinite, "infinite", false, "Never end the game on misses")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "maxcatch",
	})

	cfg, err := config.LoadCatcher(flagConfig)
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}

	store, err := sprite.Load()
	if err != nil {
		logger.Error("could not load sprites", "error", err)
		os.Exit(1)
	}

	game, err := catcher.New(cfg, store)
	if err != nil {
		logger.Error("could not create game", "error", err)
		os.Exit(1)
	}

	sounds := audio.NewManager()
	sounds.SetMuted(flagMute)
	if !flagMute {
		if audioErr := sounds.Init(); audioErr != nil {
			logger.Warn("audio unavailable, continuing silent", "error", audioErr)
		} else {
			for _, b := range cfg.Catalog {
				if !sounds.Knows(b.Sound) {
					logger.Warn("unknown sound cue, bonus will be silent",
						"bonus", b.Name, "sound", b.Sound)
				}
			}
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Infinite: flagInfinite,
	}
	logger.Debug("starting session",
		"game", game.ID(), "sprites", store.Len(), "fps", flagFPS, "infinite", flagInfinite)

	if runErr := tui.Run(game, sounds, rt); runErr != nil {
		logger.Error("error running game", "error", runErr)
		os.Exit(1)
	}

	// Session summary on the plain terminal after the alt screen closes.
	r := game.Report()
	logger.Info("session over", "score", r.Score, "misses", r.Misses, "allowed", r.MissesAllowed)
	fmt.Printf("Final score: %d (misses %d/%d)\n", r.Score, r.Misses, r.MissesAllowed)
	for _, line := range r.Lines {
		fmt.Printf("  %-12s %4d pts  caught %3d  missed %3d\n",
			line.Name, line.Points, line.Hit, line.Miss)
	}
}
