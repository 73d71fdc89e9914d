package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pang/internal/config"
	"github.com/vovakirdan/tui-pang/internal/core"
	"github.com/vovakirdan/tui-pang/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start the game on the title screen. Press space to begin.

Examples:
  pang play
  pang play --fps 60
  pang play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig(settings)
	logger.Debug("starting", "screen_w", cfg.ScreenW, "screen_h", cfg.ScreenH, "fps", cfg.TickRate, "seed", cfg.Seed)

	err = tui.Run(cfg, settings, logger)
	if err != nil {
		logger.Error("game exited", "err", err)
	}
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig combines the loaded settings, the flags and the terminal size.
func runtimeConfig(settings config.Config) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.CanvasW = settings.Display.CanvasWidth
	cfg.CanvasH = settings.Display.CanvasHeight
	cfg.TickRate = settings.Display.TickRate
	cfg.Seed = flagSeed

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
