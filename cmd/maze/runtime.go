package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// runtimeConfig builds the platform config from the terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	cfg.Seed = flagSeed
	cfg.TickRate = tickRate()
	return cfg
}

// tickRate resolves --fps, falling back to the configured rate.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	mc, err := config.LoadMaze(flagConfig)
	if err != nil {
		logger.Warn("using default tick rate", "err", err)
		return core.DefaultTickRate
	}
	return mc.Timing.TickRate
}
