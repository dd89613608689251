// Package config provides YAML-based configuration loading for the maze
// game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MazeConfig contains all tunable settings for Maze Chase.
type MazeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Rules   RulesConfig   `yaml:"rules"`
	Levels  LevelsConfig  `yaml:"levels"`
}

// BoardConfig defines the pixel geometry of the board.
type BoardConfig struct {
	TileSize int `yaml:"tile_size"` // Side of one tile in pixels
	Speed    int `yaml:"speed"`     // Pixels moved per tick
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickRate       int `yaml:"tick_rate"`        // Ticks per second
	LevelAdvanceMS int `yaml:"level_advance_ms"` // Pause after clearing a level
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	PickupReward int `yaml:"pickup_reward"`
}

// RulesConfig holds rule variations.
type RulesConfig struct {
	WrapPlayer bool `yaml:"wrap_player"` // Player uses the horizontal tunnel like adversaries
}

// LevelsConfig selects where level templates come from.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Empty means the bundled levels
}

// LevelAdvanceDelay returns the pause between clearing a level and the
// next one starting.
func (c MazeConfig) LevelAdvanceDelay() time.Duration {
	return time.Duration(c.Timing.LevelAdvanceMS) * time.Millisecond
}

// TickInterval returns the simulated time covered by one tick.
func (c MazeConfig) TickInterval() time.Duration {
	if c.Timing.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Timing.TickRate)
}

// Validate checks that the configuration describes a playable game.
func (c MazeConfig) Validate() error {
	var errs []error
	if c.Board.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("board.tile_size must be positive, got %d", c.Board.TileSize))
	}
	if c.Board.Speed <= 0 || c.Board.Speed >= c.Board.TileSize {
		errs = append(errs, fmt.Errorf("board.speed must be in [1, tile_size), got %d", c.Board.Speed))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Timing.LevelAdvanceMS < 0 {
		errs = append(errs, fmt.Errorf("timing.level_advance_ms must not be negative, got %d", c.Timing.LevelAdvanceMS))
	}
	return errors.Join(errs...)
}
