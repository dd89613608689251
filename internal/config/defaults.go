package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the hard-coded Maze Chase configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Board: BoardConfig{
			TileSize: 20,
			Speed:    2,
		},
		Timing: TimingConfig{
			TickRate:       25, // 40ms per tick
			LevelAdvanceMS: 2000,
		},
		Scoring: ScoringConfig{
			PickupReward: 10,
		},
		Rules: RulesConfig{
			WrapPlayer: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
