package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseMaze(DefaultYAML())
	if err != nil {
		t.Fatalf("parseMaze(embedded) error = %v", err)
	}
	if cfg != DefaultMazeConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultMazeConfig())
	}
}

func TestLoadMazeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	body := "board:\n  speed: 4\nrules:\n  wrap_player: false\nlevels:\n  dir: ./mazes\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze() error = %v", err)
	}

	if cfg.Board.Speed != 4 {
		t.Errorf("Board.Speed = %d, expected 4", cfg.Board.Speed)
	}
	if cfg.Board.TileSize != 20 {
		t.Errorf("Board.TileSize = %d, expected default 20", cfg.Board.TileSize)
	}
	if cfg.Rules.WrapPlayer {
		t.Error("Rules.WrapPlayer should be overridden to false")
	}
	if cfg.Levels.Dir != "./mazes" {
		t.Errorf("Levels.Dir = %q, expected ./mazes", cfg.Levels.Dir)
	}
}

func TestLoadMazeErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  speed: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"malformed yaml", bad, "failed to parse"},
		{"speed not below tile size", invalid, "board.speed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadMaze(tc.path)
			if err == nil {
				t.Fatal("LoadMaze() expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error = %q, expected it to mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MazeConfig)
		wantErr bool
	}{
		{"defaults", func(*MazeConfig) {}, false},
		{"zero tile size", func(c *MazeConfig) { c.Board.TileSize = 0 }, true},
		{"zero speed", func(c *MazeConfig) { c.Board.Speed = 0 }, true},
		{"zero tick rate", func(c *MazeConfig) { c.Timing.TickRate = 0 }, true},
		{"negative delay", func(c *MazeConfig) { c.Timing.LevelAdvanceMS = -1 }, true},
		{"instant advance", func(c *MazeConfig) { c.Timing.LevelAdvanceMS = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultMazeConfig()

	if got := cfg.TickInterval(); got != 40*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 40ms", got)
	}
	if got := cfg.LevelAdvanceDelay(); got != 2*time.Second {
		t.Errorf("LevelAdvanceDelay() = %v, expected 2s", got)
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultMazeConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "tile_size: 20") {
		t.Errorf("Marshal() output missing tile_size:\n%s", data)
	}
}
