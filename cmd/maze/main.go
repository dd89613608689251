// maze is a single-player maze chase for the terminal.
//
// Usage:
//
//	maze play             - Play, starting at --level
//	maze menu             - Pick a starting level, play, see session scores
//	maze levels           - List the levels that would be played
//	maze config           - Print the resolved configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: timing.tick_rate from config)
//	--seed <value>        - RNG seed for reproducible runs
//	--config <path>       - Config file to use instead of the search path
//	--levels-dir <dir>    - Load *.yaml levels from dir
//	--log <path>          - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/chase"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagLevelsDir string
	flagLogPath   string

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze Chase - eat every pickup, dodge the chasers",
	Long: `Maze Chase is a tile maze game for the terminal. Steer through the
maze, collect every pickup to clear the level, and avoid the chasers.
Each chaser tier hunts you more often than the last.

Available commands:
  play     - Start playing right away
  menu     - Pick a starting level and see session scores
  levels   - List levels
  config   - Show the resolved configuration

Examples:
  maze play
  maze play --level 2 --seed 42
  maze menu --levels-dir ./my-levels
  maze config --config ./maze.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = timing.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of level YAML files")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies global flags before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "maze",
			Level:           log.DebugLevel,
		})
	}

	// The TUI owns the terminal, so the game never logs to stderr.
	chase.SetLogger(logger)
	chase.SetConfigPath(flagConfig)
	chase.SetLevelsDir(flagLevelsDir)
	return nil
}
