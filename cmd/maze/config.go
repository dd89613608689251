package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Prints the configuration the game would run with, after applying
the search path (or --config) over the built-in defaults. The output is
valid input for --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
