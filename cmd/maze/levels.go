package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/chase"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels that would be played",
	Long: `Shows the level rotation: bundled levels, or the levels found in
--levels-dir (or levels.dir in the config).`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	tpls, err := chase.Templates()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Levels:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, t := range tpls {
		maxNameLen = max(maxNameLen, len(t.Name))
	}

	fmt.Fprintf(out, "  %-3s  %-*s  %-7s  %-7s  %s\n", "#", maxNameLen, "Name", "Size", "Pickups", "Chasers")
	fmt.Fprintf(out, "  %-3s  %-*s  %-7s  %-7s  %s\n", "-", maxNameLen, "----", "----", "-------", "-------")

	for i, t := range tpls {
		size := fmt.Sprintf("%dx%d", t.Width(), t.Height())
		fmt.Fprintf(out, "  %-3d  %-*s  %-7s  %-7d  %d\n", i+1, maxNameLen, t.Name, size, t.Pickups(), len(t.Adversaries))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'maze play --level <#>' to start at a level.")
	return nil
}
