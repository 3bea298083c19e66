package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-platformer/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all built-in levels",
	Long:  `Shows the levels embedded in the binary with their grid size.`,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		return err
	}

	st := newStyles()

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println(st.title.Render("Built-in levels:"))
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxIDLen, "ID", "Size", "Platforms", "Name")
	fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxIDLen, "--", "----", "---------", "----")

	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height())
		fmt.Printf("  %-*s  %-7s  %-9d  %s\n", maxIDLen, l.ID, size, len(l.Platforms), l.Name)
	}

	fmt.Println()
	fmt.Println(st.muted.Render("Run 'platformer simulate <id>' to play a level."))
	return nil
}
