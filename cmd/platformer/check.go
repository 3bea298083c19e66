package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-platformer/internal/core"
	"github.com/vovakirdan/tile-platformer/internal/levels"
	"github.com/vovakirdan/tile-platformer/internal/physics"
)

var flagDump bool

var checkCmd = &cobra.Command{
	Use:   "check <level>",
	Short: "Validate a level's tile layout",
	Long: `Builds the collision grid for a level and reports whether the layout is
valid. The level is a built-in ID or a path to a YAML file.

Examples:
  platformer check 02-platforms
  platformer check ./levels/mine.yaml --dump`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the collision grid")
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	st := newStyles()

	lvl, err := levels.Resolve(args[0])
	if err != nil {
		return err
	}

	world := physics.NewWorld()
	if err := lvl.Apply(world); err != nil {
		if errors.Is(err, physics.ErrInvalidLayout) {
			fmt.Println(st.bad.Render("InvalidLayout: ") + err.Error())
		}
		return err
	}

	g := world.Grid()
	tw, th := g.TileSize()
	logger.Debug("grid built", "level", lvl.ID, "file", lvl.FilePath)

	fmt.Println(st.title.Render(fmt.Sprintf("%s (%s)", lvl.Name, lvl.ID)))
	if desc := lvl.Description(); desc != "" {
		fmt.Println(st.muted.Render("  " + desc))
	}
	fmt.Printf("  grid:         %dx%d tiles of %gx%g\n", g.Width(), g.Height(), tw, th)
	fmt.Printf("  bounds:       %gx%g\n", g.Bounds().W, g.Bounds().H)
	fmt.Printf("  solid:        %d\n", g.Count(physics.TileSolid))
	fmt.Printf("  jump-through: %d\n", g.Count(physics.TileJumpThrough))
	fmt.Printf("  platforms:    %d\n", len(lvl.Platforms))
	if lvl.HasSpawn {
		fmt.Printf("  spawn:        %v\n", lvl.Spawn)

		cfg, err := loadPlayerConfig(cmd)
		if err != nil {
			return err
		}
		h := world.AddActor(lvl.Spawn, cfg.Body.Width, cfg.Body.Height)
		if stuck, _ := world.CollideCheck(h, core.Vec2{}); stuck {
			fmt.Println(st.bad.Render("  warning: ") + "player body overlaps solid geometry at spawn")
		}
	}

	if flagDump {
		fmt.Println()
		for _, row := range st.gridRows(g) {
			fmt.Println("  " + row)
		}
	}

	fmt.Println()
	fmt.Println(st.good.Render("OK"))
	return nil
}
