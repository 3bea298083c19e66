package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-platformer/internal/levels"
	"github.com/vovakirdan/tile-platformer/internal/sim"
)

var (
	flagScript string
	flagFrames int
	flagEvery  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <level>",
	Short: "Run scripted input through a level",
	Long: `Plays a level headlessly at a fixed timestep. Input comes from a script of
whitespace-separated tokens: an action (left, right, jump, idle, or several
joined with '+') optionally followed by ':ticks'.

Examples:
  platformer simulate 01-intro --script "right:30 jump right:45 idle:60"
  platformer simulate 02-platforms --script "right+jump:20 right:80" --every 5
  platformer simulate 03-crusher --frames 300`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&flagScript, "script", "s", "", "Input script")
	simulateCmd.Flags().IntVarP(&flagFrames, "frames", "n", 0, "Ticks to run (default: script length, or 120)")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 1, "Print every Nth frame (0 = summary only)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	st := newStyles()

	cfg, err := loadPlayerConfig(cmd)
	if err != nil {
		return err
	}

	lvl, err := levels.Resolve(args[0])
	if err != nil {
		return err
	}

	script, err := sim.ParseScript(flagScript)
	if err != nil {
		return err
	}

	frames := flagFrames
	if frames <= 0 {
		frames = script.Len()
	}
	if frames <= 0 {
		frames = 120
	}

	runner, err := sim.NewRunner(lvl, cfg, sim.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println(st.title.Render(fmt.Sprintf("%s (%s) - %d ticks at %d fps", lvl.Name, lvl.ID, frames, cfg.Runtime.TickRate)))
	fmt.Println()

	if flagEvery > 0 {
		fmt.Println(st.header.Render(fmt.Sprintf("%6s  %10s  %10s  %9s  %9s  %s", "tick", "x", "y", "vx", "vy", "events")))
	}

	sum, err := runner.Run(ctx, frames, script, func(f sim.Frame) {
		notable := f.HitH || f.HitV || f.Squished
		if flagEvery <= 0 || (f.Tick%flagEvery != 0 && !notable) {
			return
		}
		events := frameEvents(f)
		line := fmt.Sprintf("%6d  %10.2f  %10.2f  %9.2f  %9.2f  ", f.Tick, f.Pos.X, f.Pos.Y, f.Speed.X, f.Speed.Y)
		fmt.Println(line + st.event.Render(events))
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(st.header.Render("Summary"))
	fmt.Printf("  ticks:        %d\n", sum.Ticks)
	fmt.Printf("  final:        %v\n", sum.Final)
	fmt.Printf("  highest y:    %g\n", sum.MinY)
	fmt.Printf("  landings:     %d\n", sum.Landings)
	fmt.Printf("  ground ticks: %d\n", sum.GroundTicks)
	fmt.Printf("  wall hits:    %d\n", sum.WallHits)
	fmt.Printf("  ceiling hits: %d\n", sum.CeilingHits)
	if sum.Respawns > 0 {
		fmt.Println(st.bad.Render(fmt.Sprintf("  respawns:     %d", sum.Respawns)))
	} else {
		fmt.Printf("  respawns:     %d\n", sum.Respawns)
	}
	return nil
}

// frameEvents describes the collisions of one frame, e.g. "ground wall".
func frameEvents(f sim.Frame) string {
	var ev []string
	if f.OnGround {
		ev = append(ev, "ground")
	}
	if f.HitH {
		ev = append(ev, "wall")
	}
	if f.HitCeiling {
		ev = append(ev, "ceiling")
	} else if f.HitV {
		ev = append(ev, "land")
	}
	if f.Squished {
		ev = append(ev, "crushed")
	}
	return strings.Join(ev, " ")
}
