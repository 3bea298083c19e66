// Package sim drives a level headlessly at a fixed timestep.
// It composes the collision engine's primitives into the game rules
// (gravity, running, jumping, riding platforms) and records a frame trace.
package sim

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-platformer/internal/config"
	"github.com/vovakirdan/tile-platformer/internal/core"
	"github.com/vovakirdan/tile-platformer/internal/levels"
	"github.com/vovakirdan/tile-platformer/internal/physics"
)

// Tickable is anything advanced once per simulation tick.
type Tickable interface {
	Tick(dt float32, in core.InputFrame) error
}

// Frame is the player's state after one tick.
type Frame struct {
	Tick       int
	Pos        core.Vec2
	Speed      core.Vec2
	OnGround   bool
	HitH       bool
	HitV       bool
	HitCeiling bool
	Squished   bool
}

// Summary aggregates a run.
type Summary struct {
	Ticks       int
	Final       core.Vec2
	Landings    int
	WallHits    int
	CeilingHits int
	Respawns    int
	GroundTicks int
	MinY        float32 // Highest point reached (smallest y)
}

// Runner owns a world built from a level and steps it.
type Runner struct {
	level     levels.Level
	world     *physics.World
	player    *Player
	platforms []*Platform
	tickables []Tickable
	dt        float32
	tick      int
	logger    *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for simulation events.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner builds the level's world, its platforms and the player.
func NewRunner(level levels.Level, cfg config.PlayerConfig, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		level:  level,
		world:  physics.NewWorld(),
		dt:     core.RuntimeConfig{TickRate: cfg.Runtime.TickRate}.Dt(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := level.Apply(r.world); err != nil {
		return nil, err
	}

	// Platforms move before the player so riders are carried within the tick.
	for _, def := range level.Platforms {
		p := NewPlatform(r.world, def)
		r.platforms = append(r.platforms, p)
		r.tickables = append(r.tickables, p)
	}

	spawn := DefaultSpawn
	if level.HasSpawn {
		spawn = level.Spawn
	}
	r.player = NewPlayer(r.world, spawn, cfg)
	r.tickables = append(r.tickables, r.player)

	r.logger.Debug("level ready",
		"level", level.ID,
		"grid", fmt.Sprintf("%dx%d", r.world.Grid().Width(), r.world.Grid().Height()),
		"platforms", len(r.platforms),
		"spawn", spawn)

	return r, nil
}

// World returns the runner's collision world.
func (r *Runner) World() *physics.World {
	return r.world
}

// Player returns the player controller.
func (r *Runner) Player() *Player {
	return r.player
}

// Platforms returns the moving platform drivers in level order.
func (r *Runner) Platforms() []*Platform {
	return r.platforms
}

// Step advances every tickable once with the given input.
func (r *Runner) Step(in core.InputFrame) (Frame, error) {
	for _, t := range r.tickables {
		if err := t.Tick(r.dt, in); err != nil {
			return Frame{}, fmt.Errorf("tick %d: %w", r.tick, err)
		}
	}
	r.tick++

	p := r.player
	f := Frame{
		Tick:       r.tick,
		Pos:        p.Pos(),
		Speed:      p.Speed,
		OnGround:   p.onGround,
		HitH:       p.hitH,
		HitV:       p.hitV,
		HitCeiling: p.hitCeiling,
		Squished:   p.squished,
	}
	if f.Squished {
		r.logger.Info("player crushed, respawning", "tick", f.Tick, "spawn", p.spawn)
	}
	return f, nil
}

// Run steps the simulation frames times, feeding it the script's input.
// fn, when non-nil, receives every frame. The context is checked between
// ticks.
func (r *Runner) Run(ctx context.Context, frames int, script Script, fn func(Frame)) (Summary, error) {
	sum := Summary{MinY: r.player.Pos().Y}

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		f, err := r.Step(script.Frame(i))
		if err != nil {
			return sum, err
		}

		sum.Ticks++
		sum.Final = f.Pos
		if f.Pos.Y < sum.MinY {
			sum.MinY = f.Pos.Y
		}
		if f.OnGround {
			sum.GroundTicks++
		}
		if f.HitV && !f.HitCeiling {
			sum.Landings++
			r.logger.Debug("landed", "tick", f.Tick, "x", f.Pos.X, "y", f.Pos.Y)
		}
		if f.HitH {
			sum.WallHits++
		}
		if f.HitCeiling {
			sum.CeilingHits++
			r.logger.Debug("bumped ceiling", "tick", f.Tick, "y", f.Pos.Y)
		}
		if f.Squished {
			sum.Respawns++
		}

		if fn != nil {
			fn(f)
		}
	}

	r.logger.Info("simulation finished",
		"level", r.level.ID,
		"ticks", sum.Ticks,
		"final", sum.Final,
		"landings", sum.Landings)

	return sum, nil
}
