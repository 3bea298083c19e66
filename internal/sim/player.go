package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tile-platformer/internal/config"
	"github.com/vovakirdan/tile-platformer/internal/core"
	"github.com/vovakirdan/tile-platformer/internal/physics"
)

// DefaultSpawn is used when a level does not place the player.
var DefaultSpawn = core.V(200, 100)

// Player is the run-and-jump controller. All movement goes through the
// world's actor primitives; the player only owns its speed.
type Player struct {
	world  *physics.World
	handle physics.ActorHandle
	cfg    config.PlayerConfig
	spawn  core.Vec2

	Speed      core.Vec2 // Units per second
	onGround   bool      // Ground probe result at the start of the last tick
	hitH       bool      // Last MoveH was stopped
	hitV       bool      // Last MoveV was stopped
	hitCeiling bool      // Last MoveV was stopped while rising
	squished   bool      // Respawned this tick after being crushed
	respawns   int

	prev core.InputFrame // Input of the previous tick, for press edges
}

// NewPlayer adds the player's actor to the world at spawn.
func NewPlayer(w *physics.World, spawn core.Vec2, cfg config.PlayerConfig) *Player {
	return &Player{
		world:  w,
		handle: w.AddActor(spawn, cfg.Body.Width, cfg.Body.Height),
		cfg:    cfg,
		spawn:  spawn,
	}
}

// Handle returns the player's actor handle.
func (p *Player) Handle() physics.ActorHandle {
	return p.handle
}

// Tick advances the player by one fixed step. Jump fires on the tick it is
// pressed; holding it does not jump again on landing.
func (p *Player) Tick(dt float32, in core.InputFrame) error {
	jumpPressed := in.Has(core.ActionJump) && !p.prev.Has(core.ActionJump)
	p.prev = in.Clone()

	crushed, err := p.world.Squished(p.handle)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	p.squished = crushed
	if crushed {
		if err := p.world.SetActorPos(p.handle, p.spawn); err != nil {
			return fmt.Errorf("player: %w", err)
		}
		p.Speed = core.Vec2{}
		p.respawns++
	}

	onGround, err := p.world.CollideCheck(p.handle, core.V(0, 1))
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	p.onGround = onGround

	phys := p.cfg.Physics
	if !onGround {
		p.Speed.Y += phys.Gravity * dt
		if phys.MaxFallSpeed > 0 {
			p.Speed.Y = core.ClampF(p.Speed.Y, -math.MaxFloat32, phys.MaxFallSpeed)
		}
	}

	switch {
	case in.Has(core.ActionRight):
		p.Speed.X = phys.MoveSpeed
	case in.Has(core.ActionLeft):
		p.Speed.X = -phys.MoveSpeed
	default:
		p.Speed.X = 0
	}

	if jumpPressed && onGround {
		p.Speed.Y = phys.JumpSpeed
	}

	if p.hitH, err = p.world.MoveH(p.handle, p.Speed.X*dt); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if p.hitV, err = p.world.MoveV(p.handle, p.Speed.Y*dt); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	p.hitCeiling = p.hitV && p.Speed.Y < 0
	if p.hitV {
		p.Speed.Y = 0
	}
	return nil
}

// Pos returns the player's top-left position.
func (p *Player) Pos() core.Vec2 {
	pos, _ := p.world.ActorPos(p.handle)
	return pos
}

// OnGround reports the ground probe taken at the start of the last tick.
func (p *Player) OnGround() bool {
	return p.onGround
}

// Respawns returns how many times the player was crushed and respawned.
func (p *Player) Respawns() int {
	return p.respawns
}
