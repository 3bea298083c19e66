package sim

import (
	"fmt"

	"github.com/vovakirdan/tile-platformer/internal/core"
	"github.com/vovakirdan/tile-platformer/internal/levels/formats"
	"github.com/vovakirdan/tile-platformer/internal/physics"
)

// Platform drives a moving solid at a constant velocity, reversing it every
// FlipEvery ticks.
type Platform struct {
	world     *physics.World
	handle    physics.SolidHandle
	velocity  core.Vec2
	flipEvery int
	ticks     int
}

// NewPlatform adds the platform's solid to the world.
func NewPlatform(w *physics.World, def formats.Platform) *Platform {
	return &Platform{
		world:     w,
		handle:    w.AddSolid(def.Pos, def.W, def.H),
		velocity:  def.Velocity,
		flipEvery: def.FlipEvery,
	}
}

// Tick moves the platform by one fixed step.
func (p *Platform) Tick(dt float32, _ core.InputFrame) error {
	if err := p.world.MoveSolid(p.handle, p.velocity.X*dt, p.velocity.Y*dt); err != nil {
		return fmt.Errorf("platform: %w", err)
	}
	p.ticks++
	if p.flipEvery > 0 && p.ticks%p.flipEvery == 0 {
		p.velocity = p.velocity.Scale(-1)
	}
	return nil
}

// Pos returns the platform's top-left position.
func (p *Platform) Pos() core.Vec2 {
	pos, _ := p.world.SolidPos(p.handle)
	return pos
}
