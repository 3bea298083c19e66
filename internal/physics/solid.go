package physics

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tile-platformer/internal/core"
)

// Solid is a moving box that blocks actors like a Solid tile does.
// Moving it carries actors riding on top and pushes actors in its way.
type Solid struct {
	Pos        core.Vec2
	Width      int
	Height     int
	RemainderX float32
	RemainderY float32
	Collidable bool
}

// Rect returns the solid's bounding box.
func (s *Solid) Rect() core.Rect {
	return core.RectAt(s.Pos, s.Width, s.Height)
}

// SolidHandle is an opaque, comparable reference to a moving solid.
type SolidHandle struct {
	index uint32
	gen   uint32
}

// String returns a debug representation such as "solid#0.1".
func (h SolidHandle) String() string {
	return fmt.Sprintf("solid#%d.%d", h.index, h.gen)
}

// AddSolid adds a collidable moving solid.
func (w *World) AddSolid(pos core.Vec2, width, height int) SolidHandle {
	i, g := w.solids.insert(Solid{Pos: pos, Width: width, Height: height, Collidable: true})
	return SolidHandle{index: i, gen: g}
}

// RemoveSolid removes a moving solid.
func (w *World) RemoveSolid(h SolidHandle) error {
	if !w.solids.remove(h.index, h.gen) {
		return fmt.Errorf("remove solid: %w: %s", ErrInvalidHandle, h)
	}
	return nil
}

func (w *World) solid(h SolidHandle) (*Solid, error) {
	s, ok := w.solids.get(h.index, h.gen)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	return s, nil
}

// SolidPos returns the solid's top-left position.
func (w *World) SolidPos(h SolidHandle) (core.Vec2, error) {
	s, err := w.solid(h)
	if err != nil {
		return core.Vec2{}, fmt.Errorf("solid pos: %w", err)
	}
	return s.Pos, nil
}

// SolidRect returns the solid's bounding box.
func (w *World) SolidRect(h SolidHandle) (core.Rect, error) {
	s, err := w.solid(h)
	if err != nil {
		return core.Rect{}, fmt.Errorf("solid rect: %w", err)
	}
	return s.Rect(), nil
}

// MoveSolid moves a solid by (dx, dy) with the same remainder carry actors
// use. Each axis is resolved separately, horizontal first. Actors standing on
// the solid move with it; actors it runs into are pushed ahead of it, and an
// actor that cannot be pushed far enough is marked Squished.
func (w *World) MoveSolid(h SolidHandle, dx, dy float32) error {
	s, err := w.solid(h)
	if err != nil {
		return fmt.Errorf("move solid: %w", err)
	}
	if !finite(dx) {
		dx = 0
	}
	if !finite(dy) {
		dy = 0
	}

	s.RemainderX = w.clampTravel(s.RemainderX + dx)
	s.RemainderY = w.clampTravel(s.RemainderY + dy)
	mx := int(s.RemainderX)
	my := int(s.RemainderY)
	if mx == 0 && my == 0 {
		return nil
	}

	riders := w.ridersOf(s)

	// Actors being pushed or carried must not collide with the mover itself.
	s.Collidable = false
	defer func() { s.Collidable = true }()

	if mx != 0 {
		s.RemainderX -= float32(mx)
		s.Pos.X += float32(mx)
		sr := s.Rect()
		w.actors.Each(func(ah ActorHandle, a *Actor) {
			ar := a.Rect()
			switch {
			case ar.Intersects(sr):
				var push float32
				if mx > 0 {
					push = sr.Right() - ar.X
				} else {
					push = sr.X - ar.Right()
				}
				if w.stepX(a, units(push)) {
					a.Squished = true
				}
			case riders[ah]:
				w.stepX(a, mx)
			}
		})
	}

	if my != 0 {
		s.RemainderY -= float32(my)
		s.Pos.Y += float32(my)
		sr := s.Rect()
		w.actors.Each(func(ah ActorHandle, a *Actor) {
			ar := a.Rect()
			switch {
			case ar.Intersects(sr):
				var push float32
				if my > 0 {
					push = sr.Bottom() - ar.Y
				} else {
					push = sr.Y - ar.Bottom()
				}
				if w.stepY(a, units(push)) {
					a.Squished = true
				}
			case riders[ah]:
				w.stepY(a, my)
			}
		})
	}

	return nil
}

// ridersOf returns the actors standing on top of s.
func (w *World) ridersOf(s *Solid) map[ActorHandle]bool {
	riders := make(map[ActorHandle]bool)
	sr := s.Rect()
	w.actors.Each(func(h ActorHandle, a *Actor) {
		ar := a.Rect()
		if ar.Intersects(sr) {
			return
		}
		feet := ar.Translate(core.V(0, 1))
		if feet.Intersects(sr) && ar.Bottom() <= sr.Y {
			riders[h] = true
		}
	})
	return riders
}

// units rounds a push distance away from zero so the pushed box fully clears.
func units(d float32) int {
	if d > 0 {
		return int(math.Ceil(float64(d)))
	}
	return int(math.Floor(float64(d)))
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
