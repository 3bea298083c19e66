// Package physics implements tile-grid collision and movement for 2D
// platformer actors.
//
// A World owns one static TileGrid, the actors moving through it and any
// moving solids. Actors move one axis at a time, one whole unit at a time,
// and stop at the first unit that would overlap solid geometry, so they never
// tunnel through tiles regardless of speed. Fractional displacement is carried
// in per-axis remainders between calls.
//
// The package performs no I/O and is not safe for concurrent use; a host
// calling it from several goroutines must serialize each tick's calls.
package physics

import (
	"fmt"

	"github.com/vovakirdan/tile-platformer/internal/core"
)

// minTravel is the smallest per-call travel limit, used when the grid is
// small or empty.
const minTravel = 4096

// World is the collision engine. It is the only writer of actor positions,
// solid positions and tile data.
type World struct {
	grid   *TileGrid
	actors *ActorTable
	solids table[Solid]
}

// NewWorld creates a world with an empty grid and no actors.
func NewWorld() *World {
	return &World{
		grid:   emptyGrid(),
		actors: NewActorTable(),
	}
}

// AddStaticTiledLayer builds the collision grid from a flattened row-major
// tile sequence and replaces the current one. layerIndex is reserved; a world
// has a single collision layer.
func (w *World) AddStaticTiledLayer(tiles []Tile, tileWidth, tileHeight float32, gridWidth, layerIndex int) error {
	g, err := BuildGrid(tiles, tileWidth, tileHeight, gridWidth)
	if err != nil {
		return fmt.Errorf("add static layer %d: %w", layerIndex, err)
	}
	w.grid = g
	return nil
}

// Grid returns the current collision grid.
func (w *World) Grid() *TileGrid {
	return w.grid
}

// AddActor adds an actor with its top-left corner at pos.
func (w *World) AddActor(pos core.Vec2, width, height int) ActorHandle {
	return w.actors.Insert(pos, width, height)
}

// RemoveActor removes an actor; later use of h fails with ErrInvalidHandle.
func (w *World) RemoveActor(h ActorHandle) error {
	if err := w.actors.Remove(h); err != nil {
		return fmt.Errorf("remove actor: %w", err)
	}
	return nil
}

// ActorCount returns the number of live actors.
func (w *World) ActorCount() int {
	return w.actors.Len()
}

// ActorPos returns the actor's top-left position.
func (w *World) ActorPos(h ActorHandle) (core.Vec2, error) {
	a, err := w.actors.Get(h)
	if err != nil {
		return core.Vec2{}, fmt.Errorf("actor pos: %w", err)
	}
	return a.Pos, nil
}

// ActorRect returns the actor's bounding box.
func (w *World) ActorRect(h ActorHandle) (core.Rect, error) {
	a, err := w.actors.Get(h)
	if err != nil {
		return core.Rect{}, fmt.Errorf("actor rect: %w", err)
	}
	return a.Rect(), nil
}

// SetActorPos teleports an actor without collision checks and clears its
// remainders and Squished flag.
func (w *World) SetActorPos(h ActorHandle, pos core.Vec2) error {
	if err := w.actors.SetPosition(h, pos); err != nil {
		return fmt.Errorf("set actor pos: %w", err)
	}
	return nil
}

// Squished reports whether a moving solid crushed the actor.
func (w *World) Squished(h ActorHandle) (bool, error) {
	a, err := w.actors.Get(h)
	if err != nil {
		return false, fmt.Errorf("squished: %w", err)
	}
	return a.Squished, nil
}

// ClearSquished resets the actor's Squished flag.
func (w *World) ClearSquished(h ActorHandle) error {
	a, err := w.actors.Get(h)
	if err != nil {
		return fmt.Errorf("clear squished: %w", err)
	}
	a.Squished = false
	return nil
}

// CollideCheck reports whether the actor's box translated by offset would
// overlap solid geometry. A downward offset also reports landing on a
// one-way platform, which makes CollideCheck(h, (0, 1)) a ground probe.
func (w *World) CollideCheck(h ActorHandle, offset core.Vec2) (bool, error) {
	a, err := w.actors.Get(h)
	if err != nil {
		return false, fmt.Errorf("collide check: %w", err)
	}
	return w.blocked(a, a.Pos.Add(offset)), nil
}

// CollideAt reports whether the actor would overlap solid geometry with its
// top-left corner at pos.
func (w *World) CollideAt(h ActorHandle, pos core.Vec2) (bool, error) {
	a, err := w.actors.Get(h)
	if err != nil {
		return false, fmt.Errorf("collide at: %w", err)
	}
	return w.blocked(a, pos), nil
}

// MoveH moves the actor horizontally by dx. Whole units are applied now and
// the fraction is kept for later calls. It returns true when a wall stopped
// the actor; the horizontal remainder is then discarded.
func (w *World) MoveH(h ActorHandle, dx float32) (bool, error) {
	a, err := w.actors.Get(h)
	if err != nil {
		return false, fmt.Errorf("move h: %w", err)
	}
	if !finite(dx) {
		return false, nil
	}

	a.RemainderX = w.clampTravel(a.RemainderX + dx)
	step := int(a.RemainderX)
	if step == 0 {
		return false, nil
	}
	a.RemainderX -= float32(step)

	if w.stepX(a, step) {
		a.RemainderX = 0
		return true, nil
	}
	return false, nil
}

// MoveV moves the actor vertically by dy. See MoveH.
func (w *World) MoveV(h ActorHandle, dy float32) (bool, error) {
	a, err := w.actors.Get(h)
	if err != nil {
		return false, fmt.Errorf("move v: %w", err)
	}
	if !finite(dy) {
		return false, nil
	}

	a.RemainderY = w.clampTravel(a.RemainderY + dy)
	step := int(a.RemainderY)
	if step == 0 {
		return false, nil
	}
	a.RemainderY -= float32(step)

	if w.stepY(a, step) {
		a.RemainderY = 0
		return true, nil
	}
	return false, nil
}

// clampTravel bounds the distance a single call may cover: the grid's larger
// extent plus one tile, and at least minTravel. Larger requests would take
// the actor off the mapped area anyway, and the bound keeps whole-unit steps
// within int range.
func (w *World) clampTravel(d float32) float32 {
	b := w.grid.Bounds()
	tw, th := w.grid.TileSize()
	limit := float32(minTravel)
	if span := b.W + tw; span > limit {
		limit = span
	}
	if span := b.H + th; span > limit {
		limit = span
	}
	return core.ClampF(d, -limit, limit)
}

// stepX moves a by step whole units, one at a time, and reports whether it
// was stopped early.
func (w *World) stepX(a *Actor, step int) bool {
	return w.step(a, core.V(float32(core.Sign(step)), 0), core.Abs(step))
}

func (w *World) stepY(a *Actor, step int) bool {
	return w.step(a, core.V(0, float32(core.Sign(step))), core.Abs(step))
}

func (w *World) step(a *Actor, dir core.Vec2, n int) bool {
	for ; n > 0; n-- {
		next := a.Pos.Add(dir)
		if w.blocked(a, next) {
			return true
		}
		a.Pos = next
	}
	return false
}

// blocked reports whether a would overlap solid geometry at pos. One-way
// platforms only count when pos is below a's current position and the
// platform top lies between the old and new bottom edges.
func (w *World) blocked(a *Actor, pos core.Vec2) bool {
	r := core.RectAt(pos, a.Width, a.Height)
	if w.grid.OverlapsSolid(r) {
		return true
	}
	if pos.Y > a.Pos.Y && w.grid.CrossesPlatformTop(r, a.Rect().Bottom()) {
		return true
	}
	return w.overlapsSolids(r)
}

// overlapsSolids reports whether r overlaps any collidable moving solid.
func (w *World) overlapsSolids(r core.Rect) bool {
	hit := false
	w.solids.each(func(_, _ uint32, s *Solid) {
		if !hit && s.Collidable && s.Rect().Intersects(r) {
			hit = true
		}
	})
	return hit
}
