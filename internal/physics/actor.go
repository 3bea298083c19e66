package physics

import (
	"fmt"

	"github.com/vovakirdan/tile-platformer/internal/core"
)

// Actor is a movable axis-aligned box. Positions change only in whole units;
// the remainders carry the fractional part of requested displacement.
type Actor struct {
	Pos        core.Vec2 // Top-left corner
	Width      int
	Height     int
	RemainderX float32
	RemainderY float32

	// Squished is set when a moving solid pushed the actor into geometry it
	// could not get out of.
	Squished bool
}

// Rect returns the actor's bounding box.
func (a *Actor) Rect() core.Rect {
	return core.RectAt(a.Pos, a.Width, a.Height)
}

// ActorHandle is an opaque, comparable reference to an actor.
// The zero value is never issued.
type ActorHandle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h ActorHandle) IsZero() bool {
	return h == ActorHandle{}
}

// String returns a debug representation such as "actor#3.1".
func (h ActorHandle) String() string {
	return fmt.Sprintf("actor#%d.%d", h.index, h.gen)
}

// ActorTable stores actors addressed by handle.
type ActorTable struct {
	t table[Actor]
}

// NewActorTable creates an empty table.
func NewActorTable() *ActorTable {
	return &ActorTable{}
}

// Insert adds an actor with zeroed remainders and returns its handle.
func (at *ActorTable) Insert(pos core.Vec2, width, height int) ActorHandle {
	i, g := at.t.insert(Actor{Pos: pos, Width: width, Height: height})
	return ActorHandle{index: i, gen: g}
}

// Get returns the actor for h.
func (at *ActorTable) Get(h ActorHandle) (*Actor, error) {
	a, ok := at.t.get(h.index, h.gen)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	return a, nil
}

// SetPosition moves the actor without collision checks and clears its
// remainders and Squished flag.
func (at *ActorTable) SetPosition(h ActorHandle, pos core.Vec2) error {
	a, err := at.Get(h)
	if err != nil {
		return err
	}
	a.Pos = pos
	a.RemainderX = 0
	a.RemainderY = 0
	a.Squished = false
	return nil
}

// Remove tombstones the actor. Its handle, and every copy of it, becomes
// invalid.
func (at *ActorTable) Remove(h ActorHandle) error {
	if !at.t.remove(h.index, h.gen) {
		return fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	return nil
}

// Len returns the number of live actors.
func (at *ActorTable) Len() int {
	return at.t.count
}

// Each visits live actors in slot order.
func (at *ActorTable) Each(fn func(ActorHandle, *Actor)) {
	at.t.each(func(i, g uint32, a *Actor) {
		fn(ActorHandle{index: i, gen: g}, a)
	})
}
