// Package core provides the value types shared by the engine and its host.
// It contains no external dependencies to keep simulation code pure and
// testable.
package core

import (
	"fmt"
	"math"
)

// Vec2 is a position or displacement in world units.
type Vec2 struct {
	X, Y float32
}

// V is a convenience constructor for Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// String returns a string representation of the vector.
func (v Vec2) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Edges are half-open: a rect covers [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y float32 // Top-left corner position
	W, H float32 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt creates a rectangle at pos with integer dimensions.
func RectAt(pos Vec2, w, h int) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: float32(w), H: float32(h)}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Intersects returns true if this rectangle overlaps with another.
// Rects that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// FloorDiv returns floor(v / size) as an int.
func FloorDiv(v, size float32) int {
	return int(math.Floor(float64(v) / float64(size)))
}

// CeilDiv returns ceil(v / size) as an int.
func CeilDiv(v, size float32) int {
	return int(math.Ceil(float64(v) / float64(size)))
}

// ClampF restricts a float32 value to be within [min, max].
func ClampF(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
