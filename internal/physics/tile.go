package physics

import (
	"fmt"

	"github.com/vovakirdan/tile-platformer/internal/core"
)

// Tile is the collision class of a single grid cell.
type Tile uint8

const (
	TileEmpty       Tile = iota // Actors pass freely
	TileSolid                   // Actors may never overlap it
	TileJumpThrough             // One-way platform: blocks only when landing from above
)

// String returns a human-readable name for the tile.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileSolid:
		return "Solid"
	case TileJumpThrough:
		return "JumpThrough"
	default:
		return "Unknown"
	}
}

// TileGrid stores the static collision geometry of a world.
// Cells are stored in row-major order: index = y*width + x.
// Cells outside the grid are Empty, so actors may leave the mapped area.
type TileGrid struct {
	tileW, tileH float32
	width        int
	height       int
	cells        []Tile
}

// BuildGrid constructs a grid from a flattened row-major tile sequence with
// gridWidth columns. The row count is len(tiles) / gridWidth.
func BuildGrid(tiles []Tile, tileWidth, tileHeight float32, gridWidth int) (*TileGrid, error) {
	if gridWidth <= 0 {
		return nil, fmt.Errorf("%w: grid width %d", ErrInvalidLayout, gridWidth)
	}
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("%w: tile size %gx%g", ErrInvalidLayout, tileWidth, tileHeight)
	}
	if len(tiles)%gridWidth != 0 {
		return nil, fmt.Errorf("%w: %d tiles do not fill rows of %d", ErrInvalidLayout, len(tiles), gridWidth)
	}

	cells := make([]Tile, len(tiles))
	copy(cells, tiles)

	return &TileGrid{
		tileW:  tileWidth,
		tileH:  tileHeight,
		width:  gridWidth,
		height: len(tiles) / gridWidth,
		cells:  cells,
	}, nil
}

// emptyGrid is the grid a world starts with before any layer is added.
func emptyGrid() *TileGrid {
	return &TileGrid{tileW: 1, tileH: 1}
}

// Width returns the number of columns.
func (g *TileGrid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *TileGrid) Height() int {
	return g.height
}

// TileSize returns the tile width and height in world units.
func (g *TileGrid) TileSize() (float32, float32) {
	return g.tileW, g.tileH
}

// Bounds returns the mapped area in world units.
func (g *TileGrid) Bounds() core.Rect {
	return core.NewRect(0, 0, float32(g.width)*g.tileW, float32(g.height)*g.tileH)
}

// InBounds returns true if the cell lies inside the grid.
func (g *TileGrid) InBounds(cx, cy int) bool {
	return cx >= 0 && cx < g.width && cy >= 0 && cy < g.height
}

// TileAt returns the tile at the given cell, Empty when out of bounds.
func (g *TileGrid) TileAt(cx, cy int) Tile {
	if !g.InBounds(cx, cy) {
		return TileEmpty
	}
	return g.cells[cy*g.width+cx]
}

// SolidAt reports whether the cell is Solid. Out-of-bounds cells are not.
func (g *TileGrid) SolidAt(cx, cy int) bool {
	return g.TileAt(cx, cy) == TileSolid
}

// span returns the inclusive cell range covered by r, clipped to the grid.
// A rect whose right edge lies exactly on a tile boundary does not cover
// the tile beyond it. ok is false when nothing inside the grid is covered.
func (g *TileGrid) span(r core.Rect) (x0, y0, x1, y1 int, ok bool) {
	if r.W <= 0 || r.H <= 0 {
		return 0, 0, 0, 0, false
	}
	x0 = core.FloorDiv(r.X, g.tileW)
	y0 = core.FloorDiv(r.Y, g.tileH)
	x1 = core.CeilDiv(r.Right(), g.tileW) - 1
	y1 = core.CeilDiv(r.Bottom(), g.tileH) - 1

	x0 = core.Max(x0, 0)
	y0 = core.Max(y0, 0)
	x1 = core.Min(x1, g.width-1)
	y1 = core.Min(y1, g.height-1)

	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

// OverlapsSolid returns true if any Solid cell is covered by r.
func (g *TileGrid) OverlapsSolid(r core.Rect) bool {
	x0, y0, x1, y1, ok := g.span(r)
	if !ok {
		return false
	}
	for cy := y0; cy <= y1; cy++ {
		row := g.cells[cy*g.width : (cy+1)*g.width]
		for cx := x0; cx <= x1; cx++ {
			if row[cx] == TileSolid {
				return true
			}
		}
	}
	return false
}

// CrossesPlatformTop returns true if r covers a JumpThrough cell whose top
// edge lies in [prevBottom, r.Bottom()): a box whose bottom edge was at
// prevBottom would land on it.
func (g *TileGrid) CrossesPlatformTop(r core.Rect, prevBottom float32) bool {
	x0, y0, x1, y1, ok := g.span(r)
	if !ok {
		return false
	}
	for cy := y0; cy <= y1; cy++ {
		top := float32(cy) * g.tileH
		if top < prevBottom || top >= r.Bottom() {
			continue
		}
		row := g.cells[cy*g.width : (cy+1)*g.width]
		for cx := x0; cx <= x1; cx++ {
			if row[cx] == TileJumpThrough {
				return true
			}
		}
	}
	return false
}

// Count returns how many cells hold the given tile.
func (g *TileGrid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}
