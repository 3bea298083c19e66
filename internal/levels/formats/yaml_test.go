package formats

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tile-platformer/internal/core"
	"github.com/vovakirdan/tile-platformer/internal/physics"
)

func TestParseYAMLRows(t *testing.T) {
	data := `
id: rows
name: Rows
tile: {w: 16, h: 8}
rows:
  - "..S."
  - "#--#"
`
	lvl, err := ParseYAML([]byte(data))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if lvl.Width != 4 || len(lvl.Tiles) != 8 {
		t.Fatalf("expected 4 wide, 8 tiles; got %d, %d", lvl.Width, len(lvl.Tiles))
	}
	if lvl.TileW != 16 || lvl.TileH != 8 {
		t.Errorf("tile size = %gx%g, want 16x8", lvl.TileW, lvl.TileH)
	}

	want := []physics.Tile{
		physics.TileEmpty, physics.TileEmpty, physics.TileEmpty, physics.TileEmpty,
		physics.TileSolid, physics.TileJumpThrough, physics.TileJumpThrough, physics.TileSolid,
	}
	for i, tile := range want {
		if lvl.Tiles[i] != tile {
			t.Errorf("tile %d = %v, want %v", i, lvl.Tiles[i], tile)
		}
	}

	if !lvl.HasSpawn || lvl.Spawn != core.V(32, 0) {
		t.Errorf("spawn = %v (has=%v), want (32, 0)", lvl.Spawn, lvl.HasSpawn)
	}
}

func TestParseYAMLTiles(t *testing.T) {
	data := `
id: flat
width: 3
tiles: [0, 0, 0, 1, 2, 1]
spawn: {x: 4, y: -10}
`
	lvl, err := ParseYAML([]byte(data))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if lvl.TileW != 32 || lvl.TileH != 32 {
		t.Errorf("default tile size = %gx%g, want 32x32", lvl.TileW, lvl.TileH)
	}
	if lvl.Tiles[4] != physics.TileJumpThrough {
		t.Errorf("tile 4 = %v, want JumpThrough", lvl.Tiles[4])
	}
	if lvl.Spawn != core.V(4, -10) {
		t.Errorf("spawn = %v, want (4, -10)", lvl.Spawn)
	}
}

func TestParseYAMLPlatforms(t *testing.T) {
	data := `
id: p
rows: ["...."]
platforms:
  - {x: 10, y: 20, w: 64, h: 8, velocity: {x: 30, y: -15}, flip_every: 45}
`
	lvl, err := ParseYAML([]byte(data))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if len(lvl.Platforms) != 1 {
		t.Fatalf("expected 1 platform, got %d", len(lvl.Platforms))
	}

	p := lvl.Platforms[0]
	if p.Pos != core.V(10, 20) || p.W != 64 || p.H != 8 {
		t.Errorf("platform box = %v %dx%d", p.Pos, p.W, p.H)
	}
	if p.Velocity != core.V(30, -15) || p.FlipEvery != 45 {
		t.Errorf("platform motion = %v every %d", p.Velocity, p.FlipEvery)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		layout bool
		substr string
	}{
		{"uneven rows", "id: x\nrows: ['...', '..']", true, "row 1"},
		{"unknown char", "id: x\nrows: ['.x.']", false, "unknown tile"},
		{"unknown id", "id: x\nwidth: 1\ntiles: [7]", false, "unknown tile id"},
		{"both layouts", "id: x\nrows: ['.']\nwidth: 1\ntiles: [0]", false, "mutually exclusive"},
		{"bad platform", "id: x\nrows: ['.']\nplatforms: [{x: 0, y: 0, w: 0, h: 4}]", false, "non-positive"},
		{"bad yaml", "id: [", false, "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, physics.ErrInvalidLayout); got != tt.layout {
				t.Errorf("errors.Is(ErrInvalidLayout) = %v, want %v (%v)", got, tt.layout, err)
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}
