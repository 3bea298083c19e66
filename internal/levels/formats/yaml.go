// Package formats provides level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tile-platformer/internal/core"
	"github.com/vovakirdan/tile-platformer/internal/physics"
)

// Legend characters for row-based layouts.
const (
	CharSolid       = '#'
	CharJumpThrough = '-'
	CharEmpty       = '.'
	CharSpawn       = 'S' // Empty cell; the player spawns at its top-left corner
)

// YAMLLevel represents the YAML structure for a level file.
// The layout is given either as ASCII rows or as flattened tile ids with a
// width (0 empty, 1 solid, 2 one-way platform).
type YAMLLevel struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Tile      YAMLSize          `yaml:"tile"`
	Rows      []string          `yaml:"rows,omitempty"`
	Width     int               `yaml:"width,omitempty"`
	Tiles     []int             `yaml:"tiles,omitempty"`
	Spawn     *YAMLPoint        `yaml:"spawn,omitempty"`
	Platforms []YAMLPlatform    `yaml:"platforms,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents tile dimensions in world units.
type YAMLSize struct {
	W float32 `yaml:"w"`
	H float32 `yaml:"h"`
}

// YAMLPoint is a world position.
type YAMLPoint struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// YAMLPlatform describes a moving solid that travels at a constant velocity
// and reverses direction every FlipEvery ticks (0 = never).
type YAMLPlatform struct {
	X         float32   `yaml:"x"`
	Y         float32   `yaml:"y"`
	W         int       `yaml:"w"`
	H         int       `yaml:"h"`
	Velocity  YAMLPoint `yaml:"velocity"`
	FlipEvery int       `yaml:"flip_every"`
}

// Platform is a parsed moving solid.
type Platform struct {
	Pos       core.Vec2
	W, H      int
	Velocity  core.Vec2
	FlipEvery int
}

// Level represents a parsed level ready for use.
type Level struct {
	ID        string
	Name      string
	TileW     float32
	TileH     float32
	Width     int
	Tiles     []physics.Tile
	Spawn     core.Vec2
	HasSpawn  bool
	Platforms []Platform
	Metadata  map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		TileW:    yl.Tile.W,
		TileH:    yl.Tile.H,
		Metadata: yl.Metadata,
	}
	if level.TileW == 0 {
		level.TileW = 32
	}
	if level.TileH == 0 {
		level.TileH = level.TileW
	}

	var err error
	switch {
	case len(yl.Rows) > 0 && len(yl.Tiles) > 0:
		return Level{}, fmt.Errorf("level %q: rows and tiles are mutually exclusive", yl.ID)
	case len(yl.Rows) > 0:
		err = parseRows(&level, yl.Rows)
	default:
		err = parseTiles(&level, yl.Tiles, yl.Width)
	}
	if err != nil {
		return Level{}, fmt.Errorf("level %q: %w", yl.ID, err)
	}

	if yl.Spawn != nil {
		level.Spawn = core.V(yl.Spawn.X, yl.Spawn.Y)
		level.HasSpawn = true
	}

	for i, p := range yl.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return Level{}, fmt.Errorf("level %q: platform %d has non-positive size %dx%d", yl.ID, i, p.W, p.H)
		}
		level.Platforms = append(level.Platforms, Platform{
			Pos:       core.V(p.X, p.Y),
			W:         p.W,
			H:         p.H,
			Velocity:  core.V(p.Velocity.X, p.Velocity.Y),
			FlipEvery: p.FlipEvery,
		})
	}

	return level, nil
}

// parseRows converts ASCII rows to tiles. Every row must have the same width.
func parseRows(level *Level, rows []string) error {
	width := len([]rune(rows[0]))
	level.Width = width
	level.Tiles = make([]physics.Tile, 0, width*len(rows))

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", physics.ErrInvalidLayout, y, len(runes), width)
		}
		for x, ch := range runes {
			switch ch {
			case CharSolid:
				level.Tiles = append(level.Tiles, physics.TileSolid)
			case CharJumpThrough:
				level.Tiles = append(level.Tiles, physics.TileJumpThrough)
			case CharEmpty, ' ':
				level.Tiles = append(level.Tiles, physics.TileEmpty)
			case CharSpawn:
				level.Tiles = append(level.Tiles, physics.TileEmpty)
				level.Spawn = core.V(float32(x)*level.TileW, float32(y)*level.TileH)
				level.HasSpawn = true
			default:
				return fmt.Errorf("row %d col %d: unknown tile %q", y, x, ch)
			}
		}
	}
	return nil
}

// parseTiles converts flattened tile ids. Layout validation is left to the
// grid builder so malformed sizes surface as physics.ErrInvalidLayout.
func parseTiles(level *Level, ids []int, width int) error {
	level.Width = width
	level.Tiles = make([]physics.Tile, len(ids))
	for i, id := range ids {
		switch id {
		case 0:
			level.Tiles[i] = physics.TileEmpty
		case 1:
			level.Tiles[i] = physics.TileSolid
		case 2:
			level.Tiles[i] = physics.TileJumpThrough
		default:
			return fmt.Errorf("tile %d: unknown tile id %d", i, id)
		}
	}
	return nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
