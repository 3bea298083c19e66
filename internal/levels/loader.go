// Package levels provides level loading for the platformer host.
// This package depends on physics but physics does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tile-platformer/internal/core"
	"github.com/vovakirdan/tile-platformer/internal/levels/formats"
	"github.com/vovakirdan/tile-platformer/internal/physics"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID        string
	Name      string
	TileW     float32
	TileH     float32
	Width     int
	Tiles     []physics.Tile
	Spawn     core.Vec2
	HasSpawn  bool
	Platforms []formats.Platform
	Metadata  map[string]string
	FilePath  string
}

// Height returns the number of rows implied by the tile count.
func (l *Level) Height() int {
	if l.Width <= 0 {
		return 0
	}
	return len(l.Tiles) / l.Width
}

// Description returns the level's metadata description, if any.
func (l *Level) Description() string {
	return l.Metadata["description"]
}

// Apply installs the level's tiles as the world's collision layer.
func (l *Level) Apply(w *physics.World) error {
	if err := w.AddStaticTiledLayer(l.Tiles, l.TileW, l.TileH, l.Width, 0); err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	return nil
}

// Loader handles loading levels from a file system.
type Loader struct {
	Root fs.FS
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: os.DirFS(root)}
}

// Builtin returns a loader over the levels embedded in the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded directory missing: %v", err))
	}
	return &Loader{Root: sub}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Returns levels sorted by ID for
// deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.Root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking levels: %w", err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.Root, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return parse(data, p)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Resolve loads ref as a path on disk when it names a level file, otherwise
// as the ID of a built-in level.
func Resolve(ref string) (Level, error) {
	ext := strings.ToLower(filepath.Ext(ref))
	if isSupportedExtension(ext) {
		data, err := os.ReadFile(ref)
		if err != nil {
			return Level{}, fmt.Errorf("reading file %s: %w", ref, err)
		}
		return parse(data, ref)
	}
	return Builtin().LoadByID(ref)
}

func parse(data []byte, p string) (Level, error) {
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(path.Base(filepath.ToSlash(p)), path.Ext(p))
	}

	return Level{
		ID:        id,
		Name:      parsed.Name,
		TileW:     parsed.TileW,
		TileH:     parsed.TileH,
		Width:     parsed.Width,
		Tiles:     parsed.Tiles,
		Spawn:     parsed.Spawn,
		HasSpawn:  parsed.HasSpawn,
		Platforms: parsed.Platforms,
		Metadata:  parsed.Metadata,
		FilePath:  p,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
