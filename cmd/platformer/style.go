package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-platformer/internal/physics"
)

// styles holds the output styles; all of them are plain when stdout is not
// a terminal.
type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	event  lipgloss.Style
	tiles  map[physics.Tile]lipgloss.Style
}

func newStyles() styles {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		plain := lipgloss.NewStyle()
		return styles{
			title:  plain,
			header: plain,
			muted:  plain,
			good:   plain,
			bad:    plain,
			event:  plain,
			tiles: map[physics.Tile]lipgloss.Style{
				physics.TileEmpty:       plain,
				physics.TileSolid:       plain,
				physics.TileJumpThrough: plain,
			},
		}
	}

	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		header: lipgloss.NewStyle().Bold(true).Underline(true),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		good:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		bad:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		event:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		tiles: map[physics.Tile]lipgloss.Style{
			physics.TileEmpty:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			physics.TileSolid:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			physics.TileJumpThrough: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		},
	}
}

// tileGlyph returns the character used to print a tile.
func tileGlyph(t physics.Tile) string {
	switch t {
	case physics.TileSolid:
		return "#"
	case physics.TileJumpThrough:
		return "-"
	default:
		return "."
	}
}

// gridRows renders the grid as one line per row.
func (s styles) gridRows(g *physics.TileGrid) []string {
	rows := make([]string, g.Height())
	for y := 0; y < g.Height(); y++ {
		var line string
		for x := 0; x < g.Width(); x++ {
			t := g.TileAt(x, y)
			line += s.tiles[t].Render(tileGlyph(t))
		}
		rows[y] = line
	}
	return rows
}
