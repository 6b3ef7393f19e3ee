// Package gamemap holds the tile grid and room geometry of one dungeon.
package gamemap

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for any coordinate outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid holds the tiles of one dungeon level. Its dimensions never change.
type Grid struct {
	Width, Height int
	tiles         []Tile
}

// New creates a Grid filled with walls.
func New(width, height int) *Grid {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = MakeWall()
	}
	return &Grid{Width: width, Height: height, tiles: tiles}
}

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Tile returns a pointer to the tile at (x, y).
func (g *Grid) Tile(x, y int) (*Tile, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("tile (%d,%d) in %dx%d grid: %w", x, y, g.Width, g.Height, ErrOutOfBounds)
	}
	return &g.tiles[y*g.Width+x], nil
}

// Set replaces the tile at (x, y).
func (g *Grid) Set(x, y int, t Tile) error {
	p, err := g.Tile(x, y)
	if err != nil {
		return err
	}
	*p = t
	return nil
}

// Carve makes (x, y) passable and transparent, keeping its explored flag.
func (g *Grid) Carve(x, y int) error {
	p, err := g.Tile(x, y)
	if err != nil {
		return err
	}
	p.Blocked = false
	p.BlocksSight = false
	return nil
}

// IsBlocked reports whether terrain at (x, y) stops movement.
func (g *Grid) IsBlocked(x, y int) (bool, error) {
	p, err := g.Tile(x, y)
	if err != nil {
		return true, err
	}
	return p.Blocked, nil
}

// IsTransparent returns true when (x, y) is in bounds and lets light through.
func (g *Grid) IsTransparent(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	t := g.tiles[y*g.Width+x]
	return !t.Blocked && !t.BlocksSight
}

// Explore marks (x, y) as seen. Out-of-bounds coordinates are ignored.
func (g *Grid) Explore(x, y int) {
	if g.InBounds(x, y) {
		g.tiles[y*g.Width+x].Explored = true
	}
}
