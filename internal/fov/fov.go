// Package fov computes the tiles visible from a point with recursive
// shadowcasting and caches the result until the viewer moves.
package fov

import (
	"fmt"

	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/gamemap"
)

// Transparency is the map view the shadowcaster needs. *gamemap.Grid
// satisfies it.
type Transparency interface {
	InBounds(x, y int) bool
	IsTransparent(x, y int) bool
}

// Set is a collection of visible tiles.
type Set map[component.Position]struct{}

// Contains reports whether (x, y) is in the set.
func (s Set) Contains(x, y int) bool {
	_, ok := s[component.Position{X: x, Y: y}]
	return ok
}

func (s Set) add(x, y int) {
	s[component.Position{X: x, Y: y}] = struct{}{}
}

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Compute returns every tile visible from (ox, oy). A tile is in range when
// dx²+dy² <= radius², so a tile at exactly radius is lit. Opaque tiles
// that light reaches are included only when lightWalls is set.
func Compute(m Transparency, ox, oy, radius int, lightWalls bool) (Set, error) {
	if !m.InBounds(ox, oy) {
		return nil, fmt.Errorf("fov origin (%d,%d): %w", ox, oy, gamemap.ErrOutOfBounds)
	}
	if radius < 0 {
		return nil, fmt.Errorf("fov radius %d is negative", radius)
	}
	c := caster{m: m, cx: ox, cy: oy, radius: radius, lightWalls: lightWalls, lit: Set{}}
	c.lit.add(ox, oy)
	for _, o := range octants {
		c.cast(1, 1.0, 0.0, o[0], o[1], o[2], o[3])
	}
	return c.lit, nil
}

type caster struct {
	m          Transparency
	cx, cy     int
	radius     int
	lightWalls bool
	lit        Set
}

func (c *caster) opaque(x, y int) bool {
	return !c.m.InBounds(x, y) || !c.m.IsTransparent(x, y)
}

// cast scans one octant from row outward between the start and end slopes.
func (c *caster) cast(row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := c.radius * c.radius
	newStart := start

	for j := row; j <= c.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := c.cx + dx*xx + dy*xy
			wy := c.cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			opaque := c.opaque(wx, wy)
			if dx*dx+dy*dy <= radiusSq && c.m.InBounds(wx, wy) && (!opaque || c.lightWalls) {
				c.lit.add(wx, wy)
			}

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < c.radius {
				blocked = true
				c.cast(j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
