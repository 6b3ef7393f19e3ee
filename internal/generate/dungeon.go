// Package generate builds dungeons by rejection-sampled room placement,
// chaining each accepted room to the previous one with an L-shaped tunnel.
package generate

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/gamemap"
	"tombs-roguelike/internal/rng"
)

// Spawn records where a monster of a given kind should be created.
type Spawn struct {
	Kind assets.MonsterKind
	X, Y int
}

// Dungeon is the output of Generate.
type Dungeon struct {
	Grid             *gamemap.Grid
	Rooms            []gamemap.Room // acceptance order
	PlayerX, PlayerY int
	Monsters         []Spawn
}

// Generate carves a dungeon and seeds its monsters. Candidates that overlap
// an accepted room are skipped, so fewer than cfg.MaxRooms rooms may result.
func Generate(cfg Config, roller dice.Roller) (*Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Dungeon{Grid: gamemap.New(cfg.Width, cfg.Height)}
	occupied := make(map[component.Position]bool)

	for range cfg.MaxRooms {
		room, err := candidateRoom(cfg, roller)
		if err != nil {
			return nil, fmt.Errorf("roll room: %w", err)
		}
		if overlapsAny(room, d.Rooms) {
			continue
		}
		if err := carveRoom(d.Grid, room); err != nil {
			return nil, fmt.Errorf("carve room %+v: %w", room, err)
		}

		nx, ny := room.Center()
		if len(d.Rooms) == 0 {
			d.PlayerX, d.PlayerY = nx, ny
			occupied[component.Position{X: nx, Y: ny}] = true
		} else {
			px, py := d.Rooms[len(d.Rooms)-1].Center()
			flip, err := rng.Between(roller, 0, 1)
			if err != nil {
				return nil, fmt.Errorf("roll tunnel shape: %w", err)
			}
			if err := carveTunnel(d.Grid, px, py, nx, ny, flip == 1); err != nil {
				return nil, fmt.Errorf("carve tunnel: %w", err)
			}
		}

		spawns, err := placeMonsters(cfg, roller, d.Grid, room, occupied)
		if err != nil {
			return nil, fmt.Errorf("seed room %d: %w", len(d.Rooms), err)
		}
		d.Monsters = append(d.Monsters, spawns...)
		d.Rooms = append(d.Rooms, room)
	}
	return d, nil
}

func candidateRoom(cfg Config, roller dice.Roller) (gamemap.Room, error) {
	w, err := rng.Between(roller, cfg.RoomMinSize, cfg.RoomMaxSize)
	if err != nil {
		return gamemap.Room{}, err
	}
	h, err := rng.Between(roller, cfg.RoomMinSize, cfg.RoomMaxSize)
	if err != nil {
		return gamemap.Room{}, err
	}
	x, err := rng.Between(roller, 0, cfg.Width-w-1)
	if err != nil {
		return gamemap.Room{}, err
	}
	y, err := rng.Between(roller, 0, cfg.Height-h-1)
	if err != nil {
		return gamemap.Room{}, err
	}
	return gamemap.NewRoom(x, y, w, h), nil
}

func overlapsAny(r gamemap.Room, rooms []gamemap.Room) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// placeMonsters draws up to cfg.MaxMonstersPerRoom positions inside the
// room's closed bounds and keeps those on open, unoccupied tiles.
func placeMonsters(cfg Config, roller dice.Roller, g *gamemap.Grid, room gamemap.Room, occupied map[component.Position]bool) ([]Spawn, error) {
	n, err := rng.Between(roller, 0, cfg.MaxMonstersPerRoom)
	if err != nil {
		return nil, err
	}
	var spawns []Spawn
	for range n {
		x, err := rng.Between(roller, room.X1, room.X2)
		if err != nil {
			return nil, err
		}
		y, err := rng.Between(roller, room.Y1, room.Y2)
		if err != nil {
			return nil, err
		}
		pos := component.Position{X: x, Y: y}
		blocked, err := g.IsBlocked(x, y)
		if err != nil {
			return nil, err
		}
		if blocked || occupied[pos] {
			continue
		}
		roll, err := roller.Roll(100)
		if err != nil {
			return nil, err
		}
		kind := assets.MonsterTroll
		if roll <= assets.OrcChance {
			kind = assets.MonsterOrc
		}
		occupied[pos] = true
		spawns = append(spawns, Spawn{Kind: kind, X: x, Y: y})
	}
	return spawns, nil
}
