// Package entity is the registry of every positioned, drawable thing in a
// dungeon: the player, monsters and their remains.
package entity

import "tombs-roguelike/internal/component"

// Handle identifies an entity for the lifetime of its registry.
type Handle uint64

// NilHandle is the zero value; no valid entity has this handle.
const NilHandle Handle = 0

// Entity is one record in the registry. Fighter and AI are owned by the
// entity and are nil when it has no such capability.
type Entity struct {
	Name    string
	Pos     component.Position
	Render  component.Renderable
	Blocks  bool
	Fighter *component.Fighter
	AI      *component.AI
}

// IsAt reports whether the entity stands on (x, y).
func (e *Entity) IsAt(x, y int) bool {
	return e.Pos.X == x && e.Pos.Y == y
}
