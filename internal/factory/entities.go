package factory

import (
	"fmt"

	"tombs-roguelike/assets"
	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/entity"
)

// FromArchetype builds a blocking fighter at (x, y) from a template.
func FromArchetype(a assets.Archetype, x, y int) entity.Entity {
	return entity.Entity{
		Name:    a.Name,
		Pos:     component.Position{X: x, Y: y},
		Render:  component.Renderable{Glyph: a.Glyph, Color: a.Color},
		Blocks:  true,
		Fighter: component.NewFighter(a.HP, a.Defense, a.Power, a.Death),
	}
}

// NewPlayer adds the player at (x, y) and returns its handle.
func NewPlayer(r *entity.Registry, x, y int) entity.Handle {
	return r.Add(FromArchetype(assets.Player, x, y))
}

// NewMonster adds a monster of the given kind at (x, y), chasing by default.
func NewMonster(r *entity.Registry, kind assets.MonsterKind, x, y int) (entity.Handle, error) {
	a, ok := assets.Monsters[kind]
	if !ok {
		return entity.NilHandle, fmt.Errorf("unknown monster kind %d", kind)
	}
	e := FromArchetype(a, x, y)
	e.AI = &component.AI{Strategy: component.StrategyBasicChaser}
	return r.Add(e), nil
}
