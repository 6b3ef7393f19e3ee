package system

import (
	"testing"

	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/entity"
	"tombs-roguelike/internal/gamemap"
	"tombs-roguelike/internal/generate"
	"tombs-roguelike/internal/world"
)

// openWorld creates a w×h world whose every tile is floor, with the player
// at (px, py).
func openWorld(t *testing.T, w, h, px, py int) *world.World {
	t.Helper()
	g := gamemap.New(w, h)
	for y := range h {
		for x := range w {
			if err := g.Carve(x, y); err != nil {
				t.Fatal(err)
			}
		}
	}
	wd, err := world.New(&generate.Dungeon{Grid: g, PlayerX: px, PlayerY: py}, world.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return wd
}

// addFighter adds a blocking chaser with the given stats.
func addFighter(w *world.World, name string, x, y, hp, def, pow int) entity.Handle {
	return w.Entities.Add(entity.Entity{
		Name:    name,
		Pos:     component.Position{X: x, Y: y},
		Render:  component.Renderable{Glyph: 'o'},
		Blocks:  true,
		Fighter: component.NewFighter(hp, def, pow, component.DeathMonster),
		AI:      &component.AI{Strategy: component.StrategyBasicChaser},
	})
}

func lastMessage(t *testing.T, w *world.World) string {
	t.Helper()
	lines := w.Log.Lines()
	if len(lines) == 0 {
		t.Fatal("message log is empty")
	}
	return lines[len(lines)-1].Text
}
