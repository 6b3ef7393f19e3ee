package system

import (
	"fmt"
	"math"

	"tombs-roguelike/internal/component"
	"tombs-roguelike/internal/entity"
	"tombs-roguelike/internal/world"
)

// TakeTurn runs one AI turn for entity h.
func TakeTurn(w *world.World, h entity.Handle) error {
	e := w.Entities.Get(h)
	if e == nil || e.AI == nil {
		return nil
	}
	switch e.AI.Strategy {
	case component.StrategyBasicChaser:
		return chase(w, h, e)
	}
	return fmt.Errorf("ai: unknown strategy %v for %s", e.AI.Strategy, e.Name)
}

// chase closes in on the player while the monster stands in the player's
// view, and attacks once adjacent.
func chase(w *world.World, h entity.Handle, e *entity.Entity) error {
	if w.State != world.StatePlaying || h == w.Player {
		return nil
	}
	if !w.View.Contains(e.Pos.X, e.Pos.Y) {
		return nil
	}
	p := w.PlayerEntity()
	dist := distance(e.Pos, p.Pos)
	if dist >= 2 {
		return moveTowards(w, h, e.Pos, p.Pos, dist)
	}
	if p.Fighter != nil && p.Fighter.HP > 0 {
		Attack(w, h, w.Player)
	}
	return nil
}

func moveTowards(w *world.World, h entity.Handle, from, to component.Position, dist float64) error {
	if dist == 0 {
		return nil
	}
	dx := int(math.Round(float64(to.X-from.X) / dist))
	dy := int(math.Round(float64(to.Y-from.Y) / dist))
	_, err := TryMove(w, h, dx, dy)
	return err
}

func distance(a, b component.Position) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
