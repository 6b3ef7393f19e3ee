package system

import (
	"fmt"

	"tombs-roguelike/internal/entity"
	"tombs-roguelike/internal/world"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or blocking entity
)

func (r MoveResult) String() string {
	if r == MoveOK {
		return "ok"
	}
	return "blocked"
}

// TryMove attempts to move entity h by (dx, dy). The move is refused when
// the destination is terrain-blocked or holds a blocking entity. A
// destination outside the grid is an error, not a blocked move.
func TryMove(w *world.World, h entity.Handle, dx, dy int) (MoveResult, error) {
	e := w.Entities.Get(h)
	if e == nil {
		return MoveBlocked, fmt.Errorf("move: unknown entity %d", h)
	}
	dest := e.Pos.Add(dx, dy)
	blocked, err := w.IsBlocked(dest.X, dest.Y)
	if err != nil {
		return MoveBlocked, fmt.Errorf("move %s: %w", e.Name, err)
	}
	if blocked {
		return MoveBlocked, nil
	}
	e.Pos = dest
	return MoveOK, nil
}
