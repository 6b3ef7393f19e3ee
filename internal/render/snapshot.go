package render

import (
	"github.com/gdamore/tcell/v2"

	"tombs-roguelike/internal/fov"
	"tombs-roguelike/internal/gamemap"
	"tombs-roguelike/internal/msglog"
)

// EntityView is one drawable entity in a snapshot.
type EntityView struct {
	Name  string
	X, Y  int
	Glyph rune
	Color tcell.Color
}

// Snapshot is everything needed to draw one frame.
type Snapshot struct {
	Grid     *gamemap.Grid // read only
	Visible  fov.Set
	Entities []EntityView // draw order, player last
	PlayerX  int
	PlayerY  int
	HP       int
	MaxHP    int
	Dead     bool
	Messages []msglog.Line
}
